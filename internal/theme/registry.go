package theme

import (
	"errors"
	"fmt"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
	ErrMissingID     = errors.New("theme config must have an id")
)

// Registry holds every known theme. Themes are registered at startup and
// may grow at runtime; there is no removal path.
type Registry struct {
	themes map[string]*Theme
	order  []string
}

// NewRegistry returns a registry pre-populated with the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}
	for _, t := range builtinThemes() {
		r.Register(t)
	}
	return r
}

// Register inserts or replaces a theme by id.
func (r *Registry) Register(t *Theme) {
	if _, exists := r.themes[t.ID]; !exists {
		r.order = append(r.order, t.ID)
	}
	r.themes[t.ID] = t
}

// Get returns the theme with the given id.
func (r *Registry) Get(id string) (*Theme, error) {
	t, exists := r.themes[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}
	return t, nil
}

// Has checks if a theme exists.
func (r *Registry) Has(id string) bool {
	_, exists := r.themes[id]
	return exists
}

// IDs returns all theme ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}
