package theme

import "github.com/charmbracelet/lipgloss"

// Scheme is a color-scheme preference.
type Scheme string

const (
	SchemeLight Scheme = "light"
	SchemeDark  Scheme = "dark"
)

// PreferenceSource reports the host's color-scheme preference and notifies
// on changes. Watch returns a stop func; stopping twice is safe.
type PreferenceSource interface {
	Current() Scheme
	Watch(fn func(Scheme)) (stop func())
}

// StaticSource is a settable PreferenceSource. SetScheme pushes the new
// value to every active watcher.
type StaticSource struct {
	scheme   Scheme
	watchers map[int]func(Scheme)
	nextID   int
}

func NewStaticSource(scheme Scheme) *StaticSource {
	return &StaticSource{
		scheme:   scheme,
		watchers: make(map[int]func(Scheme)),
	}
}

func (s *StaticSource) Current() Scheme {
	return s.scheme
}

func (s *StaticSource) Watch(fn func(Scheme)) func() {
	s.nextID++
	id := s.nextID
	s.watchers[id] = fn
	return func() {
		delete(s.watchers, id)
	}
}

// SetScheme updates the preference and notifies watchers in id order.
func (s *StaticSource) SetScheme(scheme Scheme) {
	if scheme == s.scheme {
		return
	}
	s.scheme = scheme
	for id := 1; id <= s.nextID; id++ {
		if fn, ok := s.watchers[id]; ok {
			fn(scheme)
		}
	}
}

// TerminalSource detects the preference from the terminal background.
// Terminals give no change notifications, so Watch is inert.
type TerminalSource struct{}

func (TerminalSource) Current() Scheme {
	if lipgloss.HasDarkBackground() {
		return SchemeDark
	}
	return SchemeLight
}

func (TerminalSource) Watch(func(Scheme)) func() {
	return func() {}
}
