package theme

import (
	"fmt"

	"github.com/rs/zerolog"

	"themeforge/internal/tokens"
)

// SelectionStore persists the selected theme id across restarts. Errors are
// absorbed by the Manager: without persistence it still works in-memory.
type SelectionStore interface {
	LoadThemeID() (string, error)
	SaveThemeID(id string) error
}

// MemorySelection is an in-memory SelectionStore.
type MemorySelection struct {
	ID string
}

func (m *MemorySelection) LoadThemeID() (string, error) { return m.ID, nil }

func (m *MemorySelection) SaveThemeID(id string) error {
	m.ID = id
	return nil
}

// CustomStore persists user-created and imported themes.
type CustomStore interface {
	ListThemes() ([]*Theme, error)
	SaveTheme(t *Theme) error
}

// Options wires a Manager. Zero fields get working in-memory defaults so a
// bare Manager is usable in tests.
type Options struct {
	Registry  *Registry
	Tokens    *tokens.Store
	Selection SelectionStore
	Prefs     PreferenceSource
	Root      RootSurface
	Customs   CustomStore
	Logger    zerolog.Logger
}

type listenerEntry struct {
	id int
	fn Listener
}

// Manager owns which theme is active and keeps the token store, the root
// surface and the persisted selection in sync with it.
type Manager struct {
	registry  *Registry
	tokens    *tokens.Store
	selection SelectionStore
	prefs     PreferenceSource
	root      RootSurface
	customs   CustomStore
	log       zerolog.Logger

	current    string
	applied    string // id of the last concretely applied theme
	preference Scheme
	listeners  []listenerEntry
	nextID     int
	stopWatch  func()
}

// NewManager builds a manager, restores persisted custom themes and the
// persisted selection (default "system"), applies it, and starts watching
// the color-scheme preference.
func NewManager(opts Options) *Manager {
	m := &Manager{
		registry:  opts.Registry,
		tokens:    opts.Tokens,
		selection: opts.Selection,
		prefs:     opts.Prefs,
		root:      opts.Root,
		customs:   opts.Customs,
		log:       opts.Logger,
	}
	if m.registry == nil {
		m.registry = NewRegistry()
	}
	if m.tokens == nil {
		m.tokens = tokens.NewStore(tokens.StoreOptions{Logger: opts.Logger})
	}
	if m.selection == nil {
		m.selection = &MemorySelection{}
	}
	if m.prefs == nil {
		m.prefs = NewStaticSource(SchemeLight)
	}
	if m.root == nil {
		m.root = NewMemoryRoot()
	}
	m.preference = m.prefs.Current()

	m.restoreCustomThemes()

	initial := "system"
	if id, err := m.selection.LoadThemeID(); err != nil {
		m.log.Warn().Err(err).Msg("failed to read persisted theme, defaulting to system")
	} else if id != "" {
		initial = id
	}
	if !m.Apply(initial) {
		m.Apply("system")
	}

	m.stopWatch = m.prefs.Watch(m.onPreferenceChange)
	return m
}

func (m *Manager) restoreCustomThemes() {
	if m.customs == nil {
		return
	}
	customs, err := m.customs.ListThemes()
	if err != nil {
		m.log.Warn().Err(err).Msg("failed to load custom themes")
		return
	}
	for _, t := range customs {
		m.registry.Register(t)
	}
}

// Apply activates the theme with the given id. Unknown ids warn and return
// false, leaving the current theme in effect. Automatic themes resolve
// against the current preference first.
func (m *Manager) Apply(id string) bool {
	t, err := m.registry.Get(id)
	if err != nil {
		m.log.Warn().Str("theme", id).Msg("cannot apply unknown theme")
		return false
	}
	if t.IsAutomatic {
		return m.applyAutomatic(t)
	}
	m.activate(t, t.ID, "")
	return true
}

// applyAutomatic resolves an automatic theme exactly once against the
// current preference and applies the result. The literal selection stays on
// the automatic theme's id.
func (m *Manager) applyAutomatic(auto *Theme) bool {
	targetID := auto.LightTheme
	if m.preference == SchemeDark {
		targetID = auto.DarkTheme
	}
	resolved, err := m.registry.Get(targetID)
	if err != nil {
		m.log.Warn().Str("theme", auto.ID).Str("target", targetID).Msg("automatic theme target missing")
		return false
	}
	m.activate(resolved, auto.ID, resolved.ID)
	return true
}

// activate runs the shared downstream steps: token application, root
// surface updates, persistence, accessibility, then notification. Tokens
// are always applied before listeners run.
func (m *Manager) activate(t *Theme, literalID, resolvedID string) {
	m.tokens.Reset()
	m.tokens.SetBatch(t.Tokens)
	m.tokens.Flush()

	if m.applied != "" {
		m.root.RemoveClass("theme-" + m.applied)
	}
	m.root.AddClass("theme-" + t.ID)
	m.applied = t.ID
	m.root.SetAttribute("data-theme", t.ID)
	m.applyAccessibility(t)

	m.current = literalID
	if err := m.selection.SaveThemeID(literalID); err != nil {
		m.log.Warn().Err(err).Msg("failed to persist theme selection")
	}

	m.notify(Event{
		Type:       EventThemeChanged,
		ThemeID:    literalID,
		Theme:      t,
		Tokens:     t.Tokens,
		ResolvedID: resolvedID,
	})
}

func (m *Manager) applyAccessibility(t *Theme) {
	contrast := "normal"
	if t.Accessibility.ContrastRatio >= 7 {
		contrast = "high"
	}
	m.root.SetAttribute("data-contrast", contrast)
	if t.Accessibility.ReducedMotion {
		m.root.AddClass("reduce-motion")
	} else {
		m.root.RemoveClass("reduce-motion")
	}
}

// Toggle flips between light and dark based on the resolved theme, not the
// literal selection: system-resolved-to-dark toggles to light.
func (m *Manager) Toggle() bool {
	if m.IsDark() {
		return m.Apply("light")
	}
	return m.Apply("dark")
}

// CreateVariant registers a new theme derived from an existing one by
// shallow-merging overrides over the base token map. The variant is not
// applied.
func (m *Manager) CreateVariant(baseID string, overrides map[string]string, newID, name, description string) (*Theme, error) {
	base, err := m.registry.Get(baseID)
	if err != nil {
		return nil, fmt.Errorf("cannot create variant: %w", err)
	}
	variant := base.Clone()
	variant.ID = newID
	variant.Name = name
	if name == "" {
		variant.Name = newID
	}
	variant.Description = description
	variant.IsAutomatic = false
	for path, value := range overrides {
		variant.Tokens[path] = value
	}
	m.registry.Register(variant)
	m.persistCustom(variant)
	m.notify(Event{Type: EventCustomThemeCreated, ThemeID: variant.ID, Theme: variant, Tokens: variant.Tokens})
	return variant, nil
}

// Import registers an externally defined theme and optionally applies it.
func (m *Manager) Import(cfg *Theme, applyImmediately bool) (*Theme, error) {
	if cfg == nil || cfg.ID == "" {
		return nil, ErrMissingID
	}
	t := cfg.Clone()
	m.registry.Register(t)
	m.persistCustom(t)
	m.notify(Event{Type: EventThemeImported, ThemeID: t.ID, Theme: t, Tokens: t.Tokens})
	if applyImmediately {
		m.Apply(t.ID)
	}
	return t, nil
}

func (m *Manager) persistCustom(t *Theme) {
	if m.customs == nil {
		return
	}
	if err := m.customs.SaveTheme(t); err != nil {
		m.log.Warn().Err(err).Str("theme", t.ID).Msg("failed to persist custom theme")
	}
}

// Subscribe registers a listener and returns an unsubscribe func.
func (m *Manager) Subscribe(fn Listener) func() {
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listenerEntry{id: id, fn: fn})
	return func() {
		m.unsubscribe(id)
	}
}

func (m *Manager) unsubscribe(id int) {
	for i, entry := range m.listeners {
		if entry.id == id {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

func (m *Manager) notify(ev Event) {
	entries := append([]listenerEntry(nil), m.listeners...)
	for _, entry := range entries {
		m.deliver(entry.fn, ev)
	}
}

// one listener blowing up must not stop delivery to the rest
func (m *Manager) deliver(fn Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Interface("panic", r).Str("event", string(ev.Type)).Msg("theme listener panicked")
		}
	}()
	fn(ev)
}

func (m *Manager) onPreferenceChange(scheme Scheme) {
	m.preference = scheme
	if t, err := m.registry.Get(m.current); err == nil && t.IsAutomatic {
		m.applyAutomatic(t)
	}
	m.notify(Event{Type: EventSystemPreferenceChanged, Preference: scheme})
}

// Destroy stops the preference watcher and drops all listeners. Safe to
// call more than once.
func (m *Manager) Destroy() {
	if m.stopWatch != nil {
		m.stopWatch()
		m.stopWatch = nil
	}
	m.listeners = nil
}

// Current returns the literal selection, which may be "system".
func (m *Manager) Current() string {
	return m.current
}

// CurrentTheme returns the literal selection's theme object.
func (m *Manager) CurrentTheme() *Theme {
	t, err := m.registry.Get(m.current)
	if err != nil {
		return nil
	}
	return t
}

// Resolved returns the concrete theme in effect, never the automatic one.
func (m *Manager) Resolved() *Theme {
	if m.current == "" {
		return nil
	}
	t, err := m.registry.Get(m.current)
	if err != nil {
		return nil
	}
	if !t.IsAutomatic {
		return t
	}
	targetID := t.LightTheme
	if m.preference == SchemeDark {
		targetID = t.DarkTheme
	}
	resolved, err := m.registry.Get(targetID)
	if err != nil {
		return nil
	}
	return resolved
}

// ResolvedID returns the id of the resolved theme, or "".
func (m *Manager) ResolvedID() string {
	if t := m.Resolved(); t != nil {
		return t.ID
	}
	return ""
}

// Preference returns the last observed color-scheme preference.
func (m *Manager) Preference() Scheme {
	return m.preference
}

// Registry exposes the theme registry.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// TokenStore exposes the live token store.
func (m *Manager) TokenStore() *tokens.Store {
	return m.tokens
}
