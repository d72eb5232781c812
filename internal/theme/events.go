package theme

// EventType names the notifications a Manager emits.
type EventType string

const (
	EventThemeChanged            EventType = "themeChanged"
	EventSystemPreferenceChanged EventType = "systemPreferenceChanged"
	EventCustomThemeCreated      EventType = "customThemeCreated"
	EventThemeImported           EventType = "themeImported"
)

// Event is the notification payload delivered to listeners.
type Event struct {
	Type EventType

	// ThemeID is the id the caller selected; for an automatic theme it
	// stays the automatic id even though ResolvedID names the concrete one.
	ThemeID string
	Theme   *Theme
	// Tokens is the override map that was applied.
	Tokens map[string]string
	// ResolvedID is set on themeChanged events that went through automatic
	// resolution.
	ResolvedID string
	// Preference is set on systemPreferenceChanged events.
	Preference Scheme
}

// Listener receives manager events. Delivery is synchronous and sequential;
// a panicking listener is logged and skipped, later listeners still run.
type Listener func(Event)
