package theme

// Accessibility carries the accessibility metadata of a theme.
type Accessibility struct {
	ContrastRatio          float64 `json:"contrastRatio"`
	ColorBlindnessFriendly bool    `json:"colorBlindnessFriendly"`
	ReducedMotion          bool    `json:"reducedMotion"`
}

// Theme is a named bundle of token overrides plus accessibility metadata.
// An automatic theme carries no tokens of its own; it points at the light
// and dark themes it resolves to.
type Theme struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description,omitempty"`
	Tokens        map[string]string `json:"tokens,omitempty"`
	Accessibility Accessibility     `json:"accessibility"`

	IsAutomatic bool   `json:"isAutomatic,omitempty"`
	LightTheme  string `json:"lightTheme,omitempty"`
	DarkTheme   string `json:"darkTheme,omitempty"`
}

// Clone returns a deep copy; the token map is never shared.
func (t *Theme) Clone() *Theme {
	c := *t
	c.Tokens = make(map[string]string, len(t.Tokens))
	for path, value := range t.Tokens {
		c.Tokens[path] = value
	}
	return &c
}
