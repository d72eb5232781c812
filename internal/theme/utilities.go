package theme

import (
	"math"
	"strconv"
	"strings"
)

// Derived queries over the manager's resolved state. Each accepts an
// optional explicit theme id and defaults to the current resolution.

// IsDark reports whether the theme's primary background is dark. Unknown
// themes and unparseable colors report false.
func (m *Manager) IsDark(id ...string) bool {
	t := m.pick(id)
	if t == nil {
		return false
	}
	bg := m.themeColor(t, "colors.background.primary")
	lum, ok := relativeLuminance(bg)
	if !ok {
		return false
	}
	return lum < 0.5
}

// ContrastRatio returns the theme's declared contrast ratio, defaulting to
// 4.5 when the theme is unknown.
func (m *Manager) ContrastRatio(id ...string) float64 {
	t := m.pick(id)
	if t == nil {
		return 4.5
	}
	return t.Accessibility.ContrastRatio
}

// PrefersReducedMotion reports the theme's reduced-motion setting; unknown
// themes report false.
func (m *Manager) PrefersReducedMotion(id ...string) bool {
	t := m.pick(id)
	if t == nil {
		return false
	}
	return t.Accessibility.ReducedMotion
}

// Color returns the theme's value for a color token path, falling back to
// the base token tree, then "".
func (m *Manager) Color(path string, id ...string) string {
	t := m.pick(id)
	if t == nil {
		return ""
	}
	return m.themeColor(t, path)
}

func (m *Manager) pick(id []string) *Theme {
	if len(id) > 0 {
		t, err := m.registry.Get(id[0])
		if err != nil {
			m.log.Warn().Str("theme", id[0]).Msg("unknown theme in query, using default")
			return nil
		}
		if t.IsAutomatic {
			return m.Resolved()
		}
		return t
	}
	return m.Resolved()
}

// themeColor resolves a token path for a specific theme. Paths the theme
// does not override fall back to the base tree so the answer does not depend
// on whichever theme happens to be applied.
func (m *Manager) themeColor(t *Theme, path string) string {
	if value, ok := t.Tokens[path]; ok {
		return value
	}
	return m.tokens.Base().Value(path, "")
}

// relativeLuminance computes WCAG relative luminance for a #rgb/#rrggbb
// color. The second return is false for anything it cannot parse.
func relativeLuminance(hex string) (float64, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, false
	}
	channel := func(s string) (float64, bool) {
		v, err := strconv.ParseUint(s, 16, 8)
		if err != nil {
			return 0, false
		}
		c := float64(v) / 255
		if c <= 0.03928 {
			return c / 12.92, true
		}
		return math.Pow((c+0.055)/1.055, 2.4), true
	}
	r, ok1 := channel(hex[0:2])
	g, ok2 := channel(hex[2:4])
	b, ok3 := channel(hex[4:6])
	if !ok1 || !ok2 || !ok3 {
		return 0, false
	}
	return 0.2126*r + 0.7152*g + 0.0722*b, true
}
