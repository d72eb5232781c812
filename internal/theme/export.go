package theme

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"themeforge/internal/tokens"
)

// Export serializes the currently resolved theme. Supported formats are
// "json", "css" (an override rule block) and "go" (a source literal).
func (m *Manager) Export(format string) (string, error) {
	t := m.Resolved()
	if t == nil {
		return "", fmt.Errorf("%w: no theme is active", ErrThemeNotFound)
	}
	switch format {
	case "json":
		data, err := json.MarshalIndent(t, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal theme: %w", err)
		}
		return string(data), nil
	case "css":
		return exportThemeCSS(t), nil
	case "go":
		return exportThemeGo(t), nil
	default:
		return "", fmt.Errorf("%w: %s", tokens.ErrUnknownFormat, format)
	}
}

func exportThemeCSS(t *Theme) string {
	var b strings.Builder
	fmt.Fprintf(&b, ":root[data-theme=%q] {\n", t.ID)
	for _, path := range sortedPaths(t.Tokens) {
		fmt.Fprintf(&b, "  %s: %s;\n", tokens.PropertyName("", path), t.Tokens[path])
	}
	b.WriteString("}")
	return b.String()
}

func exportThemeGo(t *Theme) string {
	var b strings.Builder
	b.WriteString("&theme.Theme{\n")
	fmt.Fprintf(&b, "\tID:          %q,\n", t.ID)
	fmt.Fprintf(&b, "\tName:        %q,\n", t.Name)
	if t.Description != "" {
		fmt.Fprintf(&b, "\tDescription: %q,\n", t.Description)
	}
	b.WriteString("\tTokens: map[string]string{\n")
	for _, path := range sortedPaths(t.Tokens) {
		fmt.Fprintf(&b, "\t\t%q: %q,\n", path, t.Tokens[path])
	}
	b.WriteString("\t},\n")
	fmt.Fprintf(&b, "\tAccessibility: theme.Accessibility{ContrastRatio: %v, ColorBlindnessFriendly: %v, ReducedMotion: %v},\n",
		t.Accessibility.ContrastRatio, t.Accessibility.ColorBlindnessFriendly, t.Accessibility.ReducedMotion)
	b.WriteString("}")
	return b.String()
}

func sortedPaths(values map[string]string) []string {
	paths := make([]string, 0, len(values))
	for path := range values {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
