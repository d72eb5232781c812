package styles

import (
	"github.com/charmbracelet/lipgloss"

	"themeforge/internal/tokens"
)

// Styles is the semantic lipgloss style set derived from the live token
// store. Rebuild it after every theme change.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Header   lipgloss.Style
	Help     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Text      lipgloss.Style
	Selected  lipgloss.Style
	Border    lipgloss.Style
	Swatch    lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Separator lipgloss.Style
}

// creates all styles from the store's resolved token values
func New(store *tokens.Store) *Styles {
	primary := lipgloss.Color(store.Value("colors.brand.primary", "#7D56F4"))
	accent := lipgloss.Color(store.Value("colors.brand.accent", "#F780E2"))
	text := lipgloss.Color(store.Value("colors.text.primary", "#FAFAFA"))
	muted := lipgloss.Color(store.Value("colors.text.muted", "#6C6C6C"))
	secondary := lipgloss.Color(store.Value("colors.text.secondary", "#888888"))
	inverse := lipgloss.Color(store.Value("colors.text.inverse", "#000000"))
	border := lipgloss.Color(store.Value("colors.border.default", "#444444"))

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary),

		Header: lipgloss.NewStyle().
			Foreground(inverse).
			Background(primary).
			Bold(true).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(store.Value("colors.semantic.success", "#04B575"))).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(store.Value("colors.semantic.error", "#FF0000"))).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(store.Value("colors.semantic.warning", "#FF8800"))),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(store.Value("colors.semantic.info", "#0088FF"))),

		Selected: lipgloss.NewStyle().
			Foreground(inverse).
			Background(primary).
			Bold(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Swatch: lipgloss.NewStyle().
			Padding(0, 2),

		Muted: lipgloss.NewStyle().
			Foreground(muted),

		Accent: lipgloss.NewStyle().
			Foreground(accent),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(store.Value("colors.border.subtle", "#333333"))),

		Text: lipgloss.NewStyle().
			Foreground(text),
	}
}
