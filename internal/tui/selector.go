package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"themeforge/internal/styles"
	"themeforge/internal/theme"
)

// SelectorModel is the interactive theme picker.
type SelectorModel struct {
	manager       *theme.Manager
	themeIDs      []string
	selectedIndex int
	width         int
	height        int
	quitting      bool
	confirmed     bool
}

func NewSelector(manager *theme.Manager) SelectorModel {
	ids := manager.Registry().IDs()
	selected := 0
	for i, id := range ids {
		if id == manager.Current() {
			selected = i
			break
		}
	}

	return SelectorModel{
		manager:       manager,
		themeIDs:      ids,
		selectedIndex: selected,
		width:         100, // default width
		height:        30,  // default height
	}
}

func (m SelectorModel) Init() tea.Cmd {
	return nil
}

func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.themeIDs)-1 {
				m.selectedIndex++
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("t"))):
			m.manager.Toggle()
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if !m.manager.Apply(m.themeIDs[m.selectedIndex]) {
				return m, nil
			}
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SelectorModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		return "Theme selection cancelled.\n"
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	st := styles.New(m.manager.TokenStore())

	leftWidth := m.width / 3
	if leftWidth < 24 {
		leftWidth = 24
	}
	rightWidth := m.width - leftWidth - 4
	if rightWidth < 30 {
		rightWidth = 30
	}

	left := m.renderThemeList(st, leftWidth)
	right := m.renderPreview(st, rightWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	help := st.Help.Render("↑/↓ select · enter apply · t toggle light/dark · q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		st.Title.Render("Choose a theme"),
		"",
		body,
		"",
		help,
	)
}

func (m SelectorModel) renderThemeList(st *styles.Styles, width int) string {
	var b strings.Builder
	for i, id := range m.themeIDs {
		t, err := m.manager.Registry().Get(id)
		if err != nil {
			continue
		}
		label := t.Name
		if id == m.manager.Current() {
			label += " (current)"
		}
		if i == m.selectedIndex {
			b.WriteString(st.Selected.Width(width - 4).Render("▸ " + label))
		} else {
			b.WriteString(st.Text.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return st.Border.Width(width).Render(b.String())
}

func (m SelectorModel) renderPreview(st *styles.Styles, width int) string {
	id := m.themeIDs[m.selectedIndex]
	t, err := m.manager.Registry().Get(id)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(st.Header.Render(t.Name))
	b.WriteString("\n\n")
	b.WriteString(st.Subtitle.Render(t.Description))
	b.WriteString("\n\n")

	if t.IsAutomatic {
		b.WriteString(st.Muted.Render(fmt.Sprintf("Resolves to %q in light mode, %q in dark mode.", t.LightTheme, t.DarkTheme)))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSwatches(t))
	}

	b.WriteString("\n")
	b.WriteString(st.Muted.Render(fmt.Sprintf("contrast %.1f:1", t.Accessibility.ContrastRatio)))
	if t.Accessibility.ReducedMotion {
		b.WriteString(st.Muted.Render(" · reduced motion"))
	}
	if t.Accessibility.ColorBlindnessFriendly {
		b.WriteString(st.Muted.Render(" · color-blind friendly"))
	}

	return st.Border.Width(width).Render(b.String())
}

var swatchPaths = []struct {
	label string
	path  string
}{
	{"primary", "colors.brand.primary"},
	{"secondary", "colors.brand.secondary"},
	{"accent", "colors.brand.accent"},
	{"success", "colors.semantic.success"},
	{"error", "colors.semantic.error"},
	{"warning", "colors.semantic.warning"},
	{"info", "colors.semantic.info"},
	{"background", "colors.background.primary"},
}

func (m SelectorModel) renderSwatches(t *theme.Theme) string {
	var b strings.Builder
	for _, sw := range swatchPaths {
		value, ok := t.Tokens[sw.path]
		if !ok {
			value = m.manager.TokenStore().Value(sw.path, "")
		}
		block := lipgloss.NewStyle().Background(lipgloss.Color(value)).Render("      ")
		b.WriteString(fmt.Sprintf("%s %-11s %s\n", block, sw.label, value))
	}
	return b.String()
}
