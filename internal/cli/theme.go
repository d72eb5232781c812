package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"themeforge/internal/styles"
	"themeforge/internal/theme"
	"themeforge/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the active theme",
	Long: `Manage the active theme.

Run without arguments to launch the interactive theme selector TUI.
Use subcommands for direct theme management.

Examples:
  themeforge theme                 # Launch interactive selector
  themeforge theme set midnight    # Set theme directly
  themeforge theme list            # List available themes
  themeforge theme show            # Show the resolved theme
  themeforge theme toggle          # Flip between light and dark`,
	RunE: runThemeTUI,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-id]",
	Short: "Set the active theme",
	Long: `Set the active theme by id.

Built-in themes: light, dark, high-contrast, midnight, sepia, system.`,
	Args: cobra.ExactArgs(1),
	RunE: runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the currently resolved theme",
	RunE:  runThemeShow,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between light and dark",
	RunE:  runThemeToggle,
}

var themeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resolved theme",
	Long:  `Export the currently resolved theme as json, css or a go literal.`,
	RunE:  runThemeExport,
}

var themeImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import a theme from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeImport,
}

var themeVariantCmd = &cobra.Command{
	Use:   "variant [base-id] [new-id]",
	Short: "Create a theme variant",
	Long: `Create a new theme by overriding tokens of an existing one.

Example:
  themeforge theme variant light corporate --set colors.brand.primary=#0055AA`,
	Args: cobra.ExactArgs(2),
	RunE: runThemeVariant,
}

var (
	themeExportFormat string
	themeImportApply  bool
	variantOverrides  []string
	variantName       string
	variantDesc       string
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeImportCmd)
	themeCmd.AddCommand(themeVariantCmd)

	themeExportCmd.Flags().StringVarP(&themeExportFormat, "format", "f", "json", "export format (json, css, go)")
	themeImportCmd.Flags().BoolVar(&themeImportApply, "apply", false, "apply the theme after importing")
	themeVariantCmd.Flags().StringArrayVar(&variantOverrides, "set", nil, "token override as path=value (repeatable)")
	themeVariantCmd.Flags().StringVar(&variantName, "name", "", "display name for the variant")
	themeVariantCmd.Flags().StringVar(&variantDesc, "description", "", "description for the variant")
}

// launches theme selector
func runThemeTUI(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	model := tui.NewSelector(manager)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run theme selector: %w", err)
	}

	st := styles.New(manager.TokenStore())
	fmt.Println()
	fmt.Println(st.Success.Render(fmt.Sprintf("✓ Theme set to '%s'", manager.Current())))
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	if !manager.Apply(args[0]) {
		return fmt.Errorf("unknown theme %q, run 'themeforge theme list'", args[0])
	}

	fmt.Printf("✓ Theme set to '%s'\n", args[0])
	return nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	st := styles.New(manager.TokenStore())
	fmt.Println(st.Title.Render("Available themes"))
	for _, id := range manager.Registry().IDs() {
		t, err := manager.Registry().Get(id)
		if err != nil {
			continue
		}
		marker := "  "
		if id == manager.Current() {
			marker = st.Accent.Render("▸ ")
		}
		fmt.Printf("%s%-15s %s\n", marker, id, st.Muted.Render(t.Description))
	}
	return nil
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	t := manager.Resolved()
	st := styles.New(manager.TokenStore())

	fmt.Println(st.Title.Render(t.Name))
	if manager.Current() == "system" {
		fmt.Println(st.Muted.Render(fmt.Sprintf("selected: system (%s preference) → %s", manager.Preference(), t.ID)))
	} else {
		fmt.Println(st.Muted.Render("selected: " + t.ID))
	}
	fmt.Println()
	for _, path := range sortedKeys(t.Tokens) {
		fmt.Printf("  %-32s %s\n", path, t.Tokens[path])
	}
	return nil
}

func runThemeToggle(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	if !manager.Toggle() {
		return fmt.Errorf("failed to toggle theme")
	}
	fmt.Printf("✓ Theme set to '%s'\n", manager.Current())
	return nil
}

func runThemeExport(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	out, err := manager.Export(themeExportFormat)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func runThemeImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}

	var cfg theme.Theme
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse theme file: %w", err)
	}

	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	imported, err := manager.Import(&cfg, themeImportApply)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Imported theme '%s'\n", imported.ID)
	if themeImportApply {
		fmt.Printf("✓ Theme set to '%s'\n", imported.ID)
	}
	return nil
}

func runThemeVariant(cmd *cobra.Command, args []string) error {
	overrides := make(map[string]string, len(variantOverrides))
	for _, kv := range variantOverrides {
		path, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid --set value %q, expected path=value", kv)
		}
		overrides[path] = value
	}

	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	variant, err := manager.CreateVariant(args[0], overrides, args[1], variantName, variantDesc)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Created theme '%s' from '%s' (%d overrides)\n", variant.ID, args[0], len(overrides))
	return nil
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
