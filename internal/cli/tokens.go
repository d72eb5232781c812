package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"themeforge/internal/styles"
	"themeforge/internal/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Inspect and export the design-token tree",
}

var tokensListCmd = &cobra.Command{
	Use:   "list",
	Short: "List resolved token values",
	RunE:  runTokensList,
}

var tokensGetCmd = &cobra.Command{
	Use:   "get [path]",
	Short: "Resolve a single token by dotted path",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokensGet,
}

var tokensExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the token tree",
	Long:  `Export the resolved token tree as css, json, scss or figma tokens.`,
	RunE:  runTokensExport,
}

var tokensExportFormat string

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.AddCommand(tokensListCmd)
	tokensCmd.AddCommand(tokensGetCmd)
	tokensCmd.AddCommand(tokensExportCmd)

	tokensExportCmd.Flags().StringVarP(&tokensExportFormat, "format", "f", "css", "export format (css, json, scss, figma)")
}

func runTokensList(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	st := styles.New(manager.TokenStore())
	fmt.Println(st.Title.Render(fmt.Sprintf("Tokens (%s theme)", manager.ResolvedID())))

	manager.TokenStore().Tree().Walk(func(path string, tok tokens.Token) {
		fmt.Printf("  %-34s %-10s %s\n", path, st.Muted.Render(string(tok.Type)), tok.Value)
	})
	return nil
}

func runTokensGet(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	tok, ok := manager.TokenStore().Lookup(args[0])
	if !ok {
		return fmt.Errorf("token %q not found", args[0])
	}

	fmt.Printf("value:    %s\n", tok.Value)
	if tok.Fallback != "" {
		fmt.Printf("fallback: %s\n", tok.Fallback)
	}
	fmt.Printf("type:     %s\n", tok.Type)
	fmt.Printf("css:      %s\n", tokens.PropertyName("", args[0]))
	return nil
}

func runTokensExport(cmd *cobra.Command, args []string) error {
	manager, closeFn, err := newManager()
	if err != nil {
		return err
	}
	defer closeFn()

	out, err := tokens.Export(manager.TokenStore().Tree(), tokens.ExportFormat(tokensExportFormat))
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
