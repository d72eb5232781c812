package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"themeforge/internal/config"
	"themeforge/internal/store/sqlite"
	"themeforge/internal/theme"
)

var rootCmd = &cobra.Command{
	Use:   "themeforge",
	Short: "ThemeForge - design tokens and themes for your terminal",
	Long: `ThemeForge manages a design-token tree and a set of themes built on it:
pick a theme (or follow the system preference), derive custom variants,
and export tokens as CSS, JSON, SCSS or Figma tokens.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// builds the fully wired theme manager plus a close func for the db handle
func newManager() (*theme.Manager, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open theme database: %w", err)
	}

	manager := theme.NewManager(theme.Options{
		Selection: config.Selection{},
		Prefs:     theme.TerminalSource{},
		Customs:   sqlite.NewThemeRepository(db),
		Logger:    logger,
	})

	closeFn := func() {
		manager.Destroy()
		db.Close()
	}
	return manager, closeFn, nil
}
