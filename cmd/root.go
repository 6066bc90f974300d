package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/timesdrill/internal/app"
	"github.com/abhisek/timesdrill/internal/config"
	"github.com/abhisek/timesdrill/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "timesdrill",
	Short: "Multiplication tables practice in the terminal",
	Long: "Timesdrill builds timed multiple-choice quizzes on the multiplication\n" +
		"tables you pick and keeps your best score and history.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.Options{})
	},
}

// Execute runs the command line with ctx as every command's context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides "+config.EnvDB+")")
	rootCmd.PersistentFlags().String("locale", "", "Interface language, e.g. en or es (overrides "+config.EnvLocale+")")
	rootCmd.PersistentFlags().String("profiles", "", "JSON file with difficulty profile overrides (overrides "+config.EnvProfiles+")")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
