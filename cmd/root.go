package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkritika/cortex/internal/app"
	"github.com/pkritika/cortex/internal/config"
	"github.com/pkritika/cortex/internal/store"
)

var rootCmd = &cobra.Command{
	Use:          "cortex",
	Short:        "Study platform backend and terminal quiz",
	Long:         "Cortex serves courses, practice tests, flashcards and progress stats over HTTP, and runs the same practice tests in the terminal.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("store", "", "Storage backend: memory, sqlite, mysql or redis (overrides CORTEX_STORE)")
	rootCmd.PersistentFlags().String("db", "", "SQLite file or MySQL DSN (overrides CORTEX_DB)")
	rootCmd.PersistentFlags().String("env-file", "", "Load settings from this .env file instead of ./.env")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log at the configured level instead of warnings only")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(flashcardsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(oracleCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies the persistent flags.
// Terminal commands keep results in SQLite unless a backend was chosen
// explicitly, so `cortex quiz` and `cortex stats` share history.
func loadConfig(cmd *cobra.Command, terminal bool) (*config.Config, error) {
	var files []string
	if f, _ := cmd.Flags().GetString("env-file"); f != "" {
		files = append(files, f)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if terminal && os.Getenv("CORTEX_STORE") == "" {
		cfg.Store.Driver = store.DriverSQLite
	}
	if s, _ := cmd.Flags().GetString("store"); s != "" {
		cfg.Store.Driver = s
	}
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		cfg.Store.DSN = db
	}
	if v, _ := cmd.Flags().GetBool("verbose"); terminal && !v {
		cfg.LogLevel = "warn"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openApp loads config and wires every service. Callers must Close it.
func openApp(cmd *cobra.Command, terminal bool) (*app.App, error) {
	cfg, err := loadConfig(cmd, terminal)
	if err != nil {
		return nil, err
	}
	a, err := app.New(cmd.Context(), cfg, cfg.Logger(os.Stderr))
	if err != nil {
		return nil, err
	}
	return a, nil
}
