package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"todoapp/internal/config"
	"todoapp/internal/db"
	"todoapp/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a demo account with sample data",
	Long: `Seed creates a demo user with a handful of todos, categories, tags,
comments and reminders, using the database configured for the server
(DB_DRIVER, DATABASE_DSN, CONFIG_FILE).`,
	SilenceUsage: true,
	RunE:         runSeed,
}

var opts seedOptions

func init() {
	rootCmd.Flags().StringVar(&opts.Email, "email", "demo@example.com", "email of the demo account")
	rootCmd.Flags().StringVar(&opts.Password, "password", "demo1234", "password of the demo account")
	rootCmd.Flags().BoolVar(&opts.Replace, "replace", false, "delete an existing account with the same email first")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.LogLevel, "text")

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	if err := db.Migrate(gormDB); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	stats, err := seed(ctx, gormDB, cfg.BcryptCost, opts)
	if err != nil {
		return err
	}

	logger.Info("seed completed",
		slog.String("email", opts.Email),
		slog.Int("todos", stats.Todos),
		slog.Int("categories", stats.Categories),
		slog.Int("tags", stats.Tags),
		slog.Int("comments", stats.Comments),
		slog.Int("reminders", stats.Reminders),
	)
	return nil
}
