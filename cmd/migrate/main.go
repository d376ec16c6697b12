package main

import (
	"os"

	"go-emprec/internal/bootstrap"
	"go-emprec/internal/config"
	"go-emprec/internal/shared/migration"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runFunc applies one migration action against the configured database.
type runFunc func(action, dir string) error

func newRootCmd(defaultDir string, run runFunc) *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the employee database schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", defaultDir, "directory containing migration files")

	actions := []struct {
		name  string
		short string
	}{
		{migration.ActionUp, "Apply all pending migrations"},
		{migration.ActionDown, "Roll back all applied migrations"},
		{migration.ActionDrop, "Drop everything in the database"},
		{migration.ActionVersion, "Print the current schema version"},
	}
	for _, a := range actions {
		action := a.name
		root.AddCommand(&cobra.Command{
			Use:   action,
			Short: a.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(action, dir)
			},
		})
	}

	return root
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := bootstrap.NewLogger(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	root := newRootCmd(cfg.MigrationsDir, func(action, dir string) error {
		if err := cfg.Database.Validate(); err != nil {
			return err
		}
		return migration.Run(action, dir, cfg.Database.URL(), logger)
	})

	if err := root.Execute(); err != nil {
		logger.Error("migration failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
