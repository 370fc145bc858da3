package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/buildinfo"
	"github.com/tallyhq/tally/internal/categories"
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "tally",
		Short:   "Personal income and expense tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "tracker directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand(&dir))
	rootCmd.AddCommand(newListCommand(&dir))
	rootCmd.AddCommand(newUpdateCommand(&dir))
	rootCmd.AddCommand(newDeleteCommand(&dir))
	rootCmd.AddCommand(newSummaryCommand(&dir))
	rootCmd.AddCommand(newChartCommand(&dir))
	rootCmd.AddCommand(newExportCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))

	return rootCmd
}

// env bundles the collaborators a subcommand needs: config, category set,
// and an opened store.
type env struct {
	cfg   *config.Config
	cats  *categories.Set
	store *store.Store
}

func openEnv(dir string) (*env, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(absDir)
	if err != nil {
		return nil, err
	}

	log := newLogger(cfg.Log.Level)
	st := store.Open(storage.NewFile(cfg.DataFile()), log)

	return &env{
		cfg:   cfg,
		cats:  categories.New(cfg.Categories),
		store: st,
	}, nil
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()
}
