// Package cmd provides the cardctl commands. They work directly against the
// configured storage backend, so the HTTP server does not need to run.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-card-ledger/internal/config"
	"github.com/sbilibin2017/gw-card-ledger/internal/logger"
	"github.com/sbilibin2017/gw-card-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-card-ledger/internal/services"
)

type rootOptions struct {
	cfgFile  string
	logLevel string
	cfg      *config.Config
}

// NewRootCmd builds the cardctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "cardctl",
		Short: "Manage the prepaid card ledger from the command line",
		Long: `cardctl reads and writes the card ledger through the same storage
backend the server uses (STORE_DRIVER).

Example:
  cardctl list --status all
  cardctl export --out backup.json
  cardctl import --mode replace backup.json
  cardctl token`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			level := cfg.App.LogLevel
			if opts.logLevel != "" {
				level = opts.logLevel
			}
			if err := logger.Initialize(level, "console"); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "config.env", "Path to configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (overrides APP_LOG_LEVEL)")

	root.AddCommand(
		newListCmd(opts),
		newExportCmd(opts),
		newImportCmd(opts),
		newTokenCmd(opts),
	)
	return root
}

// Execute runs the root command.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// withLedger opens the configured backend, runs fn and closes the backend.
func (o *rootOptions) withLedger(ctx context.Context, fn func(l *services.Ledger) error) error {
	store, closeStore, err := repositories.Open(ctx, o.cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Log.Errorw("storage close error", "error", err)
		}
	}()

	return fn(services.NewLedger(store, services.WithAutoArchive(o.cfg.Ledger.AutoArchive)))
}
