package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-card-ledger/internal/models"
	"github.com/sbilibin2017/gw-card-ledger/internal/services"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load cards from a JSON document",
		Long: `Imports a document with a "cards" array (or a bare array of cards).
--mode add creates new cards next to the existing ones; --mode replace
discards every existing card first. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importMode := models.ImportMode(mode)
			if !importMode.Valid() {
				return fmt.Errorf("invalid --mode %q: use add or replace", mode)
			}

			var (
				data []byte
				err  error
			)
			if args[0] == "-" {
				data, err = io.ReadAll(cmd.InOrStdin())
			} else {
				data, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			return opts.withLedger(cmd.Context(), func(l *services.Ledger) error {
				n, err := l.Import(cmd.Context(), data, importMode)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %d cards (%s)\n", n, importMode)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "", "Import mode: add or replace")
	_ = cmd.MarkFlagRequired("mode")
	return cmd
}
