package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-card-ledger/internal/services"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [card-id...]",
		Short: "Write cards and their transactions as a JSON document",
		Long:  "Exports every card, or only the given card ids, in the same document the upload endpoint accepts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withLedger(cmd.Context(), func(l *services.Ledger) error {
				payload, err := l.Export(cmd.Context(), args...)
				if err != nil {
					return err
				}

				toFile := out != "" && out != "-"
				var w io.Writer = cmd.OutOrStdout()
				if toFile {
					f, err := os.Create(out)
					if err != nil {
						return fmt.Errorf("failed to create %s: %w", out, err)
					}
					defer f.Close()
					w = f
				}

				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(payload); err != nil {
					return err
				}
				if toFile {
					fmt.Fprintf(cmd.OutOrStdout(), "Exported %d cards to %s\n", len(payload.Cards), out)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}
