package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-card-ledger/internal/balance"
	"github.com/sbilibin2017/gw-card-ledger/internal/models"
	"github.com/sbilibin2017/gw-card-ledger/internal/services"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cards with balance, usage and last use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, ok := models.ParseCardFilter(status)
			if !ok {
				return fmt.Errorf("invalid --status %q: use active, archived or all", status)
			}

			return opts.withLedger(cmd.Context(), func(l *services.Ledger) error {
				cards, err := l.ListCards(cmd.Context(), filter)
				if err != nil {
					return err
				}

				now := time.Now()
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tBALANCE\tINITIAL\tUSED\tLAST USED\tARCHIVED")
				for _, c := range cards {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%%\t%s\t%t\n",
						c.ID,
						c.Name,
						balance.Balance(c).StringFixed(2),
						c.InitialValue.StringFixed(2),
						balance.UsagePercentage(c).StringFixed(0),
						balance.LastUsedLabel(c, now),
						c.IsArchived,
					)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "active", "Cards to list: active, archived or all")
	return cmd
}
