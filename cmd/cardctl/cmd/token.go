package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sbilibin2017/gw-card-ledger/internal/jwt"
)

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !opts.cfg.Auth.Enabled() {
				return errors.New("AUTH_SECRET is not set, the API does not require a token")
			}

			token, err := jwt.New(opts.cfg.Auth.Secret, opts.cfg.Auth.TokenTTL).Generate(cmd.Context(), subject)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", jwt.DefaultSubject, "Token subject")
	return cmd
}
