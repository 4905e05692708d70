package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-hooray/str"
)

func newPluralizeCmd(a *app) *cobra.Command {
	var token string
	cmd := &cobra.Command{
		Use:   "pluralize TEMPLATE AMOUNT",
		Short: "Render a bracket pluralization template",
		Example: `  hooray pluralize '$ item(s) need{s}' 2
  hooray pluralize --token '#' '# file(s)' 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			a.logger.Debug("Pluralizing", zap.String("template", args[0]), zap.Int("amount", amount))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), str.Pluralize(args[0], amount, token))
			return err
		},
	}
	cmd.Flags().StringVarP(&token, "token", "t", str.DefaultToken, "Placeholder replaced by the amount")
	return cmd
}
