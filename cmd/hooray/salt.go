package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-hooray/hashing"
)

func newSaltCmd(a *app) *cobra.Command {
	var rounds int
	cmd := &cobra.Command{
		Use:   "salt",
		Short: "Generate a bcrypt salt prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			salt, err := hashing.BcryptSalt(rounds)
			if err != nil {
				return err
			}
			a.logger.Debug("Generated salt", zap.Int("rounds", rounds))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), salt)
			return err
		},
	}
	cmd.Flags().IntVarP(&rounds, "rounds", "r", hashing.DefaultBcryptCost, "Bcrypt cost")
	return cmd
}
