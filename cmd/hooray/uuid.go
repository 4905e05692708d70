package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-hooray/str"
)

func newUUIDCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "uuid",
		Short: "Generate random version 4 UUIDs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be at least 1, got %d", count)
			}
			for i := 0; i < count; i++ {
				u, err := str.UUIDv4()
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), u); err != nil {
					return err
				}
			}
			a.logger.Debug("Generated UUIDs", zap.Int("count", count))
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of UUIDs")
	return cmd
}
