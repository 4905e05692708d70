package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/go-hooray/str"
)

func newDurationCmd(a *app) *cobra.Command {
	opts := str.DefaultDurationOptions()
	var locale string
	cmd := &cobra.Command{
		Use:   "duration SECONDS",
		Short: "Render a number of seconds as human-readable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seconds, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid seconds %q: %w", args[0], err)
			}
			if opts.Locale, err = str.ParseLocale(locale); err != nil {
				return err
			}
			a.logger.Debug("Rendering duration",
				zap.Float64("seconds", seconds),
				zap.Int("precision", opts.Precision),
				zap.Stringer("locale", opts.Locale))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), str.Duration(seconds, opts))
			return err
		},
	}
	cmd.Flags().IntVarP(&opts.Precision, "precision", "p", opts.Precision, "Number of units to render")
	cmd.Flags().StringVarP(&locale, "locale", "l", opts.Locale.String(), "Output language (en or de)")
	return cmd
}
