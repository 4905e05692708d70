package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-hooray/hashing"
)

const (
	outputYAML = "yaml"
	outputJSON = "json"
)

func newMCFCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "mcf [HASH...]",
		Short: "Describe password hashes in the modular crypt format",
		Long: `Describe password hashes in the modular crypt format, or bare hex digests.
Hashes are read one per line from stdin when none are given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputYAML && output != outputJSON {
				return fmt.Errorf("unknown output format %q (want %s or %s)", output, outputYAML, outputJSON)
			}
			hashes := args
			if len(hashes) == 0 {
				var err error
				if hashes, err = readLines(cmd.InOrStdin()); err != nil {
					return err
				}
			}
			return runMCF(a.logger, cmd.OutOrStdout(), hashes, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outputYAML, "Output format (yaml or json)")
	return cmd
}

func runMCF(logger *zap.Logger, w io.Writer, hashes []string, output string) error {
	var descs []hashing.Descriptor
	var errs error
	for i, h := range hashes {
		d, err := hashing.ParseMCF(h)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("hash #%d: %w", i+1, err))
			continue
		}
		logger.Debug("Parsed hash", zap.Int("index", i+1), zap.String("algorithm", string(d.Algorithm)))
		descs = append(descs, d)
	}

	switch output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, d := range descs {
			if err := enc.Encode(d); err != nil {
				return err
			}
		}
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, d := range descs {
			if err := enc.Encode(d); err != nil {
				return err
			}
		}
		if err := enc.Close(); err != nil {
			return err
		}
	}
	return errs
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hashes: %w", err)
	}
	return lines, nil
}
