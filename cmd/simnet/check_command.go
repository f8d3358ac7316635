package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"simnet/internal/config"
	"simnet/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var source corpusFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check directories and the corpus source before a build",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err = source.apply(cfg)
			if err != nil {
				return err
			}
			input, err := source.inputPath()
			if err != nil {
				return fmt.Errorf("resolve --input: %w", err)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cfg, preflight.Sources{Root: cfg.Corpus.Root, Dataset: input})

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, r := range results {
				kind := statusOK
				detail := r.Detail
				if !r.Passed {
					kind = statusError
				}
				if detail == "" {
					detail = "ready"
				}
				fmt.Fprintln(out, renderStatusLine(r.Name, kind, detail, colorize))
			}

			fmt.Fprintln(out)
			for _, line := range renderSectionHeader("Networks", colorize) {
				fmt.Fprintln(out, line)
			}
			for _, line := range sweepLines(cfg, colorize) {
				fmt.Fprintln(out, line)
			}

			if failed := preflight.Failed(results); len(failed) > 0 {
				return fmt.Errorf("%d preflight check(s) failed", len(failed))
			}
			return nil
		},
	}

	source.register(cmd)
	return cmd
}

func sweepLines(cfg *config.Config, colorize bool) []string {
	lines := []string{
		renderStatusLine("Dataset", statusInfo, fmt.Sprintf("%s (%s)", cfg.Corpus.Dataset, cfg.Corpus.Fingerprint), colorize),
		renderStatusLine("Ledger", statusInfo, yesNo(cfg.Ledger.Enabled), colorize),
		renderStatusLine("Workers", statusInfo, strconv.Itoa(cfg.Network.Workers), colorize),
	}
	models, err := cfg.SelectedModels()
	if err != nil {
		return append(lines, renderStatusLine("Models", statusError, err.Error(), colorize))
	}
	for _, m := range models {
		params := cfg.SweepParameters(m)
		if len(params) == 0 {
			lines = append(lines, renderStatusLine(string(m), statusInfo, "single network", colorize))
			continue
		}
		values := make([]string, len(params))
		for i, p := range params {
			values[i] = strconv.FormatFloat(p, 'f', -1, 64)
		}
		lines = append(lines, renderStatusLine(string(m), statusInfo, strings.Join(values, ", "), colorize))
	}
	return lines
}
