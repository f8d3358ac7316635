package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"simnet/internal/config"
	"simnet/internal/network"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var (
		source  corpusFlags
		models  []string
		workers int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build similarity networks for every configured model and threshold",
		Long: `Build loads a corpus (extracted from --root or read from --input), runs every
selected model over its parameter sweep, and writes one edge list per model and
parameter into paths.output_dir together with the dataset file.`,
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

			resolved, err := resolveModels(models, cfg)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				if workers < 1 {
					return fmt.Errorf("--workers must be at least 1, got %d", workers)
				}
				cfg.Network.Workers = workers
			}

			logger, err := ctx.newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			report, err := runBuild(signalCtx, buildRequest{
				cfg:     cfg,
				input:   input,
				models:  resolved,
				workers: cfg.Network.Workers,
				logger:  logger,
			})
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, report)
			}
			printBuildReport(cmd, report)
			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().StringSliceVarP(&models, "model", "m", nil, "Model to run (exact, bow, jaccard, cosine); repeatable")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Goroutines evaluating pair rows (overrides network.workers)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the build summary as JSON")
	return cmd
}

func printBuildReport(cmd *cobra.Command, report *buildReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s: %s/%s, %d documents (%d blank), %d pairs\n",
		report.RunID, report.Dataset, report.Fingerprint, report.Documents, report.Blank, report.Pairs)

	rows := make([][]string, 0, len(report.EdgeSets))
	for _, set := range report.EdgeSets {
		param := set.Parameter
		if param == "" {
			param = "-"
		}
		rows = append(rows, []string{string(set.Model), param, fmt.Sprintf("%d", set.Edges), filepath.Base(set.Path)})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Model", "Parameter", "Edges", "File"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
	))
	fmt.Fprintf(out, "Output: %s\n", filepath.Dir(report.DatasetFile))
	fmt.Fprintf(out, "Finished in %s\n", report.Duration)
}

// resolveModels prefers --model values over network.models.
func resolveModels(flagValues []string, cfg *config.Config) ([]network.Model, error) {
	if len(flagValues) > 0 {
		return config.ParseModels(flagValues)
	}
	return cfg.SelectedModels()
}
