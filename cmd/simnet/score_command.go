package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"simnet/internal/logging"
	"simnet/internal/network"
)

type scoreReport struct {
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	SourceBlank bool    `json:"source_blank"`
	TargetBlank bool    `json:"target_blank"`
	Exact       bool    `json:"exact"`
	Shared      int     `json:"shared_tokens"`
	Jaccard     float64 `json:"jaccard"`
	Cosine      float64 `json:"cosine"`
}

func newScoreCommand(ctx *commandContext) *cobra.Command {
	var (
		source  corpusFlags
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "score <id> <id>",
		Short: "Show every model's score for one pair of documents",
		Args:  cobra.ExactArgs(2),
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
			logger, err := ctx.newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			docs, err := loadCorpus(cmd.Context(), cfg, input, logger)
			if err != nil {
				return err
			}
			i, ok := docs.Index(args[0])
			if !ok {
				return fmt.Errorf("document %q not found in corpus", args[0])
			}
			j, ok := docs.Index(args[1])
			if !ok {
				return fmt.Errorf("document %q not found in corpus", args[1])
			}

			s := network.NewBuilder(docs, network.WithLogger(logger)).Scores(i, j)
			logger.Debug("scored pair",
				logging.String("source", s.Source),
				logging.String("target", s.Target),
				logging.Int("documents", docs.Len()),
			)
			report := scoreReport{
				Source:      s.Source,
				Target:      s.Target,
				SourceBlank: s.SourceBlank,
				TargetBlank: s.TargetBlank,
				Exact:       s.Exact,
				Shared:      s.Shared,
				Jaccard:     s.Jaccard,
				Cosine:      s.Cosine,
			}
			if jsonOut {
				return writeJSON(cmd, report)
			}
			printScoreReport(cmd, report)
			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the scores as JSON")
	return cmd
}

func printScoreReport(cmd *cobra.Command, r scoreReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s <-> %s\n", r.Source, r.Target)
	if r.SourceBlank || r.TargetBlank {
		fmt.Fprintln(out, "At least one document is blank; blank documents never match.")
	}
	rows := [][]string{
		{string(network.ModelExact), yesNo(r.Exact)},
		{string(network.ModelBOW), strconv.Itoa(r.Shared)},
		{string(network.ModelJaccard), strconv.FormatFloat(r.Jaccard, 'f', 4, 64)},
		{string(network.ModelCosine), strconv.FormatFloat(r.Cosine, 'f', 4, 64)},
	}
	fmt.Fprintln(out, renderTable([]string{"Model", "Score"}, rows, []columnAlignment{alignLeft, alignRight}))
}
