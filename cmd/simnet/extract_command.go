package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"simnet/internal/edgelist"
	"simnet/internal/preflight"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var (
		source   corpusFlags
		toStdout bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a corpus and write its dataset file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			source.input = ""
			cfg, err = source.apply(cfg)
			if err != nil {
				return err
			}
			if cfg.Corpus.Root == "" {
				return fmt.Errorf("no corpus root: set corpus.root or pass --root")
			}
			if res := preflight.CheckCorpusRoot("Corpus root", cfg.Corpus.Root, cfg.Corpus.Extensions); !res.Passed {
				return fmt.Errorf("%s: %s", res.Name, res.Detail)
			}
			logger, err := ctx.newLogger(cmd, cfg)
			if err != nil {
				return err
			}

			docs, err := loadCorpus(cmd.Context(), cfg, "", logger)
			if err != nil {
				return err
			}
			if toStdout {
				return edgelist.WriteDataset(cmd.OutOrStdout(), docs.Documents())
			}
			res, err := edgelist.WriteDatasetFile(cfg.Paths.OutputDir, cfg.Corpus.Dataset, cfg.Corpus.Fingerprint, docs.Documents())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d documents (%d blank) to %s\n", docs.Len(), docs.Blank(), res.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&source.root, "root", "", "Source tree to extract (overrides corpus.root)")
	cmd.Flags().StringVar(&source.dataset, "dataset", "", "Dataset label (overrides corpus.dataset)")
	cmd.Flags().StringVar(&source.fingerprint, "fingerprint", "", "Fingerprint kind: author or comments (overrides corpus.fingerprint)")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "Write the dataset to stdout instead of paths.output_dir")
	return cmd
}
