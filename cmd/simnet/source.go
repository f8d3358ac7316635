package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"simnet/internal/config"
	"simnet/internal/corpus"
	"simnet/internal/logging"
)

// corpusFlags are the flags shared by every command that loads a corpus.
type corpusFlags struct {
	root        string
	input       string
	dataset     string
	fingerprint string
}

func (f *corpusFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.root, "root", "", "Source tree to extract (overrides corpus.root)")
	cmd.Flags().StringVar(&f.input, "input", "", "Read documents from a tab-separated id/text dataset file instead of extracting")
	cmd.Flags().StringVar(&f.dataset, "dataset", "", "Dataset label (overrides corpus.dataset)")
	cmd.Flags().StringVar(&f.fingerprint, "fingerprint", "", "Fingerprint kind: author or comments (overrides corpus.fingerprint)")
}

// apply returns a copy of cfg with the flag overrides folded in.
func (f *corpusFlags) apply(cfg *config.Config) (*config.Config, error) {
	if f.root != "" && f.input != "" {
		return nil, errors.New("--root and --input are mutually exclusive")
	}
	local := *cfg
	if v := strings.TrimSpace(f.dataset); v != "" {
		local.Corpus.Dataset = v
	}
	if v := strings.TrimSpace(f.fingerprint); v != "" {
		kind, err := corpus.ParseFingerprintKind(v)
		if err != nil {
			return nil, err
		}
		local.Corpus.Fingerprint = string(kind)
	}
	if v := strings.TrimSpace(f.root); v != "" {
		expanded, err := config.ExpandPath(v)
		if err != nil {
			return nil, fmt.Errorf("resolve --root: %w", err)
		}
		local.Corpus.Root = expanded
	}
	return &local, nil
}

// inputPath returns the expanded --input path, or "".
func (f *corpusFlags) inputPath() (string, error) {
	v := strings.TrimSpace(f.input)
	if v == "" {
		return "", nil
	}
	return config.ExpandPath(v)
}

// loadCorpus reads the dataset file at input when set, otherwise extracts
// cfg.Corpus.Root. Overrides apply in both cases.
func loadCorpus(ctx context.Context, cfg *config.Config, input string, logger *slog.Logger) (*corpus.Corpus, error) {
	overrides := cfg.OverrideTable()
	if input != "" {
		file, err := os.Open(input)
		if err != nil {
			return nil, fmt.Errorf("open dataset: %w", err)
		}
		defer file.Close()
		docs, err := corpus.ReadDataset(file)
		if err != nil {
			return nil, err
		}
		if applied := overrides.Apply(cfg.Corpus.Dataset, docs); applied > 0 {
			logger.Info("applied fingerprint overrides",
				logging.String(logging.FieldDataset, cfg.Corpus.Dataset),
				logging.Int("count", applied),
			)
		}
		return corpus.New(docs)
	}

	if cfg.Corpus.Root == "" {
		return nil, errors.New("no corpus source: set corpus.root, pass --root, or pass --input")
	}
	extractor := &corpus.Extractor{
		Dataset:    cfg.Corpus.Dataset,
		Kind:       cfg.FingerprintKind(),
		Extensions: cfg.Corpus.Extensions,
		Overrides:  overrides,
		Logger:     logger,
	}
	docs, err := extractor.Extract(ctx, cfg.Corpus.Root)
	if err != nil {
		return nil, err
	}
	return corpus.New(docs)
}
