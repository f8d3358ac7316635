package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"simnet/internal/config"
	"simnet/internal/corpus"
	"simnet/internal/edgelist"
	"simnet/internal/ledger"
	"simnet/internal/logging"
	"simnet/internal/network"
	"simnet/internal/preflight"
)

// buildReport summarizes one build for table and JSON output.
type buildReport struct {
	RunID       string          `json:"run_id"`
	Dataset     string          `json:"dataset"`
	Fingerprint string          `json:"fingerprint"`
	Documents   int             `json:"documents"`
	Blank       int             `json:"blank_documents"`
	Pairs       int             `json:"pairs"`
	DatasetFile string          `json:"dataset_file"`
	EdgeSets    []edgeSetReport `json:"edge_sets"`
	Duration    string          `json:"duration"`
	Ledger      string          `json:"ledger,omitempty"`
	Status      ledger.Status   `json:"status"`
	Models      []network.Model `json:"models"`
}

type edgeSetReport struct {
	Model     network.Model `json:"model"`
	Parameter string        `json:"parameter"`
	Edges     int           `json:"edges"`
	Path      string        `json:"path"`
	SHA256    string        `json:"sha256"`
}

// buildRequest carries everything a build needs after flag resolution.
type buildRequest struct {
	cfg     *config.Config
	input   string
	models  []network.Model
	workers int
	logger  *slog.Logger
}

func runBuild(ctx context.Context, req buildRequest) (*buildReport, error) {
	cfg := req.cfg
	logger := logging.NewComponentLogger(req.logger, "build")
	started := time.Now()

	if err := preflight.Err(preflight.RunAll(cfg, preflight.Sources{Root: cfg.Corpus.Root, Dataset: req.input})); err != nil {
		return nil, err
	}

	lock, err := edgelist.Lock(cfg.Paths.OutputDir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = lock.Unlock() }()

	docs, err := loadCorpus(ctx, cfg, req.input, logger)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	report := &buildReport{
		Dataset:     cfg.Corpus.Dataset,
		Fingerprint: cfg.Corpus.Fingerprint,
		Documents:   docs.Len(),
		Blank:       docs.Blank(),
		Pairs:       network.PairCount(docs.Len()),
		Models:      req.models,
		Status:      ledger.StatusRunning,
	}

	var store *ledger.Store
	if cfg.Ledger.Enabled {
		store, err = ledger.Open(cfg)
		if err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		defer store.Close()
		run, err := store.StartRun(ctx, ledger.RunInfo{
			Dataset:     report.Dataset,
			Fingerprint: report.Fingerprint,
			Documents:   report.Documents,
		})
		if err != nil {
			return nil, fmt.Errorf("start run: %w", err)
		}
		report.RunID = run.ID
		report.Ledger = store.Path()
	} else {
		report.RunID = uuid.NewString()
	}

	ctx = logging.WithRunID(ctx, report.RunID)
	ctx = logging.WithDataset(ctx, report.Dataset)
	logger = logging.WithContext(ctx, logger)
	logger.Info("build started",
		logging.Int("documents", report.Documents),
		logging.Int("blank_documents", report.Blank),
		logging.Int("pairs", report.Pairs),
		logging.Int("workers", req.workers),
	)
	if report.Documents > 0 && report.Blank == report.Documents {
		logging.WarnWithContext(logger, "every document is blank", "corpus_all_blank",
			logging.Alert("empty_networks"),
			logging.String(logging.FieldErrorHint, "check corpus.fingerprint and the source tree"),
			logging.String(logging.FieldImpact, "every edge list will be empty"),
		)
	}

	buildErr := writeNetworks(ctx, req, docs, store, report, logger)

	report.Status = ledger.StatusCompleted
	switch {
	case errors.Is(buildErr, context.Canceled):
		report.Status = ledger.StatusCanceled
	case buildErr != nil:
		report.Status = ledger.StatusFailed
	}
	if store != nil {
		// ctx may already be canceled here.
		if err := store.FinishRun(context.WithoutCancel(ctx), report.RunID, report.Status); err != nil {
			logging.WarnWithContext(logger, "ledger update failed", "ledger_finish_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "run stays marked as running in the ledger"),
			)
		}
	}
	report.Duration = time.Since(started).Round(time.Millisecond).String()
	if buildErr != nil {
		logging.ErrorWithContext(logger, "build failed", "build_failed", logging.Error(buildErr))
		return report, buildErr
	}
	logger.Info("build finished",
		logging.Int("edge_sets", len(report.EdgeSets)),
		logging.String("duration", report.Duration),
	)
	return report, nil
}

func writeNetworks(ctx context.Context, req buildRequest, docs *corpus.Corpus, store *ledger.Store, report *buildReport, logger *slog.Logger) error {
	cfg := req.cfg
	dir := cfg.Paths.OutputDir

	dataset, err := edgelist.WriteDatasetFile(dir, report.Dataset, report.Fingerprint, docs.Documents())
	if err != nil {
		return err
	}
	report.DatasetFile = dataset.Path

	builder := network.NewBuilder(docs,
		network.WithWorkers(req.workers),
		network.WithLogger(logger),
	)
	for _, model := range req.models {
		sets, err := builder.Sweep(logging.WithModel(ctx, string(model)), model, cfg.SweepParameters(model))
		if err != nil {
			return err
		}
		for _, set := range sets {
			res, err := edgelist.WriteEdgeSet(dir, report.Dataset, report.Fingerprint, set)
			if err != nil {
				return err
			}
			entry := edgeSetReport{
				Model:     set.Model,
				Parameter: set.Model.FormatParameter(set.Parameter),
				Edges:     set.Len(),
				Path:      res.Path,
				SHA256:    res.SHA256,
			}
			report.EdgeSets = append(report.EdgeSets, entry)
			if store != nil {
				if err := store.RecordEdgeSet(ctx, ledger.EdgeSetRecord{
					RunID:     report.RunID,
					Model:     string(entry.Model),
					Parameter: entry.Parameter,
					Edges:     entry.Edges,
					Path:      entry.Path,
					SHA256:    entry.SHA256,
				}); err != nil {
					return fmt.Errorf("record %s: %w", set.Label(), err)
				}
			}
			logger.Debug("edge list written",
				logging.String(logging.FieldModel, set.Label()),
				logging.String("path", filepath.Base(res.Path)),
				logging.Int64("bytes", res.Size),
			)
		}
	}
	return nil
}
