package preflight

import (
	"errors"
	"fmt"
	"strings"

	"simnet/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Sources names where a build reads its corpus from. At most one of Root and
// Dataset is expected to be set.
type Sources struct {
	Root    string
	Dataset string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(cfg *config.Config, src Sources) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir))
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	if cfg.Ledger.Enabled {
		results = append(results, CheckDirectoryAccess("State directory", cfg.Paths.StateDir))
	}

	switch {
	case src.Dataset != "":
		results = append(results, CheckReadableFile("Dataset file", src.Dataset))
	case src.Root != "":
		results = append(results, CheckCorpusRoot("Corpus root", src.Root, cfg.Corpus.Extensions))
	default:
		results = append(results, Result{Name: "Corpus", Detail: "no corpus root or dataset file configured"})
	}
	return results
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if !r.Passed {
			failed = append(failed, r)
		}
	}
	return failed
}

// Err joins every failing result into one error, or returns nil.
func Err(results []Result) error {
	failed := Failed(results)
	if len(failed) == 0 {
		return nil
	}
	lines := make([]string, len(failed))
	for i, r := range failed {
		lines[i] = fmt.Sprintf("%s: %s", r.Name, r.Detail)
	}
	return errors.New("preflight failed:\n  " + strings.Join(lines, "\n  "))
}
