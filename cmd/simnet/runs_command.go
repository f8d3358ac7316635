package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"simnet/internal/config"
	"simnet/internal/fileutil"
	"simnet/internal/ledger"
)

var errLedgerDisabled = errors.New("run ledger is disabled (ledger.enabled = false)")

type runView struct {
	ID          string        `json:"run_id"`
	Dataset     string        `json:"dataset"`
	Fingerprint string        `json:"fingerprint"`
	Documents   int           `json:"documents"`
	Status      ledger.Status `json:"status"`
	StartedAt   string        `json:"started_at"`
	Duration    string        `json:"duration,omitempty"`
	EdgeSets    int           `json:"edge_sets"`
}

func newRunView(run ledger.Run) runView {
	view := runView{
		ID:          run.ID,
		Dataset:     run.Dataset,
		Fingerprint: run.Fingerprint,
		Documents:   run.Documents,
		Status:      run.Status,
		StartedAt:   run.StartedAt.Local().Format(time.DateTime),
		EdgeSets:    run.EdgeSets,
	}
	if d := run.Duration(); d > 0 {
		view.Duration = d.Round(time.Millisecond).String()
	}
	return view
}

func openLedger(cfg *config.Config) (*ledger.Store, error) {
	if !cfg.Ledger.Enabled {
		return nil, errLedgerDisabled
	}
	return ledger.Open(cfg)
}

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var (
		limit   int
		jsonOut bool
	)

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recorded build runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := openLedger(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			views := make([]runView, 0, len(runs))
			for _, run := range runs {
				views = append(views, newRunView(run))
			}
			if jsonOut {
				return writeJSON(cmd, views)
			}
			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded")
				return nil
			}
			rows := make([][]string, 0, len(views))
			for _, v := range views {
				duration := v.Duration
				if duration == "" {
					duration = "-"
				}
				rows = append(rows, []string{
					v.ID, v.Dataset, v.Fingerprint, strconv.Itoa(v.Documents),
					strconv.Itoa(v.EdgeSets), string(v.Status), v.StartedAt, duration,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Run", "Dataset", "Fingerprint", "Docs", "Edge sets", "Status", "Started", "Duration"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print runs as JSON")
	cmd.AddCommand(newRunsShowCommand(ctx))
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show the edge lists written by one run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := openLedger(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sets, err := store.EdgeSets(cmd.Context(), run.ID)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, struct {
					Run      runView                `json:"run"`
					EdgeSets []ledger.EdgeSetRecord `json:"edge_sets"`
				}{newRunView(run), sets})
			}

			out := cmd.OutOrStdout()
			view := newRunView(run)
			fmt.Fprintf(out, "Run %s (%s)\n", view.ID, view.Status)
			fmt.Fprintf(out, "Dataset: %s/%s, %d documents, started %s\n", view.Dataset, view.Fingerprint, view.Documents, view.StartedAt)
			rows := make([][]string, 0, len(sets))
			for _, set := range sets {
				param := set.Parameter
				if param == "" {
					param = "-"
				}
				rows = append(rows, []string{set.Model, param, strconv.Itoa(set.Edges), filepath.Base(set.Path), verifyEdgeSet(set)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Model", "Parameter", "Edges", "File", "On disk"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the run as JSON")
	return cmd
}

// verifyEdgeSet compares the file on disk with the checksum recorded at build
// time.
func verifyEdgeSet(rec ledger.EdgeSetRecord) string {
	sum, _, err := fileutil.FileSHA256(rec.Path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "missing"
	case err != nil:
		return "unreadable"
	case rec.SHA256 == "":
		return "unverified"
	case sum != rec.SHA256:
		return "modified"
	default:
		return "ok"
	}
}
