package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned when a run id is unknown.
var ErrRunNotFound = errors.New("ledger: run not found")

// Status is the lifecycle state of a run.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCanceled  Status = "canceled"
)

// RunInfo describes a run being started.
type RunInfo struct {
	Dataset     string
	Fingerprint string
	Documents   int
}

// Run is one recorded build.
type Run struct {
	ID          string
	Dataset     string
	Fingerprint string
	Documents   int
	StartedAt   time.Time
	FinishedAt  time.Time
	Status      Status
	EdgeSets    int
}

// Duration returns how long the run took, or 0 while it is still running.
func (r Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}

// EdgeSetRecord is one edge list written by a run.
type EdgeSetRecord struct {
	RunID     string `json:"run_id"`
	Model     string `json:"model"`
	Parameter string `json:"parameter,omitempty"`
	Edges     int    `json:"edges"`
	Path      string `json:"path"`
	SHA256    string `json:"sha256,omitempty"`
}

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// StartRun inserts a running run with a fresh id.
func (s *Store) StartRun(ctx context.Context, info RunInfo) (Run, error) {
	run := Run{
		ID:          uuid.NewString(),
		Dataset:     strings.TrimSpace(info.Dataset),
		Fingerprint: strings.TrimSpace(info.Fingerprint),
		Documents:   info.Documents,
		StartedAt:   s.now().UTC(),
		Status:      StatusRunning,
	}
	if run.Dataset == "" {
		return Run{}, errors.New("ledger: dataset is required")
	}
	_, err := s.execWithRetry(ctx,
		`INSERT INTO runs (run_id, dataset, fingerprint, documents, started_at, status) VALUES (?, ?, ?, ?, ?, ?)`,
		run.ID, run.Dataset, run.Fingerprint, run.Documents, run.StartedAt.Format(timeLayout), string(run.Status),
	)
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// RecordEdgeSet appends an edge-list row to runID.
func (s *Store) RecordEdgeSet(ctx context.Context, rec EdgeSetRecord) error {
	if err := s.requireRun(ctx, rec.RunID); err != nil {
		return err
	}
	_, err := s.execWithRetry(ctx,
		`INSERT INTO edge_sets (run_id, model, parameter, edges, path, sha256) VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Model, rec.Parameter, rec.Edges, rec.Path, rec.SHA256,
	)
	if err != nil {
		return fmt.Errorf("insert edge set: %w", err)
	}
	return nil
}

// FinishRun stamps runID with its final status.
func (s *Store) FinishRun(ctx context.Context, runID string, status Status) error {
	res, err := s.execWithRetry(ctx,
		`UPDATE runs SET status = ?, finished_at = ? WHERE run_id = ?`,
		string(status), s.now().UTC().Format(timeLayout), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first. A limit <= 0 returns all.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	ctx = ensureContext(ctx)
	query := `SELECT r.run_id, r.dataset, r.fingerprint, r.documents, r.started_at, r.finished_at, r.status,
		(SELECT COUNT(1) FROM edge_sets e WHERE e.run_id = r.run_id)
		FROM runs r ORDER BY r.started_at DESC, r.rowid DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run by id.
func (s *Store) GetRun(ctx context.Context, runID string) (Run, error) {
	row := ensureContextRow(ctx, s.db,
		`SELECT r.run_id, r.dataset, r.fingerprint, r.documents, r.started_at, r.finished_at, r.status,
		(SELECT COUNT(1) FROM edge_sets e WHERE e.run_id = r.run_id)
		FROM runs r WHERE r.run_id = ?`, runID)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return run, err
}

// EdgeSets returns the edge lists recorded for runID in write order.
func (s *Store) EdgeSets(ctx context.Context, runID string) ([]EdgeSetRecord, error) {
	ctx = ensureContext(ctx)
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, model, parameter, edges, path, sha256 FROM edge_sets WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("list edge sets: %w", err)
	}
	defer rows.Close()

	var out []EdgeSetRecord
	for rows.Next() {
		var rec EdgeSetRecord
		if err := rows.Scan(&rec.RunID, &rec.Model, &rec.Parameter, &rec.Edges, &rec.Path, &rec.SHA256); err != nil {
			return nil, fmt.Errorf("scan edge set: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate edge sets: %w", err)
	}
	return out, nil
}

func (s *Store) requireRun(ctx context.Context, runID string) error {
	var exists int
	err := ensureContextRow(ctx, s.db, `SELECT COUNT(1) FROM runs WHERE run_id = ?`, runID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check run: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func ensureContextRow(ctx context.Context, db *sql.DB, query string, args ...any) *sql.Row {
	return db.QueryRowContext(ensureContext(ctx), query, args...)
}

func scanRun(row rowScanner) (Run, error) {
	var (
		run        Run
		startedAt  string
		finishedAt sql.NullString
		status     string
	)
	if err := row.Scan(&run.ID, &run.Dataset, &run.Fingerprint, &run.Documents, &startedAt, &finishedAt, &status, &run.EdgeSets); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.Status = Status(status)
	var err error
	if run.StartedAt, err = time.Parse(timeLayout, startedAt); err != nil {
		return Run{}, fmt.Errorf("parse started_at: %w", err)
	}
	if finishedAt.Valid && finishedAt.String != "" {
		if run.FinishedAt, err = time.Parse(timeLayout, finishedAt.String); err != nil {
			return Run{}, fmt.Errorf("parse finished_at: %w", err)
		}
	}
	return run, nil
}
