// Package logging assembles the structured slog loggers used by simnet.
//
// A logger writes a human-oriented console stream (or JSON, when configured)
// to stderr and, when a log file is configured, a JSON copy of every record to
// disk. Context helpers tag records with the run, dataset, and model being
// processed. NewNop gives tests and optional wiring a logger that cannot fail.
package logging
