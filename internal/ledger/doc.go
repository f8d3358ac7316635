// Package ledger records build runs in a SQLite database.
//
// Each `simnet build` invocation opens a run, records one row per edge list
// it writes, and closes the run with its final status. Only metadata lives
// here; edges themselves are persisted exclusively as flat edge-list files.
// The store uses WAL mode and retries SQLITE_BUSY so concurrent readers such
// as `simnet runs` never fail against an in-progress build.
package ledger
