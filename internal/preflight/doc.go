// Package preflight provides readiness checks for the filesystem paths a
// build depends on.
//
// `simnet build` calls RunAll before extracting anything so a run against an
// unreadable corpus or an unwritable output directory fails in milliseconds
// rather than after the pair loop. Checks for disabled features are skipped.
package preflight
