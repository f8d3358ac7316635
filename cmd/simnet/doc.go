// Package main hosts the simnet CLI entrypoint and command graph.
//
// The Cobra-based command tree extracts corpora from source trees, builds
// similarity networks under every configured model and threshold, scores
// individual document pairs, and lists the runs recorded in the ledger. It
// centralizes configuration resolution and logger setup so subcommands only
// translate flags into calls on the internal packages.
package main
