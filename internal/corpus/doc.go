// Package corpus supplies the ordered (identifier, text) documents that the
// similarity network builder consumes.
//
// Documents come from one of two places: Extract walks a source tree and
// scrapes an author string or a normalized comment body out of every file,
// and ReadDataset loads a dataset file previously written by the edgelist
// package. Either way the result passes through New, which enforces the one
// precondition the builder relies on: identifiers are non-empty and unique.
//
// Per-dataset corrections to extracted fingerprints are modelled as an
// override table keyed by (dataset, identifier) and applied after extraction,
// never inside the similarity code.
package corpus
