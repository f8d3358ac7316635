// Package textutil provides the text primitives shared by the corpus extractor
// and the similarity matchers.
//
// The primary use cases are:
//   - Splitting fingerprints into whitespace-delimited tokens and token sets
//   - Detecting blank fingerprints, which never match anything
//   - Normalizing raw comment bodies into comparable token streams
//   - Sanitizing dataset and model labels for use in output file names
//
// Tokenization here is deliberately literal: tokens are compared by exact
// string equality and no case folding happens at this layer. Any folding is
// applied once, upstream, by NormalizeComment.
package textutil
