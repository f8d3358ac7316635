// Package tfidf builds TF-IDF weight vectors over a static corpus of
// whitespace-tokenized fingerprints and scores them by cosine similarity.
//
// A Corpus owns three structures, all fixed once NewCorpus returns:
//   - a Vocabulary assigning each distinct token a dense index in order of
//     first appearance
//   - a document-frequency table counting the distinct documents per token
//   - a per-document vector cache, filled lazily the first time a document's
//     vector is requested and never invalidated
//
// Weights follow tf(w) = count(w) / maxCount and idf(w) = ln(N / df(w)).
// Vectors are sparse and sorted by vocabulary index, so dot products and norms
// always sum in the same order and rebuilding a corpus yields bit-identical
// vectors.
package tfidf
