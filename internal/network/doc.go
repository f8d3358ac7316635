// Package network builds similarity networks over a corpus of fingerprinted
// documents.
//
// A Builder prepares a corpus once and then answers any number of matcher
// invocations, each producing a fresh EdgeSet:
//   - Exact connects documents with identical, non-blank text
//   - BOWCount connects documents sharing at least minMatches distinct tokens
//   - Jaccard connects documents whose token-set Jaccard ratio reaches a threshold
//   - Cosine connects documents whose TF-IDF cosine similarity reaches a threshold
//
// Every matcher enumerates each unordered pair of positions (i, j) with j < i
// exactly once, so edge sets never contain self-edges or duplicates. Blank
// documents never match anything. Token sets and TF-IDF vectors are computed
// once per document and reused across every parameter of a Sweep.
//
// The outer pair loop optionally fans out across rows (WithWorkers); output
// order is identical to the sequential order either way.
package network
