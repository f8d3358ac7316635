package tfidf

import (
	"math"
	"sort"

	"simnet/internal/textutil"
)

// Corpus holds the vocabulary, document frequencies, and cached weight
// vectors for a fixed, ordered list of documents. Documents are addressed by
// their position in that list.
//
// Vector fills the cache lazily and is not safe for concurrent use. Call Warm
// before sharing a Corpus across goroutines; afterwards every read is
// lock-free.
type Corpus struct {
	tokens  [][]int
	vocab   *Vocabulary
	docFreq []int

	vectors []Vector
	built   []bool
	builds  int
}

// NewCorpus tokenizes texts on whitespace and indexes them.
func NewCorpus(texts []string) *Corpus {
	c := &Corpus{
		tokens:  make([][]int, len(texts)),
		vocab:   newVocabulary(),
		vectors: make([]Vector, len(texts)),
		built:   make([]bool, len(texts)),
	}
	for i, text := range texts {
		words := textutil.Tokenize(text)
		ids := make([]int, len(words))
		for k, word := range words {
			ids[k] = c.vocab.add(word)
		}
		c.tokens[i] = ids
	}

	c.docFreq = make([]int, c.vocab.Len())
	seen := make([]int, c.vocab.Len())
	for i, ids := range c.tokens {
		stamp := i + 1
		for _, id := range ids {
			if seen[id] == stamp {
				continue
			}
			seen[id] = stamp
			c.docFreq[id]++
		}
	}
	return c
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	return len(c.tokens)
}

// Vocabulary returns the corpus vocabulary.
func (c *Corpus) Vocabulary() *Vocabulary {
	return c.vocab
}

// DocumentFrequency returns how many documents contain token at least once.
func (c *Corpus) DocumentFrequency(token string) int {
	idx, ok := c.vocab.Index(token)
	if !ok {
		return 0
	}
	return c.docFreq[idx]
}

// IDF returns ln(N / df) for token, or 0 for tokens outside the vocabulary.
func (c *Corpus) IDF(token string) float64 {
	idx, ok := c.vocab.Index(token)
	if !ok {
		return 0
	}
	return c.idf(idx)
}

func (c *Corpus) idf(idx int) float64 {
	return math.Log(float64(len(c.tokens)) / float64(c.docFreq[idx]))
}

// Vector returns the TF-IDF vector of document i, building and caching it on
// first use.
func (c *Corpus) Vector(i int) Vector {
	if !c.built[i] {
		c.vectors[i] = c.buildVector(c.tokens[i])
		c.built[i] = true
		c.builds++
	}
	return c.vectors[i]
}

// Warm builds every missing vector.
func (c *Corpus) Warm() {
	for i := range c.tokens {
		c.Vector(i)
	}
}

// Cosine returns the cosine similarity between documents i and j.
func (c *Corpus) Cosine(i, j int) float64 {
	return CosineSimilarity(c.Vector(i), c.Vector(j))
}

func (c *Corpus) buildVector(ids []int) Vector {
	if len(ids) == 0 {
		return Vector{}
	}
	counts := make(map[int]int, len(ids))
	maxCount := 0
	for _, id := range ids {
		counts[id]++
		if counts[id] > maxCount {
			maxCount = counts[id]
		}
	}

	entries := make([]Entry, 0, len(counts))
	for id, count := range counts {
		tf := float64(count) / float64(maxCount)
		w := tf * c.idf(id)
		if w == 0 {
			continue
		}
		entries = append(entries, Entry{Index: id, Weight: w})
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].Index < entries[b].Index })
	return newVector(entries)
}
