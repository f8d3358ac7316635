package corpus

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyID indicates a document without an identifier.
	ErrEmptyID = errors.New("corpus: document id is empty")
	// ErrDuplicateID indicates two documents share an identifier.
	ErrDuplicateID = errors.New("corpus: duplicate document id")
)

// Document is a single fingerprinted source file. ID is the canonical dotted
// class name; Text may be empty.
type Document struct {
	ID   string
	Text string
}

// Corpus is an immutable, ordered collection of documents with unique ids.
type Corpus struct {
	docs  []Document
	index map[string]int
}

// New validates docs and returns a corpus preserving their order. The slice is
// copied.
func New(docs []Document) (*Corpus, error) {
	c := &Corpus{
		docs:  make([]Document, len(docs)),
		index: make(map[string]int, len(docs)),
	}
	for i, doc := range docs {
		if strings.TrimSpace(doc.ID) == "" {
			return nil, fmt.Errorf("document %d: %w", i, ErrEmptyID)
		}
		if prev, ok := c.index[doc.ID]; ok {
			return nil, fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateID, doc.ID, prev, i)
		}
		c.index[doc.ID] = i
		c.docs[i] = doc
	}
	return c, nil
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.docs)
}

// At returns the document at position i.
func (c *Corpus) At(i int) Document {
	return c.docs[i]
}

// Index returns the position of the document with the given id.
func (c *Corpus) Index(id string) (int, bool) {
	if c == nil {
		return 0, false
	}
	i, ok := c.index[id]
	return i, ok
}

// Documents returns a copy of the documents in corpus order.
func (c *Corpus) Documents() []Document {
	if c == nil {
		return nil
	}
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// Texts returns the document texts in corpus order.
func (c *Corpus) Texts() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.docs))
	for i, doc := range c.docs {
		out[i] = doc.Text
	}
	return out
}

// Blank counts documents whose text is empty after trimming.
func (c *Corpus) Blank() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, doc := range c.docs {
		if strings.TrimSpace(doc.Text) == "" {
			n++
		}
	}
	return n
}
