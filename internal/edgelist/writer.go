package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode"

	"simnet/internal/corpus"
	"simnet/internal/fileutil"
	"simnet/internal/network"
)

// ErrUnwritableID reports an id that would corrupt a whitespace-separated file.
var ErrUnwritableID = errors.New("edgelist: id contains whitespace")

const (
	edgeHeader    = "# source target"
	datasetHeader = "# id\ttext"
)

// WriteEdges streams set as an edge list to w.
func WriteEdges(w io.Writer, set *network.EdgeSet) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, edgeHeader); err != nil {
		return err
	}
	if set != nil {
		for _, e := range set.Edges {
			if hasSpace(e.Source) || hasSpace(e.Target) {
				return fmt.Errorf("%w: %q -> %q", ErrUnwritableID, e.Source, e.Target)
			}
			if _, err := fmt.Fprintf(bw, "%s %s\n", e.Source, e.Target); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// WriteEdgeSet writes set to dir under FileName(dataset, fingerprint, ...)
// and returns the result of the atomic write.
func WriteEdgeSet(dir, dataset, fingerprint string, set *network.EdgeSet) (fileutil.WriteResult, error) {
	path := filepath.Join(dir, FileName(dataset, fingerprint, set.Model, set.Parameter))
	res, err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteEdges(w, set)
	})
	if err != nil {
		return fileutil.WriteResult{}, fmt.Errorf("write %s edge list: %w", set.Label(), err)
	}
	return res, nil
}

// WriteDataset streams docs as "id<TAB>text" lines. Tabs and line breaks in
// text are flattened to spaces so every document stays on one line.
func WriteDataset(w io.Writer, docs []corpus.Document) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, datasetHeader); err != nil {
		return err
	}
	for _, doc := range docs {
		if hasSpace(doc.ID) {
			return fmt.Errorf("%w: %q", ErrUnwritableID, doc.ID)
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", doc.ID, flattenText(doc.Text)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteDatasetFile writes docs into dir under DatasetFileName.
func WriteDatasetFile(dir, dataset, fingerprint string, docs []corpus.Document) (fileutil.WriteResult, error) {
	path := filepath.Join(dir, DatasetFileName(dataset, fingerprint))
	res, err := fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		return WriteDataset(w, docs)
	})
	if err != nil {
		return fileutil.WriteResult{}, fmt.Errorf("write dataset file: %w", err)
	}
	return res, nil
}

// ReadEdges parses an edge list written by WriteEdges.
func ReadEdges(r io.Reader) ([]network.Edge, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	var edges []network.Edge
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("edge list line %d: expected 2 fields, got %d", line, len(fields))
		}
		edges = append(edges, network.Edge{Source: fields[0], Target: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	return edges, nil
}

// hasSpace matches the separators ReadEdges splits on.
func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// flattenText keeps each record on one line. Tabs and line breaks become
// spaces, so texts that differ only in those characters compare equal once a
// dataset file is read back.
func flattenText(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\r', '\n':
			return ' '
		}
		return r
	}, s)
}
