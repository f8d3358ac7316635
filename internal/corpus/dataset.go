package corpus

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxDatasetLine bounds a single dataset line; comment fingerprints of large
// files can exceed bufio's 64 KiB default.
const maxDatasetLine = 16 << 20

// ReadDataset parses a dataset file: one "id<TAB>text" record per line. Lines
// starting with '#' and empty lines are skipped; a line without a tab is a
// document with empty text.
func ReadDataset(r io.Reader) ([]Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxDatasetLine)

	var docs []Document
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		id, text, _ := strings.Cut(line, "\t")
		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("dataset line %d: %w", lineNo, ErrEmptyID)
		}
		docs = append(docs, Document{ID: id, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return docs, nil
}
