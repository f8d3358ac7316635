package testsupport

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// WriteSourceTree creates each file in files under root. Keys are slash
// separated paths relative to root.
func WriteSourceTree(t testing.TB, root string, files map[string]string) {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(files[name]), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// WriteDatasetFile writes rows as a tab-separated id/text dataset and returns
// its path. Each row is {id, text}.
func WriteDatasetFile(t testing.TB, dir string, rows [][2]string) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("# id\ttext\n")
	for _, row := range rows {
		b.WriteString(row[0])
		b.WriteByte('\t')
		b.WriteString(row[1])
		b.WriteByte('\n')
	}
	path := filepath.Join(dir, "dataset.tsv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}
