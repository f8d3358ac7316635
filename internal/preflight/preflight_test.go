package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"simnet/internal/config"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckDirectoryAccess("test", f); result.Passed {
		t.Fatal("expected failure for file path")
	}
	if result := CheckReadableFile("test", f); !result.Passed {
		t.Fatalf("expected readable file to pass: %s", result.Detail)
	}
	if result := CheckReadableFile("test", filepath.Dir(f)); result.Passed {
		t.Fatal("expected directory to fail the file check")
	}
}

func TestCheckCorpusRoot(t *testing.T) {
	root := t.TempDir()
	exts := []string{".java"}

	if result := CheckCorpusRoot("root", root, exts); result.Passed {
		t.Fatal("expected failure for empty root")
	}

	nested := filepath.Join(root, "src", "main")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(nested, "README.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckCorpusRoot("root", root, exts); result.Passed {
		t.Fatal("expected failure without matching sources")
	}

	if err := os.WriteFile(filepath.Join(nested, "Foo.JAVA"), []byte("class Foo {}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if result := CheckCorpusRoot("root", root, exts); !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
}

func TestRunAll(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatal(err)
	}
	dataset := filepath.Join(base, "corpus.tsv")
	if err := os.WriteFile(dataset, []byte("A\tx\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	results := RunAll(&cfg, Sources{Dataset: dataset})
	if len(results) != 4 {
		t.Fatalf("expected 4 checks, got %d", len(results))
	}
	if err := Err(results); err != nil {
		t.Fatalf("expected all checks to pass: %v", err)
	}

	cfg.Ledger.Enabled = false
	cfg.Paths.LogDir = ""
	results = RunAll(&cfg, Sources{Root: filepath.Join(base, "missing")})
	if len(results) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(results))
	}
	err := Err(results)
	if err == nil || !strings.Contains(err.Error(), "Corpus root") {
		t.Fatalf("expected corpus root failure, got %v", err)
	}
	if len(Failed(results)) != 1 {
		t.Fatalf("expected exactly one failure: %+v", results)
	}

	if err := Err(RunAll(&cfg, Sources{})); err == nil {
		t.Fatal("expected failure without a corpus source")
	}
	if RunAll(nil, Sources{}) != nil {
		t.Fatal("expected nil results for nil config")
	}
}
