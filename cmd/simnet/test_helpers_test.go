package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"simnet/internal/config"
	"simnet/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

// sampleRows is a small corpus with one blank document.
var sampleRows = [][2]string{
	{"a", "alice bob"},
	{"b", "alice bob"},
	{"c", "carol"},
	{"d", ""},
	{"e", "alice carol"},
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t, append([]testsupport.ConfigOption{testsupport.WithDataset("demo")}, opts...)...)
	base := testsupport.BaseDir(cfg)
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Setenv("SIMNET_OUTPUT_DIR", "")
	t.Setenv("NO_COLOR", "1")

	configPath := filepath.Join(base, "simnet.toml")
	writeTestConfig(t, configPath, cfg)
	return &cliTestEnv{cfg: cfg, configPath: configPath, baseDir: base}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	var b strings.Builder
	fmt.Fprintf(&b, "[paths]\noutput_dir = %q\nlog_dir = %q\nstate_dir = %q\n\n", cfg.Paths.OutputDir, cfg.Paths.LogDir, cfg.Paths.StateDir)
	fmt.Fprintf(&b, "[corpus]\ndataset = %q\nroot = %q\nfingerprint = %q\n\n", cfg.Corpus.Dataset, cfg.Corpus.Root, cfg.Corpus.Fingerprint)
	fmt.Fprintf(&b, "[network]\nmodels = [%s]\nbow_min_matches = [1, 2]\njaccard_thresholds = [0.6]\ncosine_thresholds = [0.9]\n\n", quoteList(cfg.Network.Models))
	fmt.Fprintf(&b, "[ledger]\nenabled = %t\n\n", cfg.Ledger.Enabled)
	b.WriteString("[logging]\nlevel = \"warn\"\n")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
