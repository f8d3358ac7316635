package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"simnet/internal/config"
	"simnet/internal/corpus"
	"simnet/internal/network"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SIMNET_OUTPUT_DIR", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantOutput := filepath.Join(tempHome, ".local", "share", "simnet", "networks")
	if cfg.Paths.OutputDir != wantOutput {
		t.Fatalf("unexpected output dir: got %q want %q", cfg.Paths.OutputDir, wantOutput)
	}
	if cfg.LedgerPath() != filepath.Join(tempHome, ".local", "share", "simnet", "ledger.db") {
		t.Fatalf("unexpected ledger path: %q", cfg.LedgerPath())
	}
	if cfg.LogFilePath() != filepath.Join(tempHome, ".local", "share", "simnet", "logs", "simnet.log") {
		t.Fatalf("unexpected log file path: %q", cfg.LogFilePath())
	}
	if !cfg.Ledger.Enabled {
		t.Fatal("expected ledger enabled by default")
	}
	if cfg.Network.Workers != 1 {
		t.Fatalf("expected sequential default, got %d workers", cfg.Network.Workers)
	}
	if cfg.FingerprintKind() != corpus.FingerprintAuthor {
		t.Fatalf("unexpected fingerprint kind %q", cfg.FingerprintKind())
	}
	if !reflect.DeepEqual(cfg.Corpus.Extensions, []string{".java"}) {
		t.Fatalf("unexpected extensions %v", cfg.Corpus.Extensions)
	}
}

func TestDefaultSweeps(t *testing.T) {
	cfg := config.Default()

	models, err := cfg.SelectedModels()
	if err != nil {
		t.Fatalf("SelectedModels: %v", err)
	}
	if !reflect.DeepEqual(models, network.Models()) {
		t.Fatalf("expected every model by default, got %v", models)
	}

	bow := cfg.SweepParameters(network.ModelBOW)
	if len(bow) != 10 || bow[0] != 1 || bow[9] != 10 {
		t.Fatalf("unexpected bow sweep %v", bow)
	}
	for _, model := range []network.Model{network.ModelJaccard, network.ModelCosine} {
		got := cfg.SweepParameters(model)
		want := []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s sweep = %v, want %v", model, got, want)
		}
	}
	if params := cfg.SweepParameters(network.ModelExact); params != nil {
		t.Fatalf("exact should have no sweep, got %v", params)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "simnet.toml")
	t.Setenv("SIMNET_OUTPUT_DIR", "")

	type payload struct {
		Paths struct {
			OutputDir string `toml:"output_dir"`
			StateDir  string `toml:"state_dir"`
		} `toml:"paths"`
		Corpus struct {
			Dataset     string            `toml:"dataset"`
			Extensions  []string          `toml:"extensions"`
			Fingerprint string            `toml:"fingerprint"`
			Overrides   []corpus.Override `toml:"overrides"`
		} `toml:"corpus"`
		Network struct {
			Models           []string  `toml:"models"`
			CosineThresholds []float64 `toml:"cosine_thresholds"`
			Workers          int       `toml:"workers"`
		} `toml:"network"`
	}
	custom := payload{}
	custom.Paths.OutputDir = filepath.Join(tempDir, "out")
	custom.Paths.StateDir = filepath.Join(tempDir, "state")
	custom.Corpus.Dataset = "bcb"
	custom.Corpus.Extensions = []string{"JAVA", "kt"}
	custom.Corpus.Fingerprint = "Comments"
	custom.Corpus.Overrides = []corpus.Override{{ID: " com.acme.Foo ", Text: "Jane"}}
	custom.Network.Models = []string{"tfidf", "exact", "cosine"}
	custom.Network.CosineThresholds = []float64{0.5, 0.75}
	custom.Network.Workers = 4
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Paths.OutputDir != filepath.Join(tempDir, "out") {
		t.Fatalf("unexpected output dir %q", cfg.Paths.OutputDir)
	}
	if !reflect.DeepEqual(cfg.Corpus.Extensions, []string{".java", ".kt"}) {
		t.Fatalf("extensions not normalized: %v", cfg.Corpus.Extensions)
	}
	if cfg.FingerprintKind() != corpus.FingerprintComments {
		t.Fatalf("unexpected fingerprint %q", cfg.FingerprintKind())
	}
	if text, ok := cfg.OverrideTable().Lookup("bcb", "com.acme.Foo"); !ok || text != "Jane" {
		t.Fatalf("override not bound to configured dataset: %q %v", text, ok)
	}

	models, err := cfg.SelectedModels()
	if err != nil {
		t.Fatalf("SelectedModels: %v", err)
	}
	if !reflect.DeepEqual(models, []network.Model{network.ModelExact, network.ModelCosine}) {
		t.Fatalf("unexpected models %v", models)
	}
	if !reflect.DeepEqual(cfg.SweepParameters(network.ModelCosine), []float64{0.5, 0.75}) {
		t.Fatalf("unexpected cosine sweep %v", cfg.SweepParameters(network.ModelCosine))
	}
	if cfg.Network.Workers != 4 {
		t.Fatalf("expected 4 workers, got %d", cfg.Network.Workers)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "simnet.toml")
	if err := os.WriteFile(configPath, []byte("[network]\nthreshold = 0.5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestOutputDirEnvFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	override := filepath.Join(t.TempDir(), "env-out")
	t.Setenv("SIMNET_OUTPUT_DIR", override)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.OutputDir != override {
		t.Fatalf("expected env output dir %q, got %q", override, cfg.Paths.OutputDir)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "cosine_thresholds") {
		t.Fatalf("sample missing network section: %s", contents)
	}

	t.Setenv("SIMNET_OUTPUT_DIR", "")
	if _, _, exists, err := config.Load(path); err != nil || !exists {
		t.Fatalf("sample config must load cleanly: exists=%v err=%v", exists, err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr error
	}{
		{"unknown model", func(c *config.Config) { c.Network.Models = []string{"minhash"} }, network.ErrUnknownModel},
		{"bow zero", func(c *config.Config) { c.Network.BOWMinMatches = []int{0} }, network.ErrInvalidParameter},
		{"jaccard above one", func(c *config.Config) { c.Network.JaccardThresholds = []float64{1.5} }, network.ErrInvalidParameter},
		{"cosine zero", func(c *config.Config) { c.Network.CosineThresholds = []float64{0} }, network.ErrInvalidParameter},
		{"fingerprint", func(c *config.Config) { c.Corpus.Fingerprint = "imports" }, corpus.ErrUnknownFingerprint},
		{"workers", func(c *config.Config) { c.Network.Workers = 0 }, nil},
		{"empty sweep", func(c *config.Config) { c.Network.CosineThresholds = nil }, nil},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, nil},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }, nil},
		{"output dir", func(c *config.Config) { c.Paths.OutputDir = "" }, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}

	cfg := config.Default()
	cfg.Network.Models = []string{"exact", "bow"}
	cfg.Network.CosineThresholds = nil
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unselected model with empty sweep should pass: %v", err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.StateDir = filepath.Join(base, "state")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.OutputDir, cfg.Paths.LogDir, cfg.Paths.StateDir} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
}
