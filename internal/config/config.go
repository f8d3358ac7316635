package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"simnet/internal/corpus"
	"simnet/internal/logging"
	"simnet/internal/network"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains output and bookkeeping directories.
type Paths struct {
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
	StateDir  string `toml:"state_dir"`
}

// Corpus describes where documents come from and how they are fingerprinted.
type Corpus struct {
	Dataset     string            `toml:"dataset"`
	Root        string            `toml:"root"`
	Extensions  []string          `toml:"extensions"`
	Fingerprint string            `toml:"fingerprint"`
	Overrides   []corpus.Override `toml:"overrides"`
}

// Network selects the models to run and their parameter sweeps.
type Network struct {
	Models            []string  `toml:"models"`
	BOWMinMatches     []int     `toml:"bow_min_matches"`
	JaccardThresholds []float64 `toml:"jaccard_thresholds"`
	CosineThresholds  []float64 `toml:"cosine_thresholds"`
	Workers           int       `toml:"workers"`
}

// Ledger toggles the SQLite run ledger.
type Ledger struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for simnet.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Corpus  Corpus  `toml:"corpus"`
	Network Network `toml:"network"`
	Ledger  Ledger  `toml:"ledger"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output, log, and state directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.LogDir, c.Paths.StateDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// LedgerPath returns the SQLite ledger location inside the state directory.
func (c *Config) LedgerPath() string {
	return filepath.Join(c.Paths.StateDir, ledgerFileName)
}

// LogFilePath returns the JSON log file location, or "" when file logging is off.
func (c *Config) LogFilePath() string {
	return logging.FilePathFor(c.Paths.LogDir)
}

// FingerprintKind returns the validated fingerprint selector.
func (c *Config) FingerprintKind() corpus.FingerprintKind {
	kind, err := corpus.ParseFingerprintKind(c.Corpus.Fingerprint)
	if err != nil {
		return corpus.FingerprintAuthor
	}
	return kind
}

// OverrideTable indexes the configured fingerprint overrides.
func (c *Config) OverrideTable() *corpus.OverrideTable {
	return corpus.NewOverrideTable(c.Corpus.Overrides)
}

// SelectedModels returns the configured models in canonical order without
// duplicates.
func (c *Config) SelectedModels() ([]network.Model, error) {
	return ParseModels(c.Network.Models)
}

// ParseModels resolves model names, dropping duplicates and ordering the
// result canonically. An empty list selects every model.
func ParseModels(names []string) ([]network.Model, error) {
	if len(names) == 0 {
		return network.Models(), nil
	}
	wanted := make(map[network.Model]bool, len(names))
	for _, name := range names {
		model, err := network.ParseModel(name)
		if err != nil {
			return nil, err
		}
		wanted[model] = true
	}
	out := make([]network.Model, 0, len(wanted))
	for _, model := range network.Models() {
		if wanted[model] {
			out = append(out, model)
		}
	}
	return out, nil
}

// SweepParameters returns the configured parameter sweep for model. Exact
// has none.
func (c *Config) SweepParameters(model network.Model) []float64 {
	switch model {
	case network.ModelBOW:
		out := make([]float64, len(c.Network.BOWMinMatches))
		for i, k := range c.Network.BOWMinMatches {
			out[i] = float64(k)
		}
		return out
	case network.ModelJaccard:
		return append([]float64(nil), c.Network.JaccardThresholds...)
	case network.ModelCosine:
		return append([]float64(nil), c.Network.CosineThresholds...)
	default:
		return nil
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
