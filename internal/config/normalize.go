package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeCorpus(); err != nil {
		return err
	}
	c.normalizeNetwork()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv(outputDirEnvVar); ok && strings.TrimSpace(value) != "" {
		c.Paths.OutputDir = value
	}
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		c.Paths.OutputDir = defaultOutputDir
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}

	var err error
	if c.Paths.OutputDir, err = expandPath(strings.TrimSpace(c.Paths.OutputDir)); err != nil {
		return fmt.Errorf("paths.output_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.StateDir, err = expandPath(strings.TrimSpace(c.Paths.StateDir)); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeCorpus() error {
	c.Corpus.Dataset = strings.TrimSpace(c.Corpus.Dataset)
	if c.Corpus.Dataset == "" {
		c.Corpus.Dataset = defaultDataset
	}
	c.Corpus.Fingerprint = strings.ToLower(strings.TrimSpace(c.Corpus.Fingerprint))
	if c.Corpus.Fingerprint == "" {
		c.Corpus.Fingerprint = defaultFingerprint
	}
	if root := strings.TrimSpace(c.Corpus.Root); root != "" {
		expanded, err := expandPath(root)
		if err != nil {
			return fmt.Errorf("corpus.root: %w", err)
		}
		c.Corpus.Root = expanded
	}

	exts := make([]string, 0, len(c.Corpus.Extensions))
	for _, ext := range c.Corpus.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	if len(exts) == 0 {
		exts = []string{defaultSourceSuffix}
	}
	c.Corpus.Extensions = exts

	// Overrides without a dataset apply to the configured one.
	for i := range c.Corpus.Overrides {
		c.Corpus.Overrides[i].ID = strings.TrimSpace(c.Corpus.Overrides[i].ID)
		if strings.TrimSpace(c.Corpus.Overrides[i].Dataset) == "" {
			c.Corpus.Overrides[i].Dataset = c.Corpus.Dataset
		}
	}
	return nil
}

func (c *Config) normalizeNetwork() {
	models := make([]string, 0, len(c.Network.Models))
	for _, m := range c.Network.Models {
		if m = strings.TrimSpace(m); m != "" {
			models = append(models, m)
		}
	}
	c.Network.Models = models
	if c.Network.Workers == 0 {
		c.Network.Workers = defaultWorkers
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
