package config

import (
	"errors"
	"fmt"
	"strings"

	"simnet/internal/corpus"
	"simnet/internal/logging"
	"simnet/internal/network"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateCorpus(); err != nil {
		return err
	}
	if err := c.validateNetwork(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.OutputDir) == "" {
		return errors.New("paths.output_dir must be set")
	}
	if c.Ledger.Enabled && strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set when the ledger is enabled")
	}
	return nil
}

func (c *Config) validateCorpus() error {
	if _, err := corpus.ParseFingerprintKind(c.Corpus.Fingerprint); err != nil {
		return fmt.Errorf("corpus.fingerprint: %w", err)
	}
	for i, o := range c.Corpus.Overrides {
		if o.ID == "" {
			return fmt.Errorf("corpus.overrides[%d]: id must be set", i)
		}
	}
	return nil
}

func (c *Config) validateNetwork() error {
	if _, err := ParseModels(c.Network.Models); err != nil {
		return fmt.Errorf("network.models: %w", err)
	}
	if c.Network.Workers < 1 {
		return errors.New("network.workers must be at least 1")
	}
	for _, k := range c.Network.BOWMinMatches {
		if err := network.ModelBOW.ValidateParameter(float64(k)); err != nil {
			return fmt.Errorf("network.bow_min_matches: %w", err)
		}
	}
	for _, t := range c.Network.JaccardThresholds {
		if err := network.ModelJaccard.ValidateParameter(t); err != nil {
			return fmt.Errorf("network.jaccard_thresholds: %w", err)
		}
	}
	for _, t := range c.Network.CosineThresholds {
		if err := network.ModelCosine.ValidateParameter(t); err != nil {
			return fmt.Errorf("network.cosine_thresholds: %w", err)
		}
	}

	selected, _ := ParseModels(c.Network.Models)
	for _, model := range selected {
		if model.Parameterized() && len(c.SweepParameters(model)) == 0 {
			return fmt.Errorf("network: %s is selected but its sweep is empty", model)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidFormat(c.Logging.Format) {
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
