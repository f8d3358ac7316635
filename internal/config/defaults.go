package config

const (
	defaultConfigPath   = "~/.config/simnet/config.toml"
	projectConfigName   = "simnet.toml"
	defaultOutputDir    = "~/.local/share/simnet/networks"
	defaultLogDir       = "~/.local/share/simnet/logs"
	defaultStateDir     = "~/.local/share/simnet"
	defaultDataset      = "corpus"
	defaultFingerprint  = "author"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	defaultWorkers      = 1
	ledgerFileName      = "ledger.db"
	outputDirEnvVar     = "SIMNET_OUTPUT_DIR"
	defaultSourceSuffix = ".java"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LogDir:    defaultLogDir,
			StateDir:  defaultStateDir,
		},
		Corpus: Corpus{
			Dataset:     defaultDataset,
			Extensions:  []string{defaultSourceSuffix},
			Fingerprint: defaultFingerprint,
		},
		Network: Network{
			BOWMinMatches:     defaultBOWMinMatches(),
			JaccardThresholds: defaultThresholds(),
			CosineThresholds:  defaultThresholds(),
			Workers:           defaultWorkers,
		},
		Ledger: Ledger{Enabled: true},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

func defaultBOWMinMatches() []int {
	return []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
}

// defaultThresholds lists 0.3 through 1.0 as literals so every value is the
// closest double to its decimal.
func defaultThresholds() []float64 {
	return []float64{0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
}
