package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "FAKE_NEWS_TRAINER_CONFIG"
	datasetURLEnv  = "FAKE_NEWS_DATASET_URL"
	cacheDirEnv    = "FAKE_NEWS_CACHE_DIR"
	outputDirEnv   = "FAKE_NEWS_OUTPUT_DIR"
	modelNameEnv   = "FAKE_NEWS_MODEL_NAME"
	historyPathEnv = "FAKE_NEWS_HISTORY_PATH"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Dataset DatasetConfig `yaml:"dataset"`
	Trainer TrainerConfig `yaml:"trainer"`
	Output  OutputConfig  `yaml:"output"`
	History HistoryConfig `yaml:"history"`
}

// LoggingConfig controls console log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatasetConfig points at the corpus archive and the local cache for it.
type DatasetConfig struct {
	URL      string `yaml:"url"`
	CacheDir string `yaml:"cacheDir"`
}

// TrainerConfig carries the model hyperparameters.
type TrainerConfig struct {
	MaxFeatures  int     `yaml:"maxFeatures"`
	NEstimators  int     `yaml:"nEstimators"`
	TestFraction float64 `yaml:"testFraction"`
	Seed         int64   `yaml:"seed"`
}

// OutputConfig describes where the trained artifact lands.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	ModelName string `yaml:"modelName"`
}

// HistoryConfig enables the run-history store when a path is set.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(datasetURLEnv); v != "" {
		c.Dataset.URL = v
	}

	if v := os.Getenv(cacheDirEnv); v != "" {
		c.Dataset.CacheDir = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}

	if v := os.Getenv(modelNameEnv); v != "" {
		c.Output.ModelName = v
	}

	if v := os.Getenv(historyPathEnv); v != "" {
		c.History.Path = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Dataset.URL != "" {
		base.Dataset.URL = override.Dataset.URL
	}
	if override.Dataset.CacheDir != "" {
		base.Dataset.CacheDir = override.Dataset.CacheDir
	}

	if override.Trainer.MaxFeatures > 0 {
		base.Trainer.MaxFeatures = override.Trainer.MaxFeatures
	}
	if override.Trainer.NEstimators > 0 {
		base.Trainer.NEstimators = override.Trainer.NEstimators
	}
	if override.Trainer.TestFraction > 0 {
		base.Trainer.TestFraction = override.Trainer.TestFraction
	}
	if override.Trainer.Seed != 0 {
		base.Trainer.Seed = override.Trainer.Seed
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}
	if override.Output.ModelName != "" {
		base.Output.ModelName = override.Output.ModelName
	}

	if override.History.Path != "" {
		base.History.Path = override.History.Path
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info"},
		Dataset: DatasetConfig{
			URL:      "https://datasets.example.org/fake-news/news_dataset.zip",
			CacheDir: "data/cache",
		},
		Trainer: TrainerConfig{
			MaxFeatures:  5000,
			NEstimators:  100,
			TestFraction: 0.2,
			Seed:         42,
		},
		Output: OutputConfig{
			Dir:       "models",
			ModelName: "random_forest",
		},
		History: HistoryConfig{Path: ""},
	}
}
