package infra

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all application settings. Values load from config.yaml and
// may be overridden through environment variables afterwards.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Knowledge struct {
		// File is the knowledge document path. Empty means the default
		// location inside the workspace directory.
		File string `yaml:"file"`
	} `yaml:"knowledge"`

	Matching struct {
		Cutoff float64 `yaml:"cutoff"`
	} `yaml:"matching"`

	API struct {
		Market struct {
			BaseURL     string `yaml:"base_url"`
			TimeoutSec  int    `yaml:"timeout_sec"`
			HistoryDays int    `yaml:"history_days"`
			RateLimit   struct {
				Burst     int     `yaml:"burst"`
				PerSecond float64 `yaml:"per_second"`
			} `yaml:"rate_limit"`
			Breaker struct {
				FailureThreshold int `yaml:"failure_threshold"`
				SuccessThreshold int `yaml:"success_threshold"`
				TimeoutSec       int `yaml:"timeout_sec"`
			} `yaml:"breaker"`
		} `yaml:"market"`
	} `yaml:"api"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() *Config {
	var cfg Config
	cfg.App.Name = "ai-chatbot"
	cfg.App.Version = "dev"
	cfg.Matching.Cutoff = 0.6
	cfg.API.Market.BaseURL = "https://api.coingecko.com/api/v3"
	cfg.API.Market.TimeoutSec = 10
	cfg.API.Market.HistoryDays = 7
	cfg.API.Market.RateLimit.Burst = 3
	cfg.API.Market.RateLimit.PerSecond = 0.5
	cfg.API.Market.Breaker.FailureThreshold = 5
	cfg.API.Market.Breaker.SuccessThreshold = 2
	cfg.API.Market.Breaker.TimeoutSec = 30
	cfg.Logging.Level = "info"
	return &cfg
}

// LoadConfig reads and parses the config file. A missing file is not an
// error: the defaults apply, so the bot runs out of the box. Environment
// variables override file values either way.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	overrideWithEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration validity.
func (c *Config) Validate() error {
	url := c.API.Market.BaseURL
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("invalid market API URL: %s", url)
	}
	if c.API.Market.TimeoutSec <= 0 {
		return fmt.Errorf("market API timeout must be positive")
	}
	if c.API.Market.HistoryDays <= 0 {
		return fmt.Errorf("history days must be positive")
	}
	if c.Matching.Cutoff <= 0 || c.Matching.Cutoff > 1 {
		return fmt.Errorf("matching cutoff must be in (0, 1], got %v", c.Matching.Cutoff)
	}
	return nil
}

// overrideWithEnv applies environment variable overrides. Env vars win over
// the config file.
func overrideWithEnv(cfg *Config) {
	if file := os.Getenv("CHATBOT_DATA_FILE"); file != "" {
		cfg.Knowledge.File = file
	}
	if url := os.Getenv("CHATBOT_API_URL"); url != "" {
		cfg.API.Market.BaseURL = url
	}
	if level := os.Getenv("CHATBOT_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
