package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Analysis struct {
		BaseURL        string `yaml:"baseURL"`
		TimeoutSeconds int    `yaml:"timeoutSeconds"`
	} `yaml:"analysis"`

	Upload struct {
		MaxBytes int64 `yaml:"maxBytes"`
	} `yaml:"upload"`

	RateLimit struct {
		Capacity   int `yaml:"capacity"`
		RefillRate int `yaml:"refillRate"`
	} `yaml:"rateLimit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

// Load reads config.yaml and applies env overrides on top, so a
// containerised deploy can point at a different analysis service
// without editing the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("ANALYSIS_BASE_URL"); v != "" {
		cfg.Analysis.BaseURL = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT: %w", err)
		}
		cfg.Server.Port = p
	}

	cfg.applyDefaults()

	if cfg.Analysis.BaseURL == "" {
		return nil, fmt.Errorf("analysis.baseURL is required")
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Analysis.TimeoutSeconds == 0 {
		// media download + model inference upstream can be slow
		c.Analysis.TimeoutSeconds = 120
	}
	if c.Upload.MaxBytes == 0 {
		c.Upload.MaxBytes = 16 << 20
	}
	if c.RateLimit.Capacity == 0 {
		c.RateLimit.Capacity = 30
	}
	if c.RateLimit.RefillRate == 0 {
		c.RateLimit.RefillRate = 1
	}
}

// AnalysisTimeout helper
func (c *Config) AnalysisTimeout() time.Duration {
	return time.Duration(c.Analysis.TimeoutSeconds) * time.Second
}
