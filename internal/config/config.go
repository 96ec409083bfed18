package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"tfidfsum/internal/summarizer"
)

type Provider string

const (
	ProviderTFIDF  Provider = "tfidf"
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
)

type Config struct {
	Ratio         float64       `env:"SUMMARIZER_RATIO"          envDefault:"0.5"`
	Provider      Provider      `env:"SUMMARIZER_PROVIDER"       envDefault:"tfidf"`
	Parallel      bool          `env:"SUMMARIZER_PARALLEL"       envDefault:"false"`
	Workers       int           `env:"SUMMARIZER_WORKERS"        envDefault:"0"`
	PreserveOrder bool          `env:"SUMMARIZER_PRESERVE_ORDER" envDefault:"false"`
	MaxFileSize   int64         `env:"SUMMARIZER_MAX_FILE_SIZE"  envDefault:"67108864"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	ClaudeAPIKey  string        `env:"ANTHROPIC_API_KEY"`
	CacheDBPath   string        `env:"CACHE_DB_PATH"`
	CacheTTL      time.Duration `env:"CACHE_TTL"                 envDefault:"720h"`
	MetricsPath   string        `env:"METRICS_TEXTFILE"`
	LogLevel      slog.Level    `env:"LOG_LEVEL"                 envDefault:"warn"`
}

func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Provider = Provider(strings.ToLower(strings.TrimSpace(string(cfg.Provider))))
	cfg.OpenAIAPIKey = strings.TrimSpace(cfg.OpenAIAPIKey)
	cfg.ClaudeAPIKey = strings.TrimSpace(cfg.ClaudeAPIKey)
	cfg.CacheDBPath = strings.TrimSpace(cfg.CacheDBPath)
	cfg.MetricsPath = strings.TrimSpace(cfg.MetricsPath)

	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	if err := summarizer.ValidateRatio(c.Ratio); err != nil {
		errs = append(errs, fmt.Errorf("SUMMARIZER_RATIO: %w", err))
	}

	switch c.Provider {
	case ProviderTFIDF:
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			errs = append(errs, errors.New("OPENAI_API_KEY is required for the openai provider"))
		}
	case ProviderClaude:
		if c.ClaudeAPIKey == "" {
			errs = append(errs, errors.New("ANTHROPIC_API_KEY is required for the claude provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("SUMMARIZER_PROVIDER: unknown provider %q", c.Provider))
	}

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("SUMMARIZER_WORKERS must not be negative, got %d", c.Workers))
	}

	if c.MaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("SUMMARIZER_MAX_FILE_SIZE must be positive, got %d", c.MaxFileSize))
	}

	if c.CacheTTL < 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must not be negative, got %s", c.CacheTTL))
	}

	return errors.Join(errs...)
}

// CacheNamespace names the configuration that produced a summary. Settings that change the
// output of a provider are part of it.
func (c Config) CacheNamespace() string {
	ns := string(c.Provider)
	if c.PreserveOrder {
		ns += "+ordered"
	}
	return ns
}
