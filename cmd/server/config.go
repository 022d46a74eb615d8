package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/hero-planner/internal/errors"
	"github.com/KirkDiggler/hero-planner/internal/orchestrators/hero"
)

// Catalog sources
const (
	CatalogSourceSheets = "sheets"
	CatalogSourceFile   = "file"
)

// Progress backends
const (
	ProgressBackendSheets = "sheets"
	ProgressBackendRedis  = "redis"
)

// Config is the server configuration read from the environment
type Config struct {
	DiscordToken   string `env:"HERO_PLANNER_DISCORD_TOKEN"`
	DiscordGuildID string `env:"HERO_PLANNER_DISCORD_GUILD_ID"`

	GoogleCredentialsFile string `env:"HERO_PLANNER_GOOGLE_CREDENTIALS_FILE"`
	// PlannerSpreadsheetID holds the Master Tab and User Hero Data tabs
	PlannerSpreadsheetID string `env:"HERO_PLANNER_SPREADSHEET_ID"`
	// HeroDataSpreadsheetID holds the Hero Data General tab
	HeroDataSpreadsheetID string `env:"HERO_PLANNER_HERO_DATA_SPREADSHEET_ID"`
	StatisticsURL         string `env:"HERO_PLANNER_STATISTICS_URL"`
	FilterGuideURL        string `env:"HERO_PLANNER_FILTER_GUIDE_URL"`

	CatalogSource   string        `env:"HERO_PLANNER_CATALOG_SOURCE"    envDefault:"sheets"`
	CatalogFile     string        `env:"HERO_PLANNER_CATALOG_FILE"      envDefault:"heroes.yaml"`
	CatalogCacheTTL time.Duration `env:"HERO_PLANNER_CATALOG_CACHE_TTL" envDefault:"10m"`
	ProgressBackend string        `env:"HERO_PLANNER_PROGRESS_BACKEND"  envDefault:"sheets"`
	RedisAddr       string        `env:"HERO_PLANNER_REDIS_ADDR"`

	CommandTimeout time.Duration `env:"HERO_PLANNER_COMMAND_TIMEOUT" envDefault:"60s"`
	PageSize       int           `env:"HERO_PLANNER_PAGE_SIZE"       envDefault:"10"`

	LogFormat string `env:"HERO_PLANNER_LOG_FORMAT" envDefault:"text"`
	LogLevel  string `env:"HERO_PLANNER_LOG_LEVEL"  envDefault:"info"`
}

// LoadConfig parses and validates the environment
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, fmt.Sprintf("parse env: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings each backend needs. The Discord token is
// only required when the bot runs.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("HERO_PLANNER_CATALOG_SOURCE", c.CatalogSource,
		[]string{CatalogSourceSheets, CatalogSourceFile}, vb)
	errors.ValidateEnum("HERO_PLANNER_PROGRESS_BACKEND", c.ProgressBackend,
		[]string{ProgressBackendSheets, ProgressBackendRedis}, vb)
	errors.ValidateEnum("HERO_PLANNER_LOG_FORMAT", c.LogFormat, []string{"text", "json"}, vb)
	errors.ValidateEnum("HERO_PLANNER_LOG_LEVEL", strings.ToLower(c.LogLevel),
		[]string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateRequired("HERO_PLANNER_STATISTICS_URL", c.StatisticsURL, vb)

	if c.usesSheets() {
		errors.ValidateRequired("HERO_PLANNER_SPREADSHEET_ID", c.PlannerSpreadsheetID, vb)
	}
	if c.CatalogSource == CatalogSourceSheets {
		errors.ValidateRequired("HERO_PLANNER_HERO_DATA_SPREADSHEET_ID", c.HeroDataSpreadsheetID, vb)
	}
	if c.CatalogSource == CatalogSourceFile {
		errors.ValidateRequired("HERO_PLANNER_CATALOG_FILE", c.CatalogFile, vb)
	}
	if c.ProgressBackend == ProgressBackendRedis {
		errors.ValidateRequired("HERO_PLANNER_REDIS_ADDR", c.RedisAddr, vb)
	}

	if c.CommandTimeout <= 0 {
		vb.Field("HERO_PLANNER_COMMAND_TIMEOUT", "must be positive")
	}
	if c.CatalogCacheTTL < 0 {
		vb.Field("HERO_PLANNER_CATALOG_CACHE_TTL", "must not be negative")
	}
	errors.ValidateRange("HERO_PLANNER_PAGE_SIZE", c.PageSize, 1, hero.MaxPageSize, vb)

	return vb.Build()
}

// ValidateBot checks the settings needed to connect to Discord
func (c *Config) ValidateBot() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("HERO_PLANNER_DISCORD_TOKEN", c.DiscordToken, vb)
	return vb.Build()
}

// usesSheets reports whether any backend reads the spreadsheets
func (c *Config) usesSheets() bool {
	return c.CatalogSource == CatalogSourceSheets || c.ProgressBackend == ProgressBackendSheets
}

// cachesCatalog reports whether catalog reads go through redis
func (c *Config) cachesCatalog() bool {
	return c.RedisAddr != "" && c.CatalogCacheTTL > 0
}

func (c *Config) slogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
