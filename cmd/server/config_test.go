package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/hero-planner/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) setSheetsEnv() {
	s.T().Setenv("HERO_PLANNER_SPREADSHEET_ID", "planner-sheet")
	s.T().Setenv("HERO_PLANNER_HERO_DATA_SPREADSHEET_ID", "hero-data-sheet")
	s.T().Setenv("HERO_PLANNER_STATISTICS_URL", "https://docs.google.com/spreadsheets/d/stats")
}

func (s *ConfigTestSuite) TestLoadConfigDefaults() {
	s.setSheetsEnv()

	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.Equal(CatalogSourceSheets, cfg.CatalogSource)
	s.Equal(ProgressBackendSheets, cfg.ProgressBackend)
	s.Equal(60*time.Second, cfg.CommandTimeout)
	s.Equal(10*time.Minute, cfg.CatalogCacheTTL)
	s.Equal(10, cfg.PageSize)
	s.Equal(slog.LevelInfo, cfg.slogLevel())
	s.True(cfg.usesSheets())
	s.False(cfg.cachesCatalog())
}

func (s *ConfigTestSuite) TestLoadConfigRedisBackend() {
	s.T().Setenv("HERO_PLANNER_STATISTICS_URL", "https://docs.google.com/spreadsheets/d/stats")
	s.T().Setenv("HERO_PLANNER_CATALOG_SOURCE", "file")
	s.T().Setenv("HERO_PLANNER_CATALOG_FILE", "testdata/heroes.yaml")
	s.T().Setenv("HERO_PLANNER_PROGRESS_BACKEND", "redis")
	s.T().Setenv("HERO_PLANNER_REDIS_ADDR", "localhost:6379")
	s.T().Setenv("HERO_PLANNER_LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	s.Require().NoError(err)
	s.False(cfg.usesSheets())
	s.True(cfg.cachesCatalog())
	s.Equal(slog.LevelDebug, cfg.slogLevel())
}

func (s *ConfigTestSuite) TestLoadConfigBadDuration() {
	s.setSheetsEnv()
	s.T().Setenv("HERO_PLANNER_COMMAND_TIMEOUT", "soon")

	_, err := LoadConfig()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	valid := func() *Config {
		return &Config{
			PlannerSpreadsheetID:  "planner-sheet",
			HeroDataSpreadsheetID: "hero-data-sheet",
			StatisticsURL:         "https://docs.google.com/spreadsheets/d/stats",
			CatalogSource:         CatalogSourceSheets,
			CatalogFile:           "heroes.yaml",
			CatalogCacheTTL:       10 * time.Minute,
			ProgressBackend:       ProgressBackendSheets,
			CommandTimeout:        time.Minute,
			PageSize:              10,
			LogFormat:             "text",
			LogLevel:              "info",
		}
	}

	testCases := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{
			name:   "unknown catalog source",
			modify: func(c *Config) { c.CatalogSource = "database" },
			field:  "HERO_PLANNER_CATALOG_SOURCE",
		},
		{
			name:   "sheets without planner spreadsheet",
			modify: func(c *Config) { c.PlannerSpreadsheetID = "" },
			field:  "HERO_PLANNER_SPREADSHEET_ID",
		},
		{
			name:   "sheets catalog without hero data spreadsheet",
			modify: func(c *Config) { c.HeroDataSpreadsheetID = "" },
			field:  "HERO_PLANNER_HERO_DATA_SPREADSHEET_ID",
		},
		{
			name:   "redis progress without address",
			modify: func(c *Config) { c.ProgressBackend = ProgressBackendRedis },
			field:  "HERO_PLANNER_REDIS_ADDR",
		},
		{
			name:   "zero timeout",
			modify: func(c *Config) { c.CommandTimeout = 0 },
			field:  "HERO_PLANNER_COMMAND_TIMEOUT",
		},
		{
			name:   "page size above the embed field limit",
			modify: func(c *Config) { c.PageSize = 30 },
			field:  "HERO_PLANNER_PAGE_SIZE",
		},
		{
			name:   "missing statistics url",
			modify: func(c *Config) { c.StatisticsURL = "" },
			field:  "HERO_PLANNER_STATISTICS_URL",
		},
		{
			name:   "unknown log format",
			modify: func(c *Config) { c.LogFormat = "xml" },
			field:  "HERO_PLANNER_LOG_FORMAT",
		},
	}

	s.Run("valid", func() {
		s.NoError(valid().Validate())
	})

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := valid()
			tc.modify(cfg)

			err := cfg.Validate()
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Require().True(ok)
			s.Contains(fields, tc.field)
		})
	}
}

func (s *ConfigTestSuite) TestValidateBot() {
	s.Error((&Config{}).ValidateBot())
	s.NoError((&Config{DiscordToken: "token"}).ValidateBot())
}
