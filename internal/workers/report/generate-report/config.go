package generatereport

import (
	"fmt"
	"strings"
	"time"

	"emis-workers/internal/common/config"
	"emis-workers/internal/emis/report"
)

type Config struct {
	Enabled          bool          `mapstructure:"enabled"`
	MaxJobsActive    int           `mapstructure:"max_jobs_active"`
	Timeout          time.Duration `mapstructure:"timeout"`
	CacheTTL         time.Duration `mapstructure:"cache_ttl"`
	DownloadBasename string        `mapstructure:"download_basename"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:          true,
		MaxJobsActive:    5,
		Timeout:          15 * time.Second,
		CacheTTL:         time.Hour,
		DownloadBasename: strings.TrimSuffix(report.EMISFilename, ".doc"),
	}
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.MaxJobsActive <= 0 {
		return fmt.Errorf("max_jobs_active must be positive")
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("cache_ttl must not be negative")
	}
	if c.DownloadBasename == "" {
		return fmt.Errorf("download_basename is required")
	}
	return nil
}

func createConfigFromAppConfig(appConfig *config.Config, customConfig *Config) *Config {
	if customConfig != nil {
		return customConfig
	}

	cfg := DefaultConfig()
	if appConfig == nil {
		return cfg
	}

	if workerCfg, exists := appConfig.Workers[TaskType]; exists {
		cfg.Enabled = workerCfg.Enabled
		if workerCfg.MaxJobsActive > 0 {
			cfg.MaxJobsActive = workerCfg.MaxJobsActive
		}
		if workerCfg.Timeout > 0 {
			cfg.Timeout = config.GetDuration(workerCfg.Timeout)
		}
	}
	if ttl := appConfig.Cache.ReportTTLDuration(); ttl > 0 {
		cfg.CacheTTL = ttl
	}
	if appConfig.Report.DownloadBasename != "" {
		cfg.DownloadBasename = appConfig.Report.DownloadBasename
	}
	return cfg
}
