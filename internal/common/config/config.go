// internal/common/config/config.go
package config

import "time"

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig               `mapstructure:"app"`
	Camunda      CamundaConfig           `mapstructure:"camunda"`
	Cache        CacheConfig             `mapstructure:"cache"`
	Workers      map[string]WorkerConfig `mapstructure:"workers"`
	Logging      LoggingConfig           `mapstructure:"logging"`
	Catalog      CatalogConfig           `mapstructure:"catalog"`
	Registry     RegistryConfig          `mapstructure:"registry"`
	Report       ReportConfig            `mapstructure:"report"`
	Integrations IntegrationConfig       `mapstructure:"integrations"`
	Server       ServerConfig            `mapstructure:"server"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type CacheConfig struct {
	Redis     RedisConfig `mapstructure:"redis"`
	ReportTTL int         `mapstructure:"report_ttl"` // milliseconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// CatalogConfig points at an optional YAML question catalog. Empty means the
// built-in catalog.
type CatalogConfig struct {
	Path string `mapstructure:"path"`
}

// RegistryConfig points at an activity registry file. Empty means the
// registry compiled into the binary.
type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// ReportConfig holds settings for the generate-report and deliver-report
// workers.
type ReportConfig struct {
	EmailSubject     string `mapstructure:"email_subject"`
	DownloadBasename string `mapstructure:"download_basename"`
}

// IntegrationConfig holds settings for external services.
type IntegrationConfig struct {
	AWS struct {
		Region string `mapstructure:"region"`
		SES    struct {
			Enabled   bool   `mapstructure:"enabled"`
			FromEmail string `mapstructure:"from_email"`
		} `mapstructure:"ses"`
	} `mapstructure:"aws"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// ReportTTLDuration is the report cache lifetime.
func (c CacheConfig) ReportTTLDuration() time.Duration {
	return GetDuration(c.ReportTTL)
}
