// Package config loads application configuration from environment variables
// and an optional YAML file, with environment taking precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server" envconfig:"SERVER"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Data     DataConfig     `yaml:"data" envconfig:"DATA"`
	Security SecurityConfig `yaml:"security" envconfig:"SECURITY"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port            int           `yaml:"port" envconfig:"PORT" default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"stdout"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/app.log"`
}

// DataConfig selects the dataset source and controls cache behaviour.
//
// UseRealData picks the file-backed source over the synthetic generator.
// ReadOnly blocks every workbook write regardless of the other flags; it is
// the safe default for deployments that ship curated spreadsheets.
type DataConfig struct {
	Dir               string `yaml:"dir" envconfig:"DIR" default:"dados"`
	UseRealData       bool   `yaml:"use_real_data" envconfig:"USE_REAL_DATA" default:"false"`
	ValidateData      bool   `yaml:"validate_data" envconfig:"VALIDATE_DATA" default:"true"`
	FallbackSynthetic bool   `yaml:"fallback_synthetic" envconfig:"FALLBACK_SYNTHETIC" default:"true"`
	CacheEnabled      bool   `yaml:"cache_enabled" envconfig:"CACHE_ENABLED" default:"true"`
	ReadOnly          bool   `yaml:"read_only" envconfig:"READ_ONLY" default:"false"`
	AllowCreate       bool   `yaml:"allow_create" envconfig:"ALLOW_CREATE" default:"true"`
	AllowOverwrite    bool   `yaml:"allow_overwrite" envconfig:"ALLOW_OVERWRITE" default:"false"`
	Seed              int64  `yaml:"seed" envconfig:"SEED" default:"42"`
}

// SecurityConfig contains transport-level protections.
type SecurityConfig struct {
	AllowedOrigins []string        `yaml:"allowed_origins" envconfig:"ALLOWED_ORIGINS" default:"http://localhost:8080"`
	EnableCORS     bool            `yaml:"enable_cors" envconfig:"ENABLE_CORS" default:"true"`
	RateLimit      RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
}

// RateLimitConfig contains rate limiting configuration.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled" envconfig:"ENABLED" default:"true"`
	RPS     float64 `yaml:"rps" envconfig:"RPS" default:"100"`
	Burst   int     `yaml:"burst" envconfig:"BURST" default:"50"`
}

// Load loads configuration from environment variables and, when present, a
// config.yaml file. Environment values win over file values.
func Load() (*Config, error) {
	cfg := Default()

	if path := findConfigFile(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("CAMPUS", cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// DataDir returns the resolved dataset directory path.
func (c *Config) DataDir() string {
	if filepath.IsAbs(c.Data.Dir) {
		return c.Data.Dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return c.Data.Dir
	}
	return filepath.Join(wd, c.Data.Dir)
}

// EnsureDataDir creates the dataset directory when allowed to.
func (c *Config) EnsureDataDir() error {
	if c.Data.ReadOnly {
		return nil
	}
	return os.MkdirAll(c.DataDir(), 0o755)
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("server read timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server write timeout must be positive")
	}
	if c.Data.Dir == "" {
		return fmt.Errorf("data dir must not be empty")
	}
	switch c.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("invalid logging format: %s", c.Logging.Format)
	}
	return nil
}

func findConfigFile() string {
	locations := []string{
		"config.yaml",
		"configs/config.yaml",
	}
	for _, loc := range locations {
		if _, err := os.Stat(loc); err == nil {
			return loc
		}
	}
	return ""
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "stdout",
			FilePath: "logs/app.log",
		},
		Data: DataConfig{
			Dir:               "dados",
			UseRealData:       false,
			ValidateData:      true,
			FallbackSynthetic: true,
			CacheEnabled:      true,
			ReadOnly:          false,
			AllowCreate:       true,
			AllowOverwrite:    false,
			Seed:              42,
		},
		Security: SecurityConfig{
			AllowedOrigins: []string{"http://localhost:8080"},
			EnableCORS:     true,
			RateLimit: RateLimitConfig{
				Enabled: true,
				RPS:     100,
				Burst:   50,
			},
		},
	}
}
