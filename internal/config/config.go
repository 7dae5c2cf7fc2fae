// Package config loads the server configuration from YAML with ${ENV}
// expansion. Variables from .env files are loaded first so they can feed the
// expansion.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/armybook-api/internal/clients/renderer"
	"github.com/KirkDiggler/armybook-api/internal/errors"
	"github.com/KirkDiggler/armybook-api/internal/retry"
)

// Storage drivers
const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Config is the complete server configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logging    LoggingConfig    `yaml:"logging"`
	Storage    StorageConfig    `yaml:"storage"`
	Calculator CalculatorConfig `yaml:"calculator"`
	Renderer   RendererConfig   `yaml:"renderer"`
	Cache      CacheConfig      `yaml:"cache"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// ServerConfig configures the listeners
type ServerConfig struct {
	GRPCPort        int           `yaml:"grpc_port"`
	HTTPPort        int           `yaml:"http_port"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig configures the slog handler
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json or text
}

// StorageConfig selects and configures the persistence backend
type StorageConfig struct {
	Driver   string         `yaml:"driver"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// RedisConfig configures the Redis client
type RedisConfig struct {
	// Mode is standalone, cluster or sentinel
	Mode     string `yaml:"mode"`
	Endpoint string `yaml:"endpoint"`
	// Endpoints lists cluster seeds or sentinels and overrides Endpoint
	Endpoints  []string `yaml:"endpoints"`
	MasterName string   `yaml:"master_name"`
	Password   string   `yaml:"password"`
	DB         int      `yaml:"db"`
	PoolSize   int      `yaml:"pool_size"`
	UseTLS     bool     `yaml:"use_tls"`
}

// Addrs returns Endpoints, or Endpoint alone when none are listed
func (r RedisConfig) Addrs() []string {
	if len(r.Endpoints) > 0 {
		return r.Endpoints
	}
	if r.Endpoint == "" {
		return nil
	}
	return []string{r.Endpoint}
}

// PostgresConfig configures the Postgres pool
type PostgresConfig struct {
	URL             string        `yaml:"url"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	// CreateSchema runs the IF NOT EXISTS migrations on startup
	CreateSchema bool `yaml:"create_schema"`
}

// CalculatorConfig points at the point-cost service
type CalculatorConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// RendererConfig configures the PDF rendering service
type RendererConfig struct {
	Endpoint         string        `yaml:"endpoint"`
	APIKey           string        `yaml:"api_key"`
	PrintURLTemplate string        `yaml:"print_url_template"`
	ServiceName      string        `yaml:"service_name"`
	HTTPTimeout      time.Duration `yaml:"http_timeout"`
	// Timeout bounds a whole render including retries
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

// RetryConfig mirrors retry.Policy
type RetryConfig struct {
	Mode       string        `yaml:"mode"`
	Initial    time.Duration `yaml:"initial"`
	Max        time.Duration `yaml:"max"`
	MaxRetries int           `yaml:"max_retries"`
}

// Policy converts the config to a retry policy
func (r RetryConfig) Policy() retry.Policy {
	return retry.NewPolicy(retry.Mode(r.Mode), r.Initial, r.Max, r.MaxRetries)
}

// CacheConfig configures the PDF artifact store
type CacheConfig struct {
	// TTL expires unused artifacts in Redis; zero keeps them
	TTL time.Duration `yaml:"ttl"`
}

// MetricsConfig configures the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns a configuration that runs against a local Redis
func Default() *Config {
	policy := retry.DefaultPolicy()

	return &Config{
		Server: ServerConfig{
			GRPCPort:        50051,
			HTTPPort:        8080,
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Storage: StorageConfig{
			Driver: StorageRedis,
			Redis: RedisConfig{
				Mode:     "standalone",
				Endpoint: "localhost:6379",
			},
		},
		Calculator: CalculatorConfig{
			BaseURL: "http://localhost:8090",
			Timeout: 10 * time.Second,
		},
		Renderer: RendererConfig{
			Endpoint:         renderer.DefaultEndpoint,
			PrintURLTemplate: renderer.DefaultPrintURLTemplate,
			ServiceName:      renderer.DefaultServiceName,
			HTTPTimeout:      60 * time.Second,
			Timeout:          90 * time.Second,
			Retry: RetryConfig{
				Mode:       string(policy.Mode),
				Initial:    policy.Initial,
				Max:        policy.Max,
				MaxRetries: policy.MaxRetries,
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads .env files, then the YAML file at path over the defaults. An
// empty path returns the defaults.
func Load(path string) (*Config, error) {
	loadEnvFiles()

	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("configuration file not found: %s", path)
		}
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if err := Parse(data, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse expands ${ENV} references in data and decodes it over cfg
func Parse(data []byte, cfg *Config) error {
	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to unmarshal config")
	}
	return nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("server.grpc_port", c.Server.GRPCPort, 1, 65535, vb)
	errors.ValidateRange("server.http_port", c.Server.HTTPPort, 1, 65535, vb)
	errors.ValidateEnum("logging.level", c.Logging.Level, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("logging.format", c.Logging.Format, []string{"json", "text"}, vb)

	switch c.Storage.Driver {
	case StorageRedis:
		if len(c.Storage.Redis.Addrs()) == 0 {
			vb.RequiredField("storage.redis.endpoint")
		}
		errors.ValidateEnum("storage.redis.mode", c.Storage.Redis.Mode, []string{"standalone", "cluster", "sentinel"}, vb)
		if c.Storage.Redis.Mode == "sentinel" {
			errors.ValidateRequired("storage.redis.master_name", c.Storage.Redis.MasterName, vb)
		}
	case StoragePostgres:
		errors.ValidateRequired("storage.postgres.url", c.Storage.Postgres.URL, vb)
	default:
		vb.Fieldf("storage.driver", "must be one of: %s, %s", StorageRedis, StoragePostgres)
	}

	errors.ValidateRequired("calculator.base_url", c.Calculator.BaseURL, vb)
	errors.ValidateRequired("renderer.endpoint", c.Renderer.Endpoint, vb)
	if c.Renderer.Timeout <= 0 {
		vb.Field("renderer.timeout", "must be positive")
	}
	errors.ValidateEnum("renderer.retry.mode", c.Renderer.Retry.Mode,
		[]string{string(retry.ModeFixed), string(retry.ModeLinear), string(retry.ModeExponential)}, vb)
	errors.ValidateMin("renderer.retry.max_retries", c.Renderer.Retry.MaxRetries, 0, vb)
	if c.Cache.TTL < 0 {
		vb.Field("cache.ttl", "cannot be negative")
	}

	return vb.Build()
}

// SlogLevel maps the configured level onto slog
func (l LoggingConfig) SlogLevel() slog.Level {
	switch l.Level {
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

// loadEnvFiles loads the first of .env and .env.local that exists. Values
// already in the environment win.
func loadEnvFiles() {
	for _, path := range []string{".env", ".env.local"} {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("failed to load env file", "path", path, "error", err)
			continue
		}
		slog.Debug("loaded environment variables", "path", path)
		return
	}
}
