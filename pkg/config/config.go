package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

// Audit storage backends
const (
	BackendDatabase = "database"
	BackendRedis    = "redis"
	BackendMemory   = "memory"
)

// DefaultEnvPaths are tried in order; the first existing file is loaded
var DefaultEnvPaths = []string{".env", "../.env", "../../.env"}

type RedisOptions struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Prefix   string `env:"REDIS_PREFIX" envDefault:"vacancy-bidding:"`
}

type Config struct {
	Port          string        `env:"PORT" envDefault:"8000"`
	GinMode       string        `env:"GIN_MODE"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	DataPath      string        `env:"DATA_PATH" envDefault:"scheduler.db"`
	JWTSecret     string        `env:"JWT_SECRET"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"24h"`
	AdminUsername string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string        `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string        `env:"LOG_FORMAT" envDefault:"json"`
	AuditBackend  string        `env:"AUDIT_BACKEND" envDefault:"database"`
	SettingsFile  string        `env:"SETTINGS_FILE"`
	Timezone      string        `env:"TIMEZONE" envDefault:"UTC"`
	Redis         RedisOptions
}

// Validate checks option combinations env parsing cannot
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	switch c.AuditBackend {
	case BackendDatabase, BackendMemory:
	case BackendRedis:
		if c.Redis.Addr == "" {
			return errors.Errorf("REDIS_ADDR is required when AUDIT_BACKEND is %q", BackendRedis)
		}
	default:
		return errors.Errorf("AUDIT_BACKEND must be one of database, redis, memory, got %q", c.AuditBackend)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return errors.Wrapf(err, "invalid TIMEZONE %q", c.Timezone)
	}
	return nil
}

// LoadEnvFile loads the first of paths that exists
func LoadEnvFile(paths []string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return godotenv.Load(p)
		}
	}
	return nil
}

// Load reads .env, then the environment, and validates the result
func Load(envPaths ...string) (*Config, error) {
	if len(envPaths) == 0 {
		envPaths = DefaultEnvPaths
	}
	if err := LoadEnvFile(envPaths); err != nil {
		return nil, errors.Wrap(err, "load env file")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Settings returns the engine settings: the YAML file at SettingsFile when
// set, with the configured time zone applied.
func (c *Config) Settings() (models.Settings, error) {
	settings := models.Settings{}
	if c.SettingsFile != "" {
		data, err := os.ReadFile(c.SettingsFile)
		if err != nil {
			return settings, errors.Wrap(err, "read settings file")
		}
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return settings, errors.Wrapf(err, "parse settings file %s", c.SettingsFile)
		}
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return settings, errors.Wrapf(err, "invalid TIMEZONE %q", c.Timezone)
	}
	settings.Location = loc
	return settings, nil
}
