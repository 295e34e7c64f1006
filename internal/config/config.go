package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	sslModeDisable = "disable"
	sslModeRequire = "require"

	EnvProduction  = "production"
	EnvDevelopment = "development"

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type (
	Config struct {
		Env        string `mapstructure:"ENV"`
		Host       string `mapstructure:"HOST"`
		Port       string `mapstructure:"PORT"`
		APIToken   string `mapstructure:"API_TOKEN"`
		LogFile    string `mapstructure:"LOG_FILE"`
		DBDriver   string `mapstructure:"DB_DRIVER"`
		DBURL      string `mapstructure:"DB_URL"`
		DBMigrate  bool   `mapstructure:"DB_MIGRATE"`
		DBHost     string `mapstructure:"DB_HOST"`
		DBPort     string `mapstructure:"DB_PORT"`
		DBUser     string `mapstructure:"DB_USER"`
		DBPassword string `mapstructure:"DB_PASSWORD"`
		DBName     string `mapstructure:"DB_NAME"`
		DBSSLMode  string `mapstructure:"DB_SSL_MODE"`
	}
)

func NewConfig() (*Config, error) {
	// a missing .env is fine, the environment alone is enough
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env")
	}

	v := viper.New()
	v.SetEnvPrefix("BOOKMARKER")

	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8000")
	v.SetDefault("API_TOKEN", "")
	v.SetDefault("LOG_FILE", "info.log")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_URL", "")
	v.SetDefault("DB_MIGRATE", true)
	v.SetDefault("DB_HOST", "0.0.0.0")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "user")
	v.SetDefault("DB_PASSWORD", "password")
	v.SetDefault("DB_NAME", "db")
	v.SetDefault("DB_SSL_MODE", sslModeDisable)

	envs := []string{
		"ENV", "HOST", "PORT", "API_TOKEN", "LOG_FILE",
		"DB_DRIVER", "DB_URL", "DB_MIGRATE",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
	}
	for _, key := range envs {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	return &cfg, nil
}

// IsProduction reports whether clients should only ever see generic error bodies.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Listen is the address the HTTP server binds to.
func (c *Config) Listen() string {
	return c.Host + ":" + c.Port
}

// DSN returns DB_URL when set, otherwise a postgres DSN assembled from the DB_* parts.
func (c *Config) DSN() string {
	if c.DBURL != "" {
		return c.DBURL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func validate(cfg *Config) error {
	if cfg.APIToken == "" {
		return errors.New("API token is empty")
	}

	switch cfg.Env {
	case EnvProduction, EnvDevelopment:
	default:
		return errors.New(fmt.Sprintf("env is invalid: %s", cfg.Env))
	}

	switch cfg.DBDriver {
	case DriverPostgres:
	case DriverSQLite:
		if cfg.DBURL == "" {
			return errors.New("DB URL is required for the sqlite driver")
		}
	default:
		return errors.New(fmt.Sprintf("DB driver is invalid: %s", cfg.DBDriver))
	}

	validSSLValues := []string{sslModeDisable, sslModeRequire}
	for _, validValue := range validSSLValues {
		if cfg.DBSSLMode == validValue {
			return nil
		}
	}
	return errors.New(fmt.Sprintf("DB SSL mode is invalid: %s", cfg.DBSSLMode))
}
