package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("BOOKMARKER_API_TOKEN", "secret")

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.Equal(t, EnvDevelopment, cfg.Env)
		assert.False(t, cfg.IsProduction())
		assert.Equal(t, "0.0.0.0:8000", cfg.Listen())
		assert.Equal(t, "secret", cfg.APIToken)
		assert.Equal(t, DriverPostgres, cfg.DBDriver)
		assert.True(t, cfg.DBMigrate)
		assert.Equal(t, "info.log", cfg.LogFile)
		assert.Equal(t, "host=0.0.0.0 user=user password=password dbname=db port=5432 sslmode=disable", cfg.DSN())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("BOOKMARKER_API_TOKEN", "secret")
		t.Setenv("BOOKMARKER_ENV", "production")
		t.Setenv("BOOKMARKER_PORT", "9000")
		t.Setenv("BOOKMARKER_DB_DRIVER", "sqlite")
		t.Setenv("BOOKMARKER_DB_URL", "bookmarks.db")
		t.Setenv("BOOKMARKER_DB_MIGRATE", "false")

		cfg, err := NewConfig()
		require.NoError(t, err)

		assert.True(t, cfg.IsProduction())
		assert.Equal(t, "0.0.0.0:9000", cfg.Listen())
		assert.Equal(t, DriverSQLite, cfg.DBDriver)
		assert.Equal(t, "bookmarks.db", cfg.DSN())
		assert.False(t, cfg.DBMigrate)
	})

	t.Run("missing api token", func(t *testing.T) {
		t.Setenv("BOOKMARKER_API_TOKEN", "")

		_, err := NewConfig()
		assert.ErrorContains(t, err, "API token is empty")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Env:       EnvDevelopment,
			APIToken:  "secret",
			DBDriver:  DriverPostgres,
			DBSSLMode: sslModeDisable,
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(cfg *Config) {},
		},
		{
			name:   "ssl required",
			mutate: func(cfg *Config) { cfg.DBSSLMode = sslModeRequire },
		},
		{
			name:    "bad env",
			mutate:  func(cfg *Config) { cfg.Env = "staging" },
			wantErr: "env is invalid: staging",
		},
		{
			name:    "bad driver",
			mutate:  func(cfg *Config) { cfg.DBDriver = "mysql" },
			wantErr: "DB driver is invalid: mysql",
		},
		{
			name:    "sqlite without url",
			mutate:  func(cfg *Config) { cfg.DBDriver = DriverSQLite },
			wantErr: "DB URL is required for the sqlite driver",
		},
		{
			name:    "bad ssl mode",
			mutate:  func(cfg *Config) { cfg.DBSSLMode = "prefer" },
			wantErr: "DB SSL mode is invalid: prefer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
