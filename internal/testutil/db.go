package testutil

import (
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/db"
)

// NewTestDB opens a migrated in-memory SQLite database private to the calling test. The
// shared cache keeps every pooled connection on the same database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Env:      config.EnvProduction,
		DBDriver: config.DriverSQLite,
		DBURL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	conn, err := db.Open(cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.Migrate(conn, config.DriverSQLite, zap.NewNop()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn
}
