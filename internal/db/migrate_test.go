package db_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/db"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/models"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/testutil"
)

func TestMigrate(t *testing.T) {
	conn := testutil.NewTestDB(t)

	assert.True(t, conn.Migrator().HasTable("bookmarks"))
	for _, column := range []string{"id", "title", "url", "description", "rating", "created_at"} {
		assert.True(t, conn.Migrator().HasColumn(&models.Bookmark{}, column), column)
	}

	// already applied migrations are skipped
	require.NoError(t, db.Migrate(conn, "sqlite", zap.NewNop()))
}

func TestMigrateUnknownDriver(t *testing.T) {
	conn := testutil.NewTestDB(t)

	err := db.Migrate(conn, "mysql", zap.NewNop())
	assert.EqualError(t, err, `unknown driver for goose dialect: "mysql"`)
}
