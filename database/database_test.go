package database

import (
	"testing"

	"github.com/junaidrashid-git/shop-api/config"
	"github.com/junaidrashid-git/shop-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestOpenMemoryMigrates(t *testing.T) {
	db, err := OpenMemory(t.Name())
	require.NoError(t, err)

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "missing table for %T", m)
	}
}

func TestOpenMemoryIsolated(t *testing.T) {
	a, err := OpenMemory(t.Name() + "/a")
	require.NoError(t, err)
	b, err := OpenMemory(t.Name() + "/b")
	require.NoError(t, err)

	require.NoError(t, a.Create(&models.Category{Name: "Books"}).Error)

	var count int64
	require.NoError(t, b.Model(&models.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOpenSQLiteFile(t *testing.T) {
	path := t.TempDir() + "/shop.db"
	db, err := Open(config.DBConfig{Driver: "sqlite", SQLitePath: path, LogLevel: "silent"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	assert.Equal(t, "sqlite", db.Dialector.Name())
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(config.DBConfig{Driver: "oracle"})
	assert.Error(t, err)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, logLevel("SILENT"))
	assert.Equal(t, logger.Info, logLevel("info"))
	assert.Equal(t, logger.Warn, logLevel("bogus"))
}
