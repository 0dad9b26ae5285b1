package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_CreatesSchemaTables(t *testing.T) {
	db := setupTestDB(t)

	var tables []string
	err := db.Raw(`SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY rowid`).Scan(&tables).Error
	require.NoError(t, err)
	assert.Equal(t, schemaTables, tables)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, RunMigrations(sqlDB), "schema is reapplied on every start")
}
