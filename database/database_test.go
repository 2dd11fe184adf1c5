package database

import (
	"testing"

	"github.com/7248-om/gshock12/config"
	"github.com/7248-om/gshock12/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLiteAndMigrate(t *testing.T) {
	cfg := &config.Configuration{DBDriver: "sqlite", SQLitePath: "file:dbtest?mode=memory&cache=shared"}
	db, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	item := models.MenuItem{Name: "Espresso", Category: models.CategoryCoffee, Price: 120, Tags: models.Tags{" Bold ", "bold", "Dark"}}
	require.NoError(t, db.Create(&item).Error)
	assert.Len(t, item.ID, 36)

	var got models.MenuItem
	require.NoError(t, db.First(&got, "id = ?", item.ID).Error)
	assert.Equal(t, models.Tags{"bold", "dark"}, got.Tags)
	assert.Equal(t, models.StockIn, got.StockStatus)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(&config.Configuration{DBDriver: "mysql"})
	assert.Error(t, err)
}
