package seed

import (
	"testing"
	"time"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalogParses(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Menu)
	assert.NotEmpty(t, c.Artists)
	assert.NotEmpty(t, c.Workshops)
	for _, m := range c.Menu {
		assert.Contains(t, models.MenuCategories, m.Category, m.Name)
		assert.Greater(t, m.Price, 0.0, m.Name)
	}
	for _, w := range c.Workshops {
		assert.Contains(t, models.WorkshopStatuses, w.Status, w.Title)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	_, err := Parse([]byte("menu: [unterminated"))
	assert.Error(t, err)
}

func TestApplyIsIdempotentUnlessReset(t *testing.T) {
	db := testutil.NewDB(t)
	c, err := Load()
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

	sum, err := Apply(db, c, false, now)
	require.NoError(t, err)
	assert.Equal(t, len(c.Menu), sum.MenuItems)
	assert.Equal(t, len(c.Artists), sum.Artists)

	var ws models.Workshop
	require.NoError(t, db.Where("title = ?", c.Workshops[0].Title).First(&ws).Error)
	assert.Equal(t, now.AddDate(0, 0, c.Workshops[0].DaysFromNow).Format("2006-01-02"), ws.Date.Format("2006-01-02"))

	sum, err = Apply(db, c, false, now)
	require.NoError(t, err)
	assert.Zero(t, sum.MenuItems)

	var count int64
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Equal(t, int64(len(c.Menu)), count)

	sum, err = Apply(db, c, true, now)
	require.NoError(t, err)
	assert.Equal(t, len(c.Menu), sum.MenuItems)
	require.NoError(t, db.Model(&models.MenuItem{}).Count(&count).Error)
	assert.Equal(t, int64(len(c.Menu)), count)

	var owners int64
	require.NoError(t, db.Model(&models.User{}).Count(&owners).Error)
	assert.Equal(t, int64(len(c.Artists)), owners)
}
