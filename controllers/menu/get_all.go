package menucontroller

import (
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetMenu lists every menu item, newest first, including out-of-stock ones.
// Optional filters: ?category= and ?tag=.
func GetMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.MenuItem{})
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var items []models.MenuItem
		if err := query.Order("created_at DESC").Find(&items).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch menu", err)
			return
		}

		if tag := strings.ToLower(strings.TrimSpace(c.Query("tag"))); tag != "" {
			filtered := make([]models.MenuItem, 0, len(items))
			for _, it := range items {
				if it.Tags.HasAny([]string{tag}) {
					filtered = append(filtered, it)
				}
			}
			items = filtered
		}

		c.JSON(http.StatusOK, items)
	}
}

// GetCategories returns each menu category with its item count.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rows []struct {
			Category string
			Count    int64
		}
		if err := db.Model(&models.MenuItem{}).
			Select("category, COUNT(*) AS count").
			Group("category").
			Scan(&rows).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch categories", err)
			return
		}

		counts := make(map[string]int64, len(rows))
		for _, r := range rows {
			counts[r.Category] = r.Count
		}

		out := make([]gin.H, 0, len(models.MenuCategories))
		for _, name := range models.MenuCategories {
			out = append(out, gin.H{"name": name, "count": counts[name]})
		}
		c.JSON(http.StatusOK, out)
	}
}
