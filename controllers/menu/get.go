package menucontroller

import (
	"net/http"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Item not found", err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
