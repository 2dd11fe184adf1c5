package menucontroller

import (
	"net/http"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Delete(&models.MenuItem{}, "id = ?", c.Param("id"))
		if res.Error != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete menu item", res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, "Item not found", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
	}
}
