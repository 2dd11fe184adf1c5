package menucontroller

import (
	"net/http"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/7248-om/gshock12/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// UpdateMenuItemInput applies only the fields that are present.
type UpdateMenuItemInput struct {
	Name         *string   `json:"name" binding:"omitempty,min=1"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category" binding:"omitempty,menu_category"`
	Price        *float64  `json:"price" binding:"omitempty,gte=0"`
	Tags         *[]string `json:"tags"`
	TastingNotes *string   `json:"tastingNotes"`
	StockStatus  *string   `json:"stockStatus" binding:"omitempty,stock_status"`
	ImageURL     *string   `json:"imageUrl"`
}

func UpdateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := db.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Item not found", err)
			return
		}

		var input UpdateMenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, validation.Message(err), err)
			return
		}

		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Category != nil {
			item.Category = *input.Category
		}
		if input.Price != nil {
			item.Price = *input.Price
		}
		if input.Tags != nil {
			item.Tags = *input.Tags
		}
		if input.TastingNotes != nil {
			item.TastingNotes = *input.TastingNotes
		}
		if input.StockStatus != nil {
			item.StockStatus = *input.StockStatus
		}
		if input.ImageURL != nil {
			item.ImageURL = *input.ImageURL
		}

		if err := db.Save(&item).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update menu item", err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}
