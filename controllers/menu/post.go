package menucontroller

import (
	"net/http"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/7248-om/gshock12/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateMenuItemInput struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category" binding:"required,menu_category"`
	Price        *float64 `json:"price" binding:"required,gte=0"`
	Tags         []string `json:"tags"`
	TastingNotes string   `json:"tastingNotes"`
	StockStatus  string   `json:"stockStatus" binding:"stock_status"`
	ImageURL     string   `json:"imageUrl"`
}

func CreateMenuItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateMenuItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, validation.Message(err), err)
			return
		}

		item := models.MenuItem{
			Name:         input.Name,
			Description:  input.Description,
			Category:     input.Category,
			Price:        *input.Price,
			Tags:         input.Tags,
			TastingNotes: input.TastingNotes,
			StockStatus:  input.StockStatus,
			ImageURL:     input.ImageURL,
		}
		if err := db.Create(&item).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to create menu item", err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}
