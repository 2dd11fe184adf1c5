package synesthesiacontroller

import (
	"errors"
	"net/http"

	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetPairing answers GET /api/synesthesia/pair?vibe=.
func GetPairing(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		pairing, err := Pair(db, c.Query("vibe"))
		if errors.Is(err, ErrNoInventory) {
			response.Error(c, http.StatusNotFound, "Not enough inventory to generate a pairing.", nil)
			return
		}
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusOK, pairing)
	}
}
