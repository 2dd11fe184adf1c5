package qrcontroller

import (
	"net/http"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func DeleteTableQR(db *gorm.DB, store FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var record models.TableQR
		if err := db.First(&record, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "QR file not found", err)
			return
		}

		if err := store.Remove(record.FileURL); err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete file from disk", err)
			return
		}

		if err := db.Delete(&record).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete QR file record", err)
			return
		}

		logger.WithComponent("qr").Infof("🗑️ QR file deleted: %s", record.FileName)
		c.JSON(http.StatusOK, gin.H{"message": "QR file deleted successfully"})
	}
}
