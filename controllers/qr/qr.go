package qrcontroller

import (
	"net/http"
	"path"
	"strings"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/qr"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const qrFolder = "qr"

// FileStore is the part of the upload store QR codes need.
type FileStore interface {
	SaveBytes(data []byte, name, folder string) (string, error)
	Remove(url string) error
}

type CreateQRInput struct {
	Label string `json:"label" binding:"required"`
}

// CreateTableQR renders a QR code for a table label and stores the PNG.
func CreateTableQR(db *gorm.DB, gen qr.Generator, store FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateQRInput
		if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Label) == "" {
			response.BadRequest(c, "label is required")
			return
		}
		label := strings.TrimSpace(input.Label)

		png, target, err := gen.Generate(label)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to generate QR code", err)
			return
		}

		fileURL, err := store.SaveBytes(png, "table-"+label+".png", qrFolder)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to save file", err)
			return
		}

		record := models.TableQR{
			Label:     label,
			FileName:  path.Base(fileURL),
			FileURL:   fileURL,
			TargetURL: target,
		}
		if err := models.SaveTableQR(db, &record); err != nil {
			_ = store.Remove(fileURL)
			response.Error(c, http.StatusInternalServerError, "Failed to save QR record", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "QR code created successfully",
			"qr":      record,
		})
	}
}

func GetTableQRs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		files, err := models.GetAllTableQRs(db)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch QR codes", err)
			return
		}
		c.JSON(http.StatusOK, files)
	}
}
