package workshopcontroller

import (
	"net/http"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/7248-om/gshock12/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const imageFolder = "workshops"

type StatusInput struct {
	Status string `json:"status" binding:"required,workshop_status"`
}

// GetWorkshops lists workshops by date. ?status= filters, ?active=true hides inactive ones.
func GetWorkshops(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Workshop{})
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if c.Query("active") == "true" {
			query = query.Where("is_active = ?", true)
		}

		var workshops []models.Workshop
		if err := query.Order("date ASC").Find(&workshops).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusOK, workshops)
	}
}

func GetWorkshop(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var w models.Workshop
		if err := db.First(&w, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Workshop not found", err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func CreateWorkshop(db *gorm.DB, store ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		in, file, err := readInput(c)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		if in.Title == nil || in.Date == nil {
			response.BadRequest(c, "title and date are required")
			return
		}

		w := models.Workshop{IsActive: true, Status: models.WorkshopPending}
		if err := in.apply(&w); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		if file != nil {
			url, err := store.SaveFile(file, imageFolder)
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to save image", err)
				return
			}
			w.ImageURL = url
		}

		if err := db.Create(&w).Error; err != nil {
			if w.ImageURL != "" {
				removeImage(store, w.ImageURL)
			}
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusCreated, w)
	}
}

// UpdateWorkshop replaces the image when a new one is uploaded.
func UpdateWorkshop(db *gorm.DB, store ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var w models.Workshop
		if err := db.First(&w, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Workshop not found", err)
			return
		}

		in, file, err := readInput(c)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		oldImage := w.ImageURL
		if err := in.apply(&w); err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		if file != nil {
			url, err := store.SaveFile(file, imageFolder)
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to save image", err)
				return
			}
			w.ImageURL = url
		}

		if err := db.Save(&w).Error; err != nil {
			if w.ImageURL != oldImage {
				removeImage(store, w.ImageURL)
			}
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		if oldImage != "" && oldImage != w.ImageURL {
			removeImage(store, oldImage)
		}
		c.JSON(http.StatusOK, w)
	}
}

func UpdateWorkshopStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input StatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, validation.Message(err), err)
			return
		}

		var w models.Workshop
		if err := db.First(&w, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Workshop not found", err)
			return
		}
		if err := db.Model(&w).Update("status", input.Status).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusOK, w)
	}
}

func DeleteWorkshop(db *gorm.DB, store ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var w models.Workshop
		if err := db.First(&w, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Workshop not found", err)
			return
		}
		if err := db.Delete(&w).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		if w.ImageURL != "" {
			removeImage(store, w.ImageURL)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Workshop deleted successfully"})
	}
}

func removeImage(store ImageStore, url string) {
	if err := store.Remove(url); err != nil {
		logger.WithComponent("workshops").WithError(err).WithField("url", url).Warn("could not remove image")
	}
}
