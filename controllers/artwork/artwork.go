package artworkcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/7248-om/gshock12/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArtworkInput struct {
	Title        *string   `json:"title" binding:"omitempty,min=1"`
	Description  *string   `json:"description"`
	ArtistID     *string   `json:"artistId"`
	ArtistName   *string   `json:"artistName"`
	Medium       *string   `json:"medium"`
	Price        *float64  `json:"price" binding:"omitempty,gte=0"`
	Tags         *[]string `json:"tags"`
	TastingNotes *string   `json:"tastingNotes"`
	Status       *string   `json:"status" binding:"omitempty,artwork_status"`
	ImageURL     *string   `json:"imageUrl"`
}

var errUnknownArtist = errors.New("artist not found")

func GetArtworks(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Artwork{})
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}
		if artistID := c.Query("artistId"); artistID != "" {
			query = query.Where("artist_id = ?", artistID)
		}

		var artworks []models.Artwork
		if err := query.Order("created_at DESC").Find(&artworks).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}

		if tag := strings.ToLower(strings.TrimSpace(c.Query("tag"))); tag != "" {
			filtered := make([]models.Artwork, 0, len(artworks))
			for _, a := range artworks {
				if a.Tags.HasAny([]string{tag}) {
					filtered = append(filtered, a)
				}
			}
			artworks = filtered
		}
		c.JSON(http.StatusOK, artworks)
	}
}

func GetArtwork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var artwork models.Artwork
		if err := db.First(&artwork, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Artwork not found", err)
			return
		}
		c.JSON(http.StatusOK, artwork)
	}
}

func CreateArtwork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ArtworkInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, validation.Message(err), err)
			return
		}
		if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
			response.BadRequest(c, "title is required")
			return
		}

		var artwork models.Artwork
		if err := apply(db, &artwork, &input); err != nil {
			artistError(c, err)
			return
		}
		if err := db.Create(&artwork).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusCreated, artwork)
	}
}

func UpdateArtwork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var artwork models.Artwork
		if err := db.First(&artwork, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Artwork not found", err)
			return
		}

		var input ArtworkInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, validation.Message(err), err)
			return
		}
		if err := apply(db, &artwork, &input); err != nil {
			artistError(c, err)
			return
		}
		if err := db.Save(&artwork).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusOK, artwork)
	}
}

func DeleteArtwork(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Delete(&models.Artwork{}, "id = ?", c.Param("id"))
		if res.Error != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, "Artwork not found", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Artwork deleted successfully"})
	}
}

// apply copies the present fields onto the artwork. A referenced artist must
// exist and its display name becomes the artwork's artist name.
func apply(db *gorm.DB, a *models.Artwork, in *ArtworkInput) error {
	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.ArtistName != nil {
		a.ArtistName = *in.ArtistName
	}
	if in.ArtistID != nil {
		if *in.ArtistID == "" {
			a.ArtistID = nil
		} else {
			var artist models.Artist
			if err := db.First(&artist, "id = ?", *in.ArtistID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return errUnknownArtist
				}
				return err
			}
			id := artist.ID
			a.ArtistID = &id
			a.ArtistName = artist.DisplayName
		}
	}
	if in.Medium != nil {
		a.Medium = *in.Medium
	}
	if in.Price != nil {
		a.Price = *in.Price
	}
	if in.Tags != nil {
		a.Tags = *in.Tags
	}
	if in.TastingNotes != nil {
		a.TastingNotes = *in.TastingNotes
	}
	if in.Status != nil {
		a.Status = *in.Status
	}
	if in.ImageURL != nil {
		a.ImageURL = *in.ImageURL
	}
	return nil
}

func artistError(c *gin.Context, err error) {
	if errors.Is(err, errUnknownArtist) {
		response.BadRequest(c, "Referenced artist does not exist")
		return
	}
	response.Error(c, http.StatusInternalServerError, "Internal server error", err)
}
