package artistcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/middleware"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateArtistInput struct {
	DisplayName  string   `json:"displayName"`
	Bio          string   `json:"bio"`
	ArtStyles    []string `json:"artStyles"`
	ProfileImage string   `json:"profileImage"`
	IsFeatured   bool     `json:"isFeatured"`
	IsActive     *bool    `json:"isActive"`
}

type UpdateArtistInput struct {
	DisplayName  *string   `json:"displayName"`
	Bio          *string   `json:"bio"`
	ArtStyles    *[]string `json:"artStyles"`
	ProfileImage *string   `json:"profileImage"`
	IsFeatured   *bool     `json:"isFeatured"`
	IsActive     *bool     `json:"isActive"`
}

// GetArtists lists active artists, newest first. ?featured=true and ?style= narrow the list.
func GetArtists(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("is_active = ?", true)
		if c.Query("featured") == "true" {
			query = query.Where("is_featured = ?", true)
		}

		var artists []models.Artist
		if err := query.Order("created_at DESC").Find(&artists).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}

		if style := strings.ToLower(strings.TrimSpace(c.Query("style"))); style != "" {
			filtered := make([]models.Artist, 0, len(artists))
			for _, a := range artists {
				if a.ArtStyles.HasAny([]string{style}) {
					filtered = append(filtered, a)
				}
			}
			artists = filtered
		}
		c.JSON(http.StatusOK, artists)
	}
}

// GetArtist looks up by id, then by display name ignoring case. An unknown
// artist gets a placeholder profile so public pages can still render.
func GetArtist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		param := c.Param("id")

		var artist models.Artist
		var err error
		if _, parseErr := uuid.Parse(param); parseErr == nil {
			err = db.First(&artist, "id = ?", param).Error
		} else {
			err = db.Where("LOWER(display_name) = ?", strings.ToLower(param)).First(&artist).Error
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"id":          "temp",
				"displayName": param,
				"bio":         "Artist profile coming soon.",
				"artStyles":   []string{},
				"isActive":    true,
			})
			return
		}
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusOK, artist)
	}
}

// CreateArtist creates the caller's artist profile; each user gets at most one.
func CreateArtist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateArtistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
		if strings.TrimSpace(input.DisplayName) == "" {
			response.BadRequest(c, "Display Name is required")
			return
		}

		userID := middleware.UserID(c)
		var existing int64
		if err := db.Model(&models.Artist{}).Where("user_id = ?", userID).Count(&existing).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		if existing > 0 {
			response.BadRequest(c, "User already has an artist profile")
			return
		}

		artist := models.Artist{
			UserID:       userID,
			DisplayName:  strings.TrimSpace(input.DisplayName),
			Bio:          input.Bio,
			ArtStyles:    input.ArtStyles,
			ProfileImage: input.ProfileImage,
			IsFeatured:   input.IsFeatured,
			IsActive:     input.IsActive == nil || *input.IsActive,
		}
		if err := db.Create(&artist).Error; err != nil {
			// unique index on user_id catches a concurrent second create
			if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique") {
				response.BadRequest(c, "Artist profile already exists")
				return
			}
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusCreated, artist)
	}
}

// UpdateArtist lets the owner, or an admin, edit a profile.
func UpdateArtist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Where("id = ?", c.Param("id"))
		if !middleware.IsAdmin(c) {
			query = query.Where("user_id = ?", middleware.UserID(c))
		}

		var artist models.Artist
		if err := query.First(&artist).Error; err != nil {
			response.StoreError(c, "Artist not found or unauthorized", err)
			return
		}

		var input UpdateArtistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		if input.DisplayName != nil {
			if strings.TrimSpace(*input.DisplayName) == "" {
				response.BadRequest(c, "Display Name is required")
				return
			}
			artist.DisplayName = strings.TrimSpace(*input.DisplayName)
		}
		if input.Bio != nil {
			artist.Bio = *input.Bio
		}
		if input.ArtStyles != nil {
			artist.ArtStyles = *input.ArtStyles
		}
		if input.ProfileImage != nil {
			artist.ProfileImage = *input.ProfileImage
		}
		if input.IsFeatured != nil {
			artist.IsFeatured = *input.IsFeatured
		}
		if input.IsActive != nil {
			artist.IsActive = *input.IsActive
		}

		if err := db.Save(&artist).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusOK, artist)
	}
}
