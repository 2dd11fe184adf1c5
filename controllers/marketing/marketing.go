package marketingcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/mailer"
	"github.com/7248-om/gshock12/metrics"
	"github.com/7248-om/gshock12/middleware"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BroadcastInput struct {
	Subject     string `json:"subject"`
	TextContent string `json:"textContent"`
}

type TemplateInput struct {
	TemplateName string `json:"templateName"`
	Subject      string `json:"subject"`
	HTMLContent  string `json:"htmlContent"`
}

func userEmails(db *gorm.DB) ([]string, error) {
	var emails []string
	err := db.Model(&models.User{}).
		Where("email IS NOT NULL AND email <> ''").
		Order("created_at ASC").
		Pluck("email", &emails).Error
	return emails, err
}

// GetRecipients lists every address a broadcast would reach.
func GetRecipients(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		emails, err := userEmails(db)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch recipients", err)
			return
		}
		if len(emails) == 0 {
			response.Error(c, http.StatusNotFound, "No recipients found", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(emails), "recipients": emails})
	}
}

// Broadcast emails every user in BCC batches, signed with the admin's name.
func Broadcast(db *gorm.DB, broadcaster *mailer.Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BroadcastInput
		if err := c.ShouldBindJSON(&input); err != nil ||
			strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.TextContent) == "" {
			response.BadRequest(c, "Subject and content are required")
			return
		}

		emails, err := userEmails(db)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch recipients", err)
			return
		}
		if len(emails) == 0 {
			response.Error(c, http.StatusNotFound, "No users found to send emails to", nil)
			return
		}

		var admin models.User
		fromName := ""
		if err := db.First(&admin, "id = ?", middleware.UserID(c)).Error; err == nil {
			fromName = admin.Name
		}

		sent, err := broadcaster.Broadcast(c.Request.Context(), emails, fromName, input.Subject, input.TextContent)
		metrics.RecordEmailsSent(sent)
		switch {
		case errors.Is(err, mailer.ErrMailerUnavailable):
			response.Error(c, http.StatusServiceUnavailable, "Email sender is not configured", err)
			return
		case errors.Is(err, mailer.ErrNoRecipients):
			response.Error(c, http.StatusNotFound, "No users found to send emails to", nil)
			return
		case err != nil:
			response.Error(c, http.StatusInternalServerError, "Failed to send emails", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":        "Emails sent successfully",
			"recipientCount": sent,
		})
	}
}

// SaveTemplate creates or replaces a template by name.
func SaveTemplate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input TemplateInput
		if err := c.ShouldBindJSON(&input); err != nil ||
			strings.TrimSpace(input.TemplateName) == "" || strings.TrimSpace(input.Subject) == "" {
			response.BadRequest(c, "templateName and subject are required")
			return
		}

		tpl := models.EmailTemplate{
			Name:        strings.TrimSpace(input.TemplateName),
			Subject:     input.Subject,
			HTMLContent: input.HTMLContent,
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"subject", "html_content", "updated_at"}),
		}).Create(&tpl).Error
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to save template", err)
			return
		}

		var saved models.EmailTemplate
		if err := db.First(&saved, "name = ?", tpl.Name).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to save template", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Template saved", "template": saved})
	}
}

func GetTemplates(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var templates []models.EmailTemplate
		if err := db.Order("updated_at DESC").Find(&templates).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch templates", err)
			return
		}
		c.JSON(http.StatusOK, templates)
	}
}
