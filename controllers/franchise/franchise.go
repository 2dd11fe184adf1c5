package franchisecontroller

import (
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/7248-om/gshock12/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateLeadInput struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone"`
	City            string `json:"city"`
	InvestmentRange string `json:"investmentRange"`
	Message         string `json:"message"`
}

type LeadStatusInput struct {
	Status string `json:"status" binding:"required,lead_status"`
}

// CreateLead stores a public franchise enquiry.
func CreateLead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateLeadInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, validation.Message(err), err)
			return
		}

		lead := models.FranchiseLead{
			Name:            strings.TrimSpace(input.Name),
			Email:           strings.ToLower(strings.TrimSpace(input.Email)),
			Phone:           input.Phone,
			City:            input.City,
			InvestmentRange: input.InvestmentRange,
			Message:         input.Message,
			Status:          models.LeadNew,
		}
		if err := db.Create(&lead).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Application submitted successfully", "lead": lead})
	}
}

func GetLeads(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var leads []models.FranchiseLead
		if err := db.Order("created_at DESC").Find(&leads).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusOK, leads)
	}
}

func UpdateLeadStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LeadStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, validation.Message(err), err)
			return
		}

		var lead models.FranchiseLead
		if err := db.First(&lead, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Lead not found", err)
			return
		}
		if err := db.Model(&lead).Update("status", input.Status).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", err)
			return
		}
		c.JSON(http.StatusOK, lead)
	}
}

func DeleteLead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Delete(&models.FranchiseLead{}, "id = ?", c.Param("id"))
		if res.Error != nil {
			response.Error(c, http.StatusInternalServerError, "Internal server error", res.Error)
			return
		}
		if res.RowsAffected == 0 {
			response.Error(c, http.StatusNotFound, "Lead not found", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Lead deleted"})
	}
}
