package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	WorkshopPending  = "Pending"
	WorkshopApproved = "Approved"
	WorkshopRejected = "Rejected"
)

var WorkshopStatuses = []string{WorkshopPending, WorkshopApproved, WorkshopRejected}

type Workshop struct {
	Base
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        time.Time `gorm:"not null" json:"date"`
	StartTime   string    `json:"startTime,omitempty"`
	EndTime     string    `json:"endTime,omitempty"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Status      string    `gorm:"type:VARCHAR(10);default:'Pending';index" json:"status"`
	IsActive    bool      `json:"isActive"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Tags        Tags      `gorm:"serializer:json;type:text" json:"tags"`
}

func (w *Workshop) BeforeSave(tx *gorm.DB) error {
	w.Tags = NormalizeTags(w.Tags)
	if w.Status == "" {
		w.Status = WorkshopPending
	}
	return nil
}
