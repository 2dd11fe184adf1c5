package models

import "gorm.io/gorm"

const (
	ArtAvailable      = "Available"
	ArtSoldOut        = "Sold Out"
	ArtLimitedEdition = "Limited Edition"
)

var ArtworkStatuses = []string{ArtAvailable, ArtSoldOut, ArtLimitedEdition}

type Artwork struct {
	Base
	Title        string  `gorm:"not null" json:"title"`
	Description  string  `json:"description"`
	ArtistID     *string `gorm:"index;size:36" json:"artistId,omitempty"`
	ArtistName   string  `json:"artistName"`
	Medium       string  `json:"medium,omitempty"`
	Price        float64 `json:"price"`
	Tags         Tags    `gorm:"serializer:json;type:text" json:"tags"`
	TastingNotes string  `json:"tastingNotes"`
	Status       string  `gorm:"type:VARCHAR(20);default:'Available';index" json:"status"`
	ImageURL     string  `json:"imageUrl"`
}

func (a *Artwork) BeforeSave(tx *gorm.DB) error {
	a.Tags = NormalizeTags(a.Tags)
	if a.Status == "" {
		a.Status = ArtAvailable
	}
	return nil
}

func (a *Artwork) Available() bool {
	return a.Status == ArtAvailable
}
