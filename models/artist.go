package models

import "gorm.io/gorm"

// Artist is the public profile a user owns; at most one per user.
type Artist struct {
	Base
	UserID       string `gorm:"uniqueIndex;not null" json:"userId"`
	DisplayName  string `gorm:"not null;index" json:"displayName"`
	Bio          string `json:"bio"`
	ArtStyles    Tags   `gorm:"serializer:json;type:text" json:"artStyles"`
	ProfileImage string `json:"profileImage,omitempty"`
	IsFeatured   bool   `json:"isFeatured"`
	IsActive     bool   `json:"isActive"`
}

func (a *Artist) BeforeSave(tx *gorm.DB) error {
	a.ArtStyles = NormalizeTags(a.ArtStyles)
	return nil
}
