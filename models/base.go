package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base gives every record a generated string identifier and timestamps.
type Base struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Tags is a free-text label list used for pairing and chat context.
type Tags []string

// NormalizeTags lowercases, trims and de-duplicates tags, dropping empties.
func NormalizeTags(in []string) Tags {
	out := Tags{}
	seen := make(map[string]bool, len(in))
	for _, t := range in {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// HasAny reports whether any of the wanted tags is present, ignoring case.
func (t Tags) HasAny(wanted []string) bool {
	for _, have := range t {
		for _, w := range wanted {
			if strings.EqualFold(have, w) {
				return true
			}
		}
	}
	return false
}
