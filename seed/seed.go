// Package seed loads the demo catalog shipped with the binary.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/models"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed catalog.yaml
var catalogYAML []byte

type Catalog struct {
	Menu      []MenuItem `yaml:"menu"`
	Artists   []Artist   `yaml:"artists"`
	Workshops []Workshop `yaml:"workshops"`
}

type MenuItem struct {
	Name         string   `yaml:"name"`
	Category     string   `yaml:"category"`
	Price        float64  `yaml:"price"`
	Description  string   `yaml:"description"`
	TastingNotes string   `yaml:"tastingNotes"`
	Tags         []string `yaml:"tags"`
}

type Artist struct {
	Email       string    `yaml:"email"`
	DisplayName string    `yaml:"displayName"`
	Bio         string    `yaml:"bio"`
	ArtStyles   []string  `yaml:"artStyles"`
	IsFeatured  bool      `yaml:"isFeatured"`
	Artworks    []Artwork `yaml:"artworks"`
}

type Artwork struct {
	Title        string   `yaml:"title"`
	Medium       string   `yaml:"medium"`
	Price        float64  `yaml:"price"`
	Tags         []string `yaml:"tags"`
	TastingNotes string   `yaml:"tastingNotes"`
}

type Workshop struct {
	Title       string   `yaml:"title"`
	Category    string   `yaml:"category"`
	DaysFromNow int      `yaml:"daysFromNow"`
	StartTime   string   `yaml:"startTime"`
	EndTime     string   `yaml:"endTime"`
	Price       float64  `yaml:"price"`
	Capacity    int      `yaml:"capacity"`
	Status      string   `yaml:"status"`
	Tags        []string `yaml:"tags"`
}

// Summary counts the rows written by Apply.
type Summary struct {
	MenuItems int `json:"menuItems"`
	Artists   int `json:"artists"`
	Artworks  int `json:"artworks"`
	Workshops int `json:"workshops"`
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return &c, nil
}

// Apply writes the catalog in one transaction. Without reset it skips the
// whole catalog when menu items already exist. With reset it first clears
// the catalog tables; users and orders are left alone.
func Apply(db *gorm.DB, c *Catalog, reset bool, now time.Time) (*Summary, error) {
	log := logger.WithComponent("seed")
	sum := &Summary{}

	err := db.Transaction(func(tx *gorm.DB) error {
		if reset {
			for _, m := range []interface{}{&models.Artwork{}, &models.Artist{}, &models.Workshop{}, &models.MenuItem{}} {
				if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
					return fmt.Errorf("reset: %w", err)
				}
			}
		} else {
			var count int64
			if err := tx.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				log.Info("Catalog already present, skipping seed")
				return nil
			}
		}

		for _, m := range c.Menu {
			item := models.MenuItem{
				Name:         m.Name,
				Category:     m.Category,
				Price:        m.Price,
				Description:  m.Description,
				TastingNotes: m.TastingNotes,
				Tags:         m.Tags,
			}
			if err := tx.Create(&item).Error; err != nil {
				return fmt.Errorf("menu item %q: %w", m.Name, err)
			}
			sum.MenuItems++
		}

		for _, a := range c.Artists {
			owner := models.User{Email: a.Email, Name: a.DisplayName, Role: models.RoleUser}
			if err := tx.Where(models.User{Email: a.Email}).FirstOrCreate(&owner).Error; err != nil {
				return fmt.Errorf("artist owner %q: %w", a.Email, err)
			}
			artist := models.Artist{
				UserID:      owner.ID,
				DisplayName: a.DisplayName,
				Bio:         a.Bio,
				ArtStyles:   a.ArtStyles,
				IsFeatured:  a.IsFeatured,
				IsActive:    true,
			}
			if err := tx.Create(&artist).Error; err != nil {
				return fmt.Errorf("artist %q: %w", a.DisplayName, err)
			}
			sum.Artists++

			for _, w := range a.Artworks {
				artwork := models.Artwork{
					Title:        w.Title,
					ArtistID:     &artist.ID,
					ArtistName:   artist.DisplayName,
					Medium:       w.Medium,
					Price:        w.Price,
					Tags:         w.Tags,
					TastingNotes: w.TastingNotes,
				}
				if err := tx.Create(&artwork).Error; err != nil {
					return fmt.Errorf("artwork %q: %w", w.Title, err)
				}
				sum.Artworks++
			}
		}

		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		for _, w := range c.Workshops {
			ws := models.Workshop{
				Title:     w.Title,
				Category:  w.Category,
				Date:      day.AddDate(0, 0, w.DaysFromNow),
				StartTime: w.StartTime,
				EndTime:   w.EndTime,
				Price:     w.Price,
				Capacity:  w.Capacity,
				Status:    w.Status,
				IsActive:  true,
				Tags:      w.Tags,
			}
			if err := tx.Create(&ws).Error; err != nil {
				return fmt.Errorf("workshop %q: %w", w.Title, err)
			}
			sum.Workshops++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infof("🌱 Seeded %d menu items, %d artists, %d artworks, %d workshops",
		sum.MenuItems, sum.Artists, sum.Artworks, sum.Workshops)
	return sum, nil
}
