package models

import "gorm.io/gorm"

const (
	CategoryCoffee   = "Coffee"
	CategoryBeverage = "Beverage"
	CategorySavory   = "Savory Bites"
	CategoryDessert  = "Desserts"

	StockIn  = "In Stock"
	StockOut = "Out of Stock"
)

var MenuCategories = []string{CategoryCoffee, CategoryBeverage, CategorySavory, CategoryDessert}

type MenuItem struct {
	Base
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `json:"description"`
	Category     string  `gorm:"type:VARCHAR(20);not null;index" json:"category"`
	Price        float64 `gorm:"not null" json:"price"`
	Tags         Tags    `gorm:"serializer:json;type:text" json:"tags"`
	TastingNotes string  `json:"tastingNotes"`
	StockStatus  string  `gorm:"type:VARCHAR(20);default:'In Stock';index" json:"stockStatus"`
	ImageURL     string  `json:"imageUrl"`
}

func (m *MenuItem) BeforeSave(tx *gorm.DB) error {
	m.Tags = NormalizeTags(m.Tags)
	if m.StockStatus == "" {
		m.StockStatus = StockIn
	}
	return nil
}

func (m *MenuItem) InStock() bool {
	return m.StockStatus == StockIn
}
