package models

type EmailTemplate struct {
	Base
	Name        string `gorm:"uniqueIndex;not null" json:"name"`
	Subject     string `gorm:"not null" json:"subject"`
	HTMLContent string `gorm:"type:text" json:"htmlContent"`
}
