package models

// Interaction is one chatbot exchange; UserID is nil for guests.
type Interaction struct {
	Base
	UserID   *string `gorm:"index;size:36" json:"userId"`
	Query    string  `gorm:"type:text;not null" json:"query"`
	Intent   string  `json:"intent"`
	Response string  `gorm:"type:text" json:"response"`
}
