package models

import (
	"github.com/7248-om/gshock12/logger"
	"gorm.io/gorm"
)

// TableQR is a generated QR code that opens the menu for one café table.
type TableQR struct {
	Base
	Label     string `gorm:"not null" json:"label"`
	FileName  string `gorm:"not null" json:"fileName"`
	FileURL   string `gorm:"not null" json:"fileUrl"`
	TargetURL string `json:"targetUrl"`
}

func SaveTableQR(db *gorm.DB, qr *TableQR) error {
	if err := db.Create(qr).Error; err != nil {
		return err
	}
	logger.WithComponent("qr").Infof("📁 Saved table QR: %s -> %s", qr.Label, qr.FileURL)
	return nil
}

func GetAllTableQRs(db *gorm.DB) ([]TableQR, error) {
	var files []TableQR
	if err := db.Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
