package menucontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// Spreadsheet columns shared by import and export.
var menuColumns = []string{
	"ID", "Name", "Category", "Price", "Description", "TastingNotes",
	"Tags", "StockStatus", "ImageURL", "CreatedAt", "UpdatedAt",
}

// ImportMenuFromExcel upserts menu items from the first sheet. Rows with an
// existing ID are updated, everything else is created. Invalid rows are skipped.
func ImportMenuFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, "Excel file is required")
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to open Excel file", err)
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Failed to parse Excel file", err)
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			response.BadRequest(c, "Excel file is empty or missing header row")
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]
			if row == nil || len(row.Cells) < 4 {
				skippedCount++
				continue
			}

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			item, ok := menuItemFromRow(get)
			if !ok {
				skippedCount++
				continue
			}

			if id := get(0); id != "" {
				var existing models.MenuItem
				if err := db.First(&existing, "id = ?", id).Error; err == nil {
					item.Base = existing.Base
					if err := db.Save(&item).Error; err == nil {
						updatedCount++
					} else {
						skippedCount++
					}
					continue
				}
			}

			if err := db.Create(&item).Error; err == nil {
				createdCount++
			} else {
				skippedCount++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Import completed",
			"createdCount": createdCount,
			"updatedCount": updatedCount,
			"skippedCount": skippedCount,
		})
	}
}

func menuItemFromRow(get func(int) string) (models.MenuItem, bool) {
	name := get(1)
	category := get(2)
	price, err := strconv.ParseFloat(get(3), 64)
	if name == "" || err != nil || price < 0 || !validCategory(category) {
		return models.MenuItem{}, false
	}

	stock := get(7)
	if stock != "" && stock != models.StockIn && stock != models.StockOut {
		return models.MenuItem{}, false
	}

	var tags []string
	if raw := get(6); raw != "" {
		tags = strings.Split(raw, ",")
	}

	return models.MenuItem{
		Name:         name,
		Category:     category,
		Price:        price,
		Description:  get(4),
		TastingNotes: get(5),
		Tags:         tags,
		StockStatus:  stock,
		ImageURL:     get(8),
	}, true
}

func validCategory(category string) bool {
	for _, c := range models.MenuCategories {
		if c == category {
			return true
		}
	}
	return false
}
