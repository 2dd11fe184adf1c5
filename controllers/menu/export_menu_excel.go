package menucontroller

import (
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

func ExportMenuToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.MenuItem
		if err := db.Order("created_at DESC").Find(&items).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch menu", err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Menu")
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to create Excel sheet", err)
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range menuColumns {
			headerRow.AddCell().SetValue(h)
		}

		for _, m := range items {
			row := sheet.AddRow()
			row.AddCell().SetValue(m.ID)
			row.AddCell().SetValue(m.Name)
			row.AddCell().SetValue(m.Category)
			row.AddCell().SetValue(m.Price)
			row.AddCell().SetValue(m.Description)
			row.AddCell().SetValue(m.TastingNotes)
			row.AddCell().SetValue(strings.Join(m.Tags, ","))
			row.AddCell().SetValue(m.StockStatus)
			row.AddCell().SetValue(m.ImageURL)
			row.AddCell().SetValue(m.CreatedAt.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(m.UpdatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=menu.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to write Excel file", err)
			return
		}
	}
}
