package orderControllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

var orderColumns = []string{
	"ID", "Customer", "Email", "Items", "TotalAmount", "Currency",
	"PaymentStatus", "OrderStatus", "RazorpayOrderID", "RazorpayPaymentID", "CreatedAt",
}

// ExportOrdersToExcel streams every order as an xlsx sheet.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("User").Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch orders", err)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to create Excel sheet", err)
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range orderColumns {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			var name, email string
			if o.User != nil {
				name, email = o.User.Name, o.User.Email
			}
			row := sheet.AddRow()
			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(name)
			row.AddCell().SetValue(email)
			row.AddCell().SetValue(itemSummary(o.Items))
			row.AddCell().SetValue(o.TotalAmount)
			row.AddCell().SetValue(o.Currency)
			row.AddCell().SetValue(string(o.PaymentStatus))
			row.AddCell().SetValue(string(o.OrderStatus))
			row.AddCell().SetValue(o.RazorpayOrderID)
			row.AddCell().SetValue(o.RazorpayPaymentID)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to write Excel file", err)
			return
		}
	}
}

// itemSummary renders "2x Latte; 1x Dusk".
func itemSummary(items []models.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
	}
	return strings.Join(parts, "; ")
}
