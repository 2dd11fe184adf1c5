package chatbot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/models"
	"gorm.io/gorm"
)

const (
	contextHeader     = "Here is the LIVE inventory from the database. Use ONLY this data.\n\n"
	contextLoadFailed = "Error loading inventory."
	// EmptyMenuNotice is written when nothing is in stock.
	EmptyMenuNotice = "(No products currently in stock)"
)

// BuildContext renders the live inventory the model is allowed to talk about:
// in-stock menu items, approved active workshops and available artworks.
func BuildContext(ctx context.Context, db *gorm.DB) string {
	tx := db.WithContext(ctx)

	var products []models.MenuItem
	if err := tx.Where("stock_status = ?", models.StockIn).Order("created_at ASC").Find(&products).Error; err != nil {
		logger.WithComponent("chatbot").WithError(err).Error("context query failed")
		return contextLoadFailed
	}

	var workshops []models.Workshop
	if err := tx.Where("status = ? AND is_active = ?", models.WorkshopApproved, true).Order("date ASC").Find(&workshops).Error; err != nil {
		logger.WithComponent("chatbot").WithError(err).Error("context query failed")
		return contextLoadFailed
	}

	var artworks []models.Artwork
	if err := tx.Where("status = ?", models.ArtAvailable).Order("created_at ASC").Find(&artworks).Error; err != nil {
		logger.WithComponent("chatbot").WithError(err).Error("context query failed")
		return contextLoadFailed
	}

	logger.WithComponent("chatbot").Debugf("🤖 Live context loaded: %d products, %d workshops, %d artworks",
		len(products), len(workshops), len(artworks))

	var b strings.Builder
	b.WriteString(contextHeader)

	if len(products) > 0 {
		b.WriteString("=== ☕ CURRENT MENU (From Inventory) ===\n")
		for _, p := range products {
			info := p.TastingNotes
			if info == "" {
				info = p.Description
			}
			fmt.Fprintf(&b, "- %s (%s) | ₹%s | Info: %s | Image: %s\n", p.Name, p.Category, price(p.Price), info, p.ImageURL)
		}
	} else {
		b.WriteString("=== MENU ===\n" + EmptyMenuNotice + "\n")
	}

	if len(workshops) > 0 {
		b.WriteString("\n=== 🎓 WORKSHOPS ===\n")
		for _, w := range workshops {
			fmt.Fprintf(&b, "- %s | Date: %s | ₹%s | Image: %s\n", w.Title, w.Date.Format("Mon Jan 02 2006"), price(w.Price), w.ImageURL)
		}
	}

	if len(artworks) > 0 {
		b.WriteString("\n=== 🎨 ART GALLERY ===\n")
		for _, a := range artworks {
			fmt.Fprintf(&b, "- \"%s\" by %s | ₹%s | Style: %s | Image: %s\n", a.Title, a.ArtistName, price(a.Price), a.TastingNotes, a.ImageURL)
		}
	}

	return b.String()
}

func price(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
