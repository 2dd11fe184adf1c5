package synesthesiacontroller

import (
	"errors"
	"strings"

	"github.com/7248-om/gshock12/models"
	"gorm.io/gorm"
)

// DefaultVibe is used for any mood not in the table.
const DefaultVibe = "bold"

// VibeTags maps a mood to the tags searched on each side of the pairing
// and the sentence returned with it.
type VibeTags struct {
	Menu      []string
	Art       []string
	Reasoning string
}

var vibeConfig = map[string]VibeTags{
	"bold": {
		Menu:      []string{"bold", "strong", "robusta", "intense", "spicy", "dark"},
		Art:       []string{"abstract", "bold", "chaotic", "high_contrast", "urban"},
		Reasoning: "The intense profile of this selection mirrors the high-contrast, bold strokes of the artwork. A pairing for those who seek clarity in chaos.",
	},
	"smooth": {
		Menu:      []string{"smooth", "mild", "creamy", "sweet", "milk", "comfort"},
		Art:       []string{"minimalist", "soft", "calm", "pastel", "modern"},
		Reasoning: "Velvety textures on the palate complement the soft gradients on the canvas. A low-arousal pairing designed for contemplation and slow living.",
	},
	"earthy": {
		Menu:      []string{"earthy", "nutty", "herbal", "rustic", "traditional"},
		Art:       []string{"nature", "landscape", "organic", "green", "texture"},
		Reasoning: "Rooted flavors meet organic visuals. The earthy notes ground the sensory experience, echoing the natural elements in the art.",
	},
}

var ErrNoInventory = errors.New("not enough inventory to generate a pairing")

// Pairing is one coffee matched with one artwork.
type Pairing struct {
	Vibe      string          `json:"vibe"`
	Coffee    models.MenuItem `json:"coffee"`
	Art       models.Artwork  `json:"art"`
	Reasoning string          `json:"reasoning"`
}

// ResolveVibe normalises a mood keyword, falling back to DefaultVibe.
func ResolveVibe(raw string) (string, VibeTags) {
	vibe := strings.ToLower(strings.TrimSpace(raw))
	if tags, ok := vibeConfig[vibe]; ok {
		return vibe, tags
	}
	return DefaultVibe, vibeConfig[DefaultVibe]
}

// Pair picks the first in-stock menu item and the first available artwork
// carrying any of the vibe's tags. Each side falls back to the first
// available record of its type.
func Pair(db *gorm.DB, mood string) (*Pairing, error) {
	vibe, tags := ResolveVibe(mood)

	var menu []models.MenuItem
	if err := db.Where("stock_status = ?", models.StockIn).Order("created_at ASC").Find(&menu).Error; err != nil {
		return nil, err
	}
	var art []models.Artwork
	if err := db.Where("status = ?", models.ArtAvailable).Order("created_at ASC").Find(&art).Error; err != nil {
		return nil, err
	}
	if len(menu) == 0 || len(art) == 0 {
		return nil, ErrNoInventory
	}

	coffee := menu[0]
	for _, m := range menu {
		if m.Tags.HasAny(tags.Menu) {
			coffee = m
			break
		}
	}
	artwork := art[0]
	for _, a := range art {
		if a.Tags.HasAny(tags.Art) {
			artwork = a
			break
		}
	}

	return &Pairing{
		Vibe:      vibe,
		Coffee:    coffee,
		Art:       artwork,
		Reasoning: tags.Reasoning,
	}, nil
}
