package chatbot

import (
	"regexp"
	"strconv"
	"strings"
)

var recTag = regexp.MustCompile(`\{\{REC:([^|{}]*)\|([^|{}]*)\|([^|{}]*)\}\}`)

// Card is a recommendation the client renders as a product card.
type Card struct {
	ImageURL string  `json:"imageUrl"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// Segment is one piece of a parsed reply: either plain text or a card.
type Segment struct {
	Text string `json:"text,omitempty"`
	Card *Card  `json:"card,omitempty"`
}

// ParseReply splits a model reply into text and card segments. Tags whose
// price is not a number are left in the text unchanged.
func ParseReply(reply string) []Segment {
	var segments []Segment
	var text strings.Builder
	last := 0

	for _, m := range recTag.FindAllStringSubmatchIndex(reply, -1) {
		rawPrice := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(reply[m[6]:m[7]]), "₹"))
		price, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			continue
		}

		text.WriteString(reply[last:m[0]])
		if t := text.String(); strings.TrimSpace(t) != "" {
			segments = append(segments, Segment{Text: t})
		}
		text.Reset()

		segments = append(segments, Segment{Card: &Card{
			ImageURL: strings.TrimSpace(reply[m[2]:m[3]]),
			Name:     strings.TrimSpace(reply[m[4]:m[5]]),
			Price:    price,
		}})
		last = m[1]
	}

	text.WriteString(reply[last:])
	if t := text.String(); strings.TrimSpace(t) != "" {
		segments = append(segments, Segment{Text: t})
	}
	return segments
}
