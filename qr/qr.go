package qr

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

type Generator interface {
	// Generate returns a PNG that opens the menu for the given table label.
	Generate(label string) (png []byte, target string, err error)
}

// TableGenerator points codes at FRONTEND_URL/menu?table=<label>.
type TableGenerator struct {
	FrontendURL string
	Size        int
}

func (g TableGenerator) Target(label string) string {
	return fmt.Sprintf("%s/menu?table=%s", strings.TrimRight(g.FrontendURL, "/"), url.QueryEscape(label))
}

func (g TableGenerator) Generate(label string) ([]byte, string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, "", errors.New("label is required")
	}
	size := g.Size
	if size <= 0 {
		size = 256
	}
	target := g.Target(label)
	png, err := qrcode.Encode(target, qrcode.Medium, size)
	if err != nil {
		return nil, "", err
	}
	return png, target, nil
}
