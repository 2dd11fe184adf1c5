package workshopcontroller

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"strings"
	"time"

	"github.com/7248-om/gshock12/models"
	"github.com/gin-gonic/gin"
)

// ImageStore keeps workshop images.
type ImageStore interface {
	SaveFile(file *multipart.FileHeader, folder string) (string, error)
	Remove(url string) error
}

type workshopInput struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Date        *string   `json:"date"`
	StartTime   *string   `json:"startTime"`
	EndTime     *string   `json:"endTime"`
	Price       *float64  `json:"price"`
	Capacity    *int      `json:"capacity"`
	IsActive    *bool     `json:"isActive"`
	ImageURL    *string   `json:"imageUrl"`
	Tags        *[]string `json:"tags"`
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

// readInput accepts JSON or a multipart form with an optional "image" file.
func readInput(c *gin.Context) (*workshopInput, *multipart.FileHeader, error) {
	in := &workshopInput{}
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBindJSON(in); err != nil {
			return nil, nil, errors.New("Invalid request body")
		}
		return in, nil, nil
	}

	str := func(key string) *string {
		if v, ok := c.GetPostForm(key); ok {
			return &v
		}
		return nil
	}

	in.Title = str("title")
	in.Description = str("description")
	in.Category = str("category")
	in.Date = str("date")
	in.StartTime = str("startTime")
	in.EndTime = str("endTime")
	in.ImageURL = str("imageUrl")

	if v := str("price"); v != nil && *v != "" {
		p, err := strconv.ParseFloat(*v, 64)
		if err != nil {
			return nil, nil, errors.New("Invalid price")
		}
		in.Price = &p
	}
	if v := str("capacity"); v != nil && *v != "" {
		n, err := strconv.Atoi(*v)
		if err != nil {
			return nil, nil, errors.New("Invalid capacity")
		}
		in.Capacity = &n
	}
	if v := str("isActive"); v != nil && *v != "" {
		b, err := strconv.ParseBool(*v)
		if err != nil {
			return nil, nil, errors.New("Invalid isActive")
		}
		in.IsActive = &b
	}
	if tags, ok := c.GetPostFormArray("tags"); ok {
		var all []string
		for _, t := range tags {
			all = append(all, strings.Split(t, ",")...)
		}
		in.Tags = &all
	}

	file, err := c.FormFile("image")
	if err != nil {
		file = nil
	}
	return in, file, nil
}

func (in *workshopInput) apply(w *models.Workshop) error {
	if in.Title != nil {
		if strings.TrimSpace(*in.Title) == "" {
			return errors.New("title is required")
		}
		w.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		w.Description = *in.Description
	}
	if in.Category != nil {
		w.Category = *in.Category
	}
	if in.Date != nil {
		d, err := parseDate(*in.Date)
		if err != nil {
			return errors.New("Invalid date")
		}
		w.Date = d
	}
	if in.StartTime != nil {
		w.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		w.EndTime = *in.EndTime
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return errors.New("price must be at least 0")
		}
		w.Price = *in.Price
	}
	if in.Capacity != nil {
		if *in.Capacity < 0 {
			return errors.New("capacity must be at least 0")
		}
		w.Capacity = *in.Capacity
	}
	if in.IsActive != nil {
		w.IsActive = *in.IsActive
	}
	if in.ImageURL != nil {
		w.ImageURL = *in.ImageURL
	}
	if in.Tags != nil {
		w.Tags = *in.Tags
	}
	return nil
}
