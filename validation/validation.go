// Package validation registers the domain enum rules with gin's validator.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/7248-om/gshock12/models"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	once    sync.Once
	regErr  error
	enumSet = map[string][]string{
		"menu_category":   models.MenuCategories,
		"stock_status":    {models.StockIn, models.StockOut},
		"artwork_status":  models.ArtworkStatuses,
		"workshop_status": models.WorkshopStatuses,
		"lead_status":     models.LeadStatuses,
		"item_type":       {models.ItemTypeMenu, models.ItemTypeArtwork, models.ItemTypeWorkshop},
	}
)

// Register installs the custom tags. Safe to call more than once.
func Register() error {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			regErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		for tag, allowed := range enumSet {
			if err := v.RegisterValidation(tag, oneOf(allowed)); err != nil {
				regErr = err
				return
			}
		}
	})
	return regErr
}

// oneOf accepts empty strings so optional fields stay optional; pair with
// "required" where a value must be present.
func oneOf(allowed []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return true
		}
		for _, a := range allowed {
			if v == a {
				return true
			}
		}
		return false
	}
}

// Message turns a binding error into a short client-facing sentence.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, field+" is required")
		case "gte", "gt", "min":
			parts = append(parts, fmt.Sprintf("%s must be %s %s", field, comparator(fe.Tag()), fe.Param()))
		case "email":
			parts = append(parts, field+" must be a valid email")
		default:
			if allowed, ok := enumSet[fe.Tag()]; ok {
				parts = append(parts, fmt.Sprintf("%s must be one of: %s", field, strings.Join(allowed, ", ")))
			} else {
				parts = append(parts, field+" is invalid")
			}
		}
	}
	return strings.Join(parts, "; ")
}

func comparator(tag string) string {
	if tag == "gt" {
		return "greater than"
	}
	return "at least"
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
