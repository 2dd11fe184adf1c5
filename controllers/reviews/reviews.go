package reviewscontroller

import (
	"errors"
	"net/http"

	"github.com/7248-om/gshock12/response"
	"github.com/7248-om/gshock12/reviews"
	"github.com/gin-gonic/gin"
)

// GetGoogleReviews proxies the café's Places rating and reviews.
func GetGoogleReviews(fetcher reviews.Fetcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := fetcher.Fetch(c.Request.Context())
		if err != nil {
			var apiErr *reviews.APIError
			switch {
			case errors.Is(err, reviews.ErrNotConfigured):
				response.Error(c, http.StatusInternalServerError, err.Error(), nil)
			case errors.As(err, &apiErr):
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":   "Google API error",
					"status":  apiErr.Status,
					"message": apiErr.Message,
				})
			default:
				response.Error(c, http.StatusInternalServerError, "Failed to fetch reviews", err)
			}
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
