// Package response writes the JSON error envelope shared by every handler.
package response

import (
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/7248-om/gshock12/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var exposeDetails atomic.Bool

func init() {
	exposeDetails.Store(true)
}

// SetProduction hides raw error details from response bodies.
func SetProduction(production bool) {
	exposeDetails.Store(!production)
}

// Error aborts the request with {"error": message} and, outside production,
// the raw error under "details".
func Error(c *gin.Context, status int, message string, err error) {
	body := gin.H{"error": message}
	if err != nil {
		if exposeDetails.Load() {
			body["details"] = err.Error()
		}
		if status >= http.StatusInternalServerError {
			logger.L().WithFields(logrus.Fields{
				"path":   c.Request.URL.Path,
				"status": status,
			}).WithError(err).Error(message)
		}
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}

// BadRequest is a 400 with no underlying error.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, nil)
}

// StoreError maps a gorm error: record-not-found becomes 404, anything else 500.
func StoreError(c *gin.Context, notFound string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		Error(c, http.StatusNotFound, notFound, nil)
		return
	}
	Error(c, http.StatusInternalServerError, "Internal server error", err)
}
