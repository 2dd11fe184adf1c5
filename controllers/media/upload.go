package mediacontroller

import (
	"mime/multipart"
	"net/http"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
)

type FileStore interface {
	SaveFile(file *multipart.FileHeader, folder string) (string, error)
}

// HandleFileUpload stores a multipart "file" under the optional "folder"
// form value and returns its public URL.
func HandleFileUpload(store FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, "No file uploaded")
			return
		}

		url, err := store.SaveFile(file, c.PostForm("folder"))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to save file", err)
			return
		}

		logger.WithComponent("media").Infof("File uploaded: %s -> %s", file.Filename, url)
		c.JSON(http.StatusOK, gin.H{
			"url":     url,
			"name":    file.Filename,
			"size":    file.Size,
			"message": "File uploaded successfully",
		})
	}
}
