package uploadcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

var unsafeChars = regexp.MustCompile(`[^\w\d\-_\.]`)

// HandleImageUpload stores one multipart image under uploadDir and returns
// the relative path the console keeps as an opaque string. The client
// prefixes it with the image base URL when rendering.
func HandleImageUpload(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
			return
		}

		// Sanitize filename: base name only, no path separators or specials
		cleanName := unsafeChars.ReplaceAllString(filepath.Base(file.Filename), "_")
		filename := fmt.Sprintf("%d_%s", time.Now().UnixNano(), cleanName)

		if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}
		savePath := filepath.Join(uploadDir, filename)
		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"filePath": "uploads/" + filename})
	}
}
