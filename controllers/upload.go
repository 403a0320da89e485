package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	config "github.com/ledosportsacademy/club-manager-go/config"
	utils "github.com/ledosportsacademy/club-manager-go/utils"
)

// uploadedImageURL resolves the imageUrl for a create request. A
// multipart "image" file wins and is uploaded to Cloudinary under
// folder; otherwise any URL already in the body is kept. On failure it
// writes the error response and returns ok=false.
func uploadedImageURL(c *gin.Context, cfg *config.Config, folder, fromBody string) (string, bool) {
	form, err := c.MultipartForm()
	if err != nil && err != http.ErrNotMultipart {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		return "", false
	}
	if form == nil || len(form.File["image"]) == 0 {
		return fromBody, true
	}

	file, err := form.File["image"][0].Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
		return "", false
	}
	defer file.Close()

	url, err := utils.UploadImage(cfg.Cloudinary, file, folder)
	if err != nil {
		log.Printf("image upload to %s failed: %v", folder, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image upload failed"})
		return "", false
	}
	return url, true
}
