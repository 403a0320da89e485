package utils

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

var ErrUploadNotConfigured = errors.New("image upload is not configured")

// UploadImage uploads a photo to the given Cloudinary folder
// ("members" or "experiences") and returns its public URL.
func UploadImage(cld *cloudinary.Cloudinary, file multipart.File, folder string) (string, error) {
	if cld == nil {
		return "", ErrUploadNotConfigured
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	uploadResp, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
	})
	if err != nil {
		return "", fmt.Errorf("upload error: %v", err)
	}

	return uploadResp.SecureURL, nil
}
