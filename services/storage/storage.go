package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage creates a StorageService from Cloudinary credentials.
func NewCloudinaryStorage(cloudName, apiKey, apiSecret string) (StorageService, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// UploadPhoto uploads an image into the given folder and returns its
// permanent identifier and delivery URL.
func (s *CloudinaryStorage) UploadPhoto(ctx context.Context, file io.Reader, destFolder string) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}
	if result.PublicID == "" {
		return nil, fmt.Errorf("no public ID returned for uploaded photo")
	}
	return &UploadResult{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

// DeletePhoto removes a stored photo by its public ID.
func (s *CloudinaryStorage) DeletePhoto(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("failed to delete photo %s: %w", publicID, err)
	}
	return nil
}
