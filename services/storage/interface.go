package storage

import (
	"context"
	"io"
)

// UploadResult describes a stored photo.
type UploadResult struct {
	PublicID string
	URL      string
}

// StorageService stores and removes listing photos.
type StorageService interface {
	// UploadPhoto uploads an image into the given folder and returns its
	// permanent identifier and delivery URL.
	UploadPhoto(ctx context.Context, file io.Reader, destFolder string) (*UploadResult, error)
	// DeletePhoto removes a stored photo by its public ID.
	DeletePhoto(ctx context.Context, publicID string) error
}
