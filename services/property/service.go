package property

import (
	"context"
	"fmt"
	"io"
	"time"

	propertyRepo "estia/database/repository/property"
	"estia/models"
	"estia/services/storage"
	"estia/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const photoFolder = "estia/properties"

// CatalogInvalidator is notified after every property write so memoized
// match rankings are recomputed.
type CatalogInvalidator interface {
	InvalidateCatalog()
}

// PropertyService manages listings and their photos.
type PropertyService interface {
	CreateProperty(property models.Property) (*models.Property, error)
	GetPropertyByID(propertyID string) (*models.Property, error)
	GetPropertiesByAgent(agentID string) ([]models.Property, error)
	UpdateProperty(property models.Property) (*models.Property, error)
	DeleteProperty(propertyID string) error

	AddPhoto(ctx context.Context, propertyID string, file io.Reader) (*models.PropertyPhoto, error)
	RemovePhoto(ctx context.Context, propertyID, photoID string) error
}

// DefaultPropertyService is the production implementation.
type DefaultPropertyService struct {
	Repo    propertyRepo.PropertyRepository
	Storage storage.StorageService
	Matches CatalogInvalidator
}

var validPropertyTypes = map[models.PropertyType]bool{
	models.PropertyTypeApartment:  true,
	models.PropertyTypeHouse:      true,
	models.PropertyTypePlot:       true,
	models.PropertyTypeCommercial: true,
}

var validPropertyStatuses = map[models.PropertyStatus]bool{
	models.PropertyStatusActive: true,
	models.PropertyStatusRented: true,
	models.PropertyStatusSold:   true,
}

// CreateProperty validates and stores a new listing.
func (s *DefaultPropertyService) CreateProperty(property models.Property) (*models.Property, error) {
	if property.AgentID == "" {
		return nil, fmt.Errorf("agentId is required")
	}
	if property.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !validPropertyTypes[property.Type] {
		return nil, fmt.Errorf("invalid property type %q", property.Type)
	}
	if property.Status == "" {
		property.Status = models.PropertyStatusActive
	}
	if !validPropertyStatuses[property.Status] {
		return nil, fmt.Errorf("invalid property status %q", property.Status)
	}

	property.ID = uuid.NewString()
	if err := s.Repo.Create(&property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	s.Matches.InvalidateCatalog()
	return &property, nil
}

// GetPropertyByID retrieves a single listing.
func (s *DefaultPropertyService) GetPropertyByID(propertyID string) (*models.Property, error) {
	property, err := s.Repo.GetByID(propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve property: %w", err)
	}
	return property, nil
}

// GetPropertiesByAgent lists the agent's properties.
func (s *DefaultPropertyService) GetPropertiesByAgent(agentID string) ([]models.Property, error) {
	properties, err := s.Repo.GetAllByAgent(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// UpdateProperty replaces the stored listing document.
func (s *DefaultPropertyService) UpdateProperty(property models.Property) (*models.Property, error) {
	existing, err := s.Repo.GetByID(property.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve property: %w", err)
	}
	if !validPropertyTypes[property.Type] {
		return nil, fmt.Errorf("invalid property type %q", property.Type)
	}
	if !validPropertyStatuses[property.Status] {
		return nil, fmt.Errorf("invalid property status %q", property.Status)
	}
	// Ownership, photos and creation time are managed elsewhere.
	property.AgentID = existing.AgentID
	property.Photos = existing.Photos
	property.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(&property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	s.Matches.InvalidateCatalog()
	return &property, nil
}

// DeleteProperty removes a listing and its stored photos.
func (s *DefaultPropertyService) DeleteProperty(propertyID string) error {
	logger := utils.GetLogger()

	property, err := s.Repo.GetByID(propertyID)
	if err != nil {
		return fmt.Errorf("failed to retrieve property: %w", err)
	}
	if err := s.Repo.Delete(propertyID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	s.Matches.InvalidateCatalog()

	// Photo cleanup is best-effort; orphaned assets are harmless.
	if s.Storage != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		for _, photo := range property.Photos {
			if err := s.Storage.DeletePhoto(ctx, photo.PublicID); err != nil {
				logger.Warn("Failed to delete property photo",
					zap.String("propertyID", propertyID),
					zap.String("publicID", photo.PublicID),
					zap.Error(err))
			}
		}
	}
	return nil
}

// AddPhoto uploads a photo and attaches it to the listing.
func (s *DefaultPropertyService) AddPhoto(ctx context.Context, propertyID string, file io.Reader) (*models.PropertyPhoto, error) {
	if s.Storage == nil {
		return nil, fmt.Errorf("photo storage is not configured")
	}
	if _, err := s.Repo.GetByID(propertyID); err != nil {
		return nil, fmt.Errorf("failed to retrieve property: %w", err)
	}

	result, err := s.Storage.UploadPhoto(ctx, file, photoFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	photo := models.PropertyPhoto{
		ID:       uuid.NewString(),
		PublicID: result.PublicID,
		URL:      result.URL,
		AddedAt:  time.Now(),
	}
	if err := s.Repo.AddPhoto(propertyID, photo); err != nil {
		return nil, fmt.Errorf("failed to attach photo: %w", err)
	}
	return &photo, nil
}

// RemovePhoto detaches a photo from the listing and deletes the stored asset.
func (s *DefaultPropertyService) RemovePhoto(ctx context.Context, propertyID, photoID string) error {
	property, err := s.Repo.GetByID(propertyID)
	if err != nil {
		return fmt.Errorf("failed to retrieve property: %w", err)
	}

	var publicID string
	for _, photo := range property.Photos {
		if photo.ID == photoID {
			publicID = photo.PublicID
			break
		}
	}
	if publicID == "" {
		return fmt.Errorf("photo %s not found on property %s", photoID, propertyID)
	}

	if err := s.Repo.RemovePhoto(propertyID, photoID); err != nil {
		return fmt.Errorf("failed to detach photo: %w", err)
	}
	if s.Storage != nil {
		if err := s.Storage.DeletePhoto(ctx, publicID); err != nil {
			utils.GetLogger().Warn("Failed to delete stored photo",
				zap.String("publicID", publicID), zap.Error(err))
		}
	}
	return nil
}
