package propertyRepo

import (
	"estia/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PropertyRepository defines methods for property data access.
type PropertyRepository interface {
	// GetByID retrieves a property by its unique ID.
	GetByID(id string) (*models.Property, error)
	// GetAllByAgent retrieves all properties belonging to an agent, in insertion order.
	GetAllByAgent(agentID string) ([]models.Property, error)
	// Create inserts a new property record.
	Create(property *models.Property) error
	// Update modifies an existing property record.
	Update(property *models.Property) error
	// Delete removes a property record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a partial $set update to a property document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// AddPhoto appends a photo reference to a property document.
	AddPhoto(id string, photo models.PropertyPhoto) error
	// RemovePhoto removes a photo reference by its photo ID.
	RemovePhoto(id string, photoID string) error
}
