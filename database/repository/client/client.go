package clientRepo

import (
	"estia/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	// GetByID retrieves a client by its unique ID.
	GetByID(id string) (*models.Client, error)
	// GetAllByAgent retrieves all clients belonging to an agent, in insertion order.
	GetAllByAgent(agentID string) ([]models.Client, error)
	// GetBuyersByAgent retrieves the agent's buyer clients, in insertion order.
	GetBuyersByAgent(agentID string) ([]models.Client, error)
	// Create inserts a new client record.
	Create(client *models.Client) error
	// Update modifies an existing client record.
	Update(client *models.Client) error
	// Delete removes a client record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a partial $set update to a client document.
	UpdateSetDocument(id string, updateDoc bson.M) error
}
