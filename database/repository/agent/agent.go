package agentRepo

import (
	"estia/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AgentRepository defines methods for agent data access.
type AgentRepository interface {
	// GetByID retrieves an agent by its unique ID.
	GetByID(id string) (*models.Agent, error)
	// GetByEmail retrieves an agent by its email address.
	GetByEmail(email string) (*models.Agent, error)
	// GetAll retrieves all agents.
	GetAll() ([]models.Agent, error)
	// Create inserts a new agent record.
	Create(agent *models.Agent) error
	// Update modifies an existing agent record.
	Update(agent *models.Agent) error
	// Delete removes an agent record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a partial $set update to an agent document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// GetByIDWithProjection retrieves an agent by its unique ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.Agent, error)
}
