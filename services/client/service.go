package client

import (
	"fmt"

	clientRepo "estia/database/repository/client"
	"estia/models"

	"github.com/google/uuid"
)

// CatalogInvalidator is notified after every client write so memoized match
// rankings are recomputed.
type CatalogInvalidator interface {
	InvalidateCatalog()
}

// ClientService manages CRM clients.
type ClientService interface {
	CreateClient(client models.Client) (*models.Client, error)
	GetClientByID(clientID string) (*models.Client, error)
	GetClientsByAgent(agentID string) ([]models.Client, error)
	UpdateClient(client models.Client) (*models.Client, error)
	DeleteClient(clientID string) error
}

// DefaultClientService is the production implementation.
type DefaultClientService struct {
	Repo    clientRepo.ClientRepository
	Matches CatalogInvalidator
}

// CreateClient validates and stores a new client.
func (s *DefaultClientService) CreateClient(client models.Client) (*models.Client, error) {
	if client.AgentID == "" {
		return nil, fmt.Errorf("agentId is required")
	}
	if client.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if client.Category == "" {
		client.Category = models.ClientCategoryBuyer
	}
	if client.Category != models.ClientCategoryBuyer && client.Category != models.ClientCategorySeller {
		return nil, fmt.Errorf("invalid client category %q", client.Category)
	}

	client.ID = uuid.NewString()
	if err := s.Repo.Create(&client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	s.Matches.InvalidateCatalog()
	return &client, nil
}

// GetClientByID retrieves a single client.
func (s *DefaultClientService) GetClientByID(clientID string) (*models.Client, error) {
	client, err := s.Repo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve client: %w", err)
	}
	return client, nil
}

// GetClientsByAgent lists the agent's clients.
func (s *DefaultClientService) GetClientsByAgent(agentID string) ([]models.Client, error) {
	clients, err := s.Repo.GetAllByAgent(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// UpdateClient replaces the stored client document.
func (s *DefaultClientService) UpdateClient(client models.Client) (*models.Client, error) {
	existing, err := s.Repo.GetByID(client.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve client: %w", err)
	}
	// Ownership and creation time are immutable.
	client.AgentID = existing.AgentID
	client.CreatedAt = existing.CreatedAt

	if err := s.Repo.Update(&client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	s.Matches.InvalidateCatalog()
	return &client, nil
}

// DeleteClient removes a client.
func (s *DefaultClientService) DeleteClient(clientID string) error {
	if err := s.Repo.Delete(clientID); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	s.Matches.InvalidateCatalog()
	return nil
}
