package agent

import (
	agentRepo "estia/database/repository/agent"
	"estia/models"
)

// AuthResponse contains the agent's ID, token, and additional details.
type AuthResponse struct {
	ID           string              `json:"id"`
	Token        string              `json:"token"`
	Name         string              `json:"name,omitempty"`
	Email        string              `json:"email,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	Subscription models.Subscription `json:"subscription,omitzero"`
}

// AgentService manages agent accounts, authentication and billing.
type AgentService interface {
	// Registration and authentication.
	RegisterAgent(agent models.Agent) (*AuthResponse, error)
	AuthenticateAgent(email, password string) (*AuthResponse, error)
	RevokeAuthToken(agentID string) error
	UpdateAgentPassword(agentID, currentPassword, newPassword string) error

	// Account management.
	GetAgentByID(agentID string) (*models.Agent, error)
	UpdateAgent(agent models.Agent) (*models.Agent, error)
	DeleteAgent(agentID string) error

	// Billing.
	StartSubscription(agentID string) (*SubscriptionIntent, error)
	RefreshSubscription(agentID string) (*models.Subscription, error)
}

// DefaultAgentService is the production implementation.
type DefaultAgentService struct {
	Repo agentRepo.AgentRepository
}
