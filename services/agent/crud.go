package agent

import (
	"fmt"
	"time"

	"estia/models"
	"estia/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetAgentByID retrieves an agent profile.
func (s *DefaultAgentService) GetAgentByID(agentID string) (*models.Agent, error) {
	agent, err := s.Repo.GetByID(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve agent: %w", err)
	}
	return agent, nil
}

// UpdateAgent updates non-empty agent fields using a partial update.
func (s *DefaultAgentService) UpdateAgent(agent models.Agent) (*models.Agent, error) {
	logger := utils.GetLogger()
	logger.Debug("UpdateAgent called", zap.String("agentID", agent.ID))

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if agent.Name != "" {
		updateFields["name"] = agent.Name
	}
	if agent.Email != "" {
		updateFields["email"] = agent.Email
	}
	if agent.Phone != "" {
		updateFields["phone"] = agent.Phone
	}

	if err := s.Repo.UpdateSetDocument(agent.ID, updateFields); err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}
	return s.Repo.GetByID(agent.ID)
}

// DeleteAgent removes the agent account.
func (s *DefaultAgentService) DeleteAgent(agentID string) error {
	agent, err := s.Repo.GetByID(agentID)
	if err != nil {
		return fmt.Errorf("failed to retrieve agent: %w", err)
	}
	if agent.TokenHash != "" {
		utils.DropAuthToken(agent.TokenHash)
	}
	if err := s.Repo.Delete(agentID); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}
