package agent

import (
	"fmt"
	"regexp"
	"time"

	"estia/models"
	"estia/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const authTokenDuration = 30 * 24 * time.Hour

// verifyPasswordComplexity checks that the password contains at least one lowercase letter,
// one uppercase letter, one digit, and one symbol.
func verifyPasswordComplexity(pw string) error {
	var (
		hasMinLen = len(pw) >= 8
		hasUpper  = regexp.MustCompile(`[A-Z]`).MatchString(pw)
		hasLower  = regexp.MustCompile(`[a-z]`).MatchString(pw)
		hasNumber = regexp.MustCompile(`[0-9]`).MatchString(pw)
		hasSymbol = regexp.MustCompile(`[\W_]`).MatchString(pw) // non-alphanumeric
	)
	if !hasMinLen {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	if !hasUpper {
		return fmt.Errorf("password must include at least one uppercase letter")
	}
	if !hasLower {
		return fmt.Errorf("password must include at least one lowercase letter")
	}
	if !hasNumber {
		return fmt.Errorf("password must include at least one number")
	}
	if !hasSymbol {
		return fmt.Errorf("password must include at least one symbol")
	}
	return nil
}

// RegisterAgent creates a new agent account, generates a token, and stores its hash.
func (s *DefaultAgentService) RegisterAgent(agent models.Agent) (*AuthResponse, error) {
	logger := utils.GetLogger()

	if agent.Email == "" || agent.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if agent.Name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if err := verifyPasswordComplexity(agent.Password); err != nil {
		return nil, err
	}

	if existing, _ := s.Repo.GetByEmail(agent.Email); existing != nil {
		return nil, fmt.Errorf("an agent with email %s already exists", agent.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(agent.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	agent.ID = uuid.NewString()
	agent.PasswordHash = string(hash)
	agent.Password = ""

	token, err := utils.GenerateToken(agent.ID, agent.Email, authTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	agent.TokenHash = utils.HashToken(token)

	if err := s.Repo.Create(&agent); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	utils.CacheAuthToken(agent.TokenHash, agent.ID)
	logger.Info("Agent registered", zap.String("agentID", agent.ID))

	return &AuthResponse{
		ID:    agent.ID,
		Token: token,
		Name:  agent.Name,
		Email: agent.Email,
		Phone: agent.Phone,
	}, nil
}

// AuthenticateAgent verifies credentials and issues a fresh token.
func (s *DefaultAgentService) AuthenticateAgent(email, password string) (*AuthResponse, error) {
	logger := utils.GetLogger()

	agent, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Failed login attempt", zap.String("email", email))
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(agent.ID, agent.Email, authTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(agent.ID, bson.M{"tokenHash": tokenHash, "updatedAt": time.Now()}); err != nil {
		return nil, fmt.Errorf("failed to store token: %w", err)
	}
	utils.CacheAuthToken(tokenHash, agent.ID)

	return &AuthResponse{
		ID:           agent.ID,
		Token:        token,
		Name:         agent.Name,
		Email:        agent.Email,
		Phone:        agent.Phone,
		Subscription: agent.Subscription,
	}, nil
}

// RevokeAuthToken invalidates the agent's current token.
func (s *DefaultAgentService) RevokeAuthToken(agentID string) error {
	agent, err := s.Repo.GetByID(agentID)
	if err != nil {
		return fmt.Errorf("failed to retrieve agent: %w", err)
	}
	if agent.TokenHash != "" {
		utils.DropAuthToken(agent.TokenHash)
	}
	if err := s.Repo.UpdateSetDocument(agentID, bson.M{"tokenHash": "", "updatedAt": time.Now()}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// UpdateAgentPassword changes the agent's password after verifying the current one.
func (s *DefaultAgentService) UpdateAgentPassword(agentID, currentPassword, newPassword string) error {
	agent, err := s.Repo.GetByID(agentID)
	if err != nil {
		return fmt.Errorf("failed to retrieve agent: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(agent.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := verifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.Repo.UpdateSetDocument(agentID, bson.M{"passwordHash": string(hash), "updatedAt": time.Now()}); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
