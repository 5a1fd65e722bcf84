package agentRepo

import (
	"context"
	"fmt"
	"time"

	"estia/database"
	"estia/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAgentRepo implements AgentRepository using MongoDB.
type MongoAgentRepo struct {
	coll *mongo.Collection
}

// NewMongoAgentRepo creates a new instance of AgentRepository using MongoDB.
func NewMongoAgentRepo() AgentRepository {
	coll := database.Collection("agents")
	repo := &MongoAgentRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoAgentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByIDWithProjection retrieves an agent by its unique ID using a projection.
// Pass nil for projection to retrieve the full document.
func (r *MongoAgentRepo) GetByIDWithProjection(id string, projection bson.M) (*models.Agent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var agent models.Agent
	if err := r.coll.FindOne(ctx, bson.M{"id": id}, opts).Decode(&agent); err != nil {
		return nil, fmt.Errorf("failed to fetch agent with id %s: %w", id, err)
	}
	return &agent, nil
}

// GetByID retrieves an agent by its unique ID.
func (r *MongoAgentRepo) GetByID(id string) (*models.Agent, error) {
	return r.GetByIDWithProjection(id, nil)
}

// GetByEmail retrieves an agent by its email address.
func (r *MongoAgentRepo) GetByEmail(email string) (*models.Agent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var agent models.Agent
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&agent); err != nil {
		return nil, fmt.Errorf("failed to fetch agent with email %s: %w", email, err)
	}
	return &agent, nil
}

// GetAll retrieves all agents.
func (r *MongoAgentRepo) GetAll() ([]models.Agent, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}
	defer cursor.Close(ctx)

	var agents []models.Agent
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, fmt.Errorf("failed to decode agents: %w", err)
	}
	return agents, nil
}
