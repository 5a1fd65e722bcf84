// File: database/repository/agent/agentMongoCrud.go
package agentRepo

import (
	"fmt"
	"time"

	"estia/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new agent document.
func (r *MongoAgentRepo) Create(agent *models.Agent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	agent.CreatedAt = now
	agent.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, agent)
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}
	return nil
}

// Update modifies an existing agent document.
func (r *MongoAgentRepo) Update(agent *models.Agent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	agent.UpdatedAt = time.Now()
	filter := bson.M{"id": agent.ID}
	update := bson.M{"$set": agent}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update agent with id %s: %w", agent.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("agent with id %s not found", agent.ID)
	}
	return nil
}

// Delete removes an agent document by its ID.
func (r *MongoAgentRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete agent with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("agent with id %s not found", id)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to an agent document.
func (r *MongoAgentRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	// Wrap in $set to comply with MongoDB update syntax
	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update agent with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("agent with id %s not found", id)
	}
	return nil
}
