// File: database/repository/property/propertyMongoCrud.go
package propertyRepo

import (
	"fmt"
	"time"

	"estia/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new property document.
func (r *MongoPropertyRepo) Create(property *models.Property) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	property.CreatedAt = now
	property.UpdatedAt = now
	if property.Status == "" {
		property.Status = models.PropertyStatusActive
	}

	_, err := r.coll.InsertOne(ctx, property)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}
	return nil
}

// Update modifies an existing property document.
func (r *MongoPropertyRepo) Update(property *models.Property) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	property.UpdatedAt = time.Now()
	filter := bson.M{"id": property.ID}
	update := bson.M{"$set": property}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update property with id %s: %w", property.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property with id %s not found", property.ID)
	}
	return nil
}

// Delete removes a property document by its ID.
func (r *MongoPropertyRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete property with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("property with id %s not found", id)
	}
	return nil
}

// UpdateSetDocument applies a partial $set update to a property document.
func (r *MongoPropertyRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}

	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update property with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property with id %s not found", id)
	}
	return nil
}

// AddPhoto appends a photo reference to a property document.
func (r *MongoPropertyRepo) AddPhoto(id string, photo models.PropertyPhoto) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$push": bson.M{"photos": photo},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add photo to property %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property with id %s not found", id)
	}
	return nil
}

// RemovePhoto removes a photo reference by its photo ID.
func (r *MongoPropertyRepo) RemovePhoto(id string, photoID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"photos": bson.M{"id": photoID}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	filter := bson.M{"id": id}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove photo from property %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("property with id %s not found", id)
	}
	return nil
}
