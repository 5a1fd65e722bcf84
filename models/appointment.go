package models

import "time"

// Appointment is a scheduled viewing or meeting. PropertyID is empty for
// appointments not tied to a listing.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	AgentID    string    `bson:"agentId" json:"agentId"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	PropertyID string    `bson:"propertyId,omitempty" json:"propertyId,omitempty"`
	Title      string    `bson:"title" json:"title"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	StartsAt   time.Time `bson:"startsAt" json:"startsAt"`
	EndsAt     time.Time `bson:"endsAt" json:"endsAt"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
