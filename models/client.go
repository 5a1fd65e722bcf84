package models

import "time"

// Client is a CRM contact managed by an agent. All search criteria are
// optional; a nil pointer means the client has expressed no preference on
// that dimension.
type Client struct {
	ID       string         `bson:"id" json:"id"`
	AgentID  string         `bson:"agentId" json:"agentId"`
	Name     string         `bson:"name" json:"name"`
	Email    string         `bson:"email,omitempty" json:"email,omitempty"`
	Phone    string         `bson:"phone,omitempty" json:"phone,omitempty"`
	Category ClientCategory `bson:"category" json:"category"` // "buyer" or "seller"

	BudgetMin *float64 `bson:"budgetMin,omitempty" json:"budgetMin,omitempty"`
	BudgetMax *float64 `bson:"budgetMax,omitempty" json:"budgetMax,omitempty"`

	DesiredPropertyType *PropertyType `bson:"desiredPropertyType,omitempty" json:"desiredPropertyType,omitempty"`

	// DesiredLocations supersedes DesiredLocation when non-empty.
	DesiredLocations []string `bson:"desiredLocations,omitempty" json:"desiredLocations,omitempty"`
	DesiredLocation  string   `bson:"desiredLocation,omitempty" json:"desiredLocation,omitempty"` // legacy single-location field

	MinSize *float64 `bson:"minSize,omitempty" json:"minSize,omitempty"`
	MaxSize *float64 `bson:"maxSize,omitempty" json:"maxSize,omitempty"`

	MinBedrooms  *int `bson:"minBedrooms,omitempty" json:"minBedrooms,omitempty"`
	MaxBedrooms  *int `bson:"maxBedrooms,omitempty" json:"maxBedrooms,omitempty"`
	MinBathrooms *int `bson:"minBathrooms,omitempty" json:"minBathrooms,omitempty"`
	MaxBathrooms *int `bson:"maxBathrooms,omitempty" json:"maxBathrooms,omitempty"`

	// Preferences holds the desired feature flags; nil means the feature
	// criterion does not apply to this client at all.
	Preferences *FeatureSet `bson:"preferences,omitempty" json:"preferences,omitempty"`

	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
