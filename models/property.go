package models

import "time"

// PropertyPhoto references an uploaded listing photo in Cloudinary.
type PropertyPhoto struct {
	ID       string    `bson:"id" json:"id"`
	PublicID string    `bson:"publicId" json:"publicId"` // Cloudinary public ID
	URL      string    `bson:"url" json:"url"`
	AddedAt  time.Time `bson:"addedAt" json:"addedAt"`
}

// Property is a listing managed by an agent.
type Property struct {
	ID          string          `bson:"id" json:"id"`
	AgentID     string          `bson:"agentId" json:"agentId"`
	Title       string          `bson:"title" json:"title"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64         `bson:"price" json:"price"`
	Type        PropertyType    `bson:"type" json:"type"`
	Location    string          `bson:"location" json:"location"`
	Size        float64         `bson:"size" json:"size"` // square meters
	Bedrooms    *int            `bson:"bedrooms,omitempty" json:"bedrooms,omitempty"`
	Bathrooms   *int            `bson:"bathrooms,omitempty" json:"bathrooms,omitempty"`
	Status      PropertyStatus  `bson:"status" json:"status"`
	Features    FeatureSet      `bson:"features" json:"features"`
	Photos      []PropertyPhoto `bson:"photos,omitempty" json:"photos,omitempty"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time       `bson:"updatedAt" json:"updatedAt"`
}
