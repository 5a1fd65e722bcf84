package matching

// Weights defines the contribution of each criterion to the compatibility
// score. A criterion only counts toward the attainable maximum when the
// client has expressed a preference on that dimension.
type Weights struct {
	Budget       float64 `json:"budget"`
	PropertyType float64 `json:"propertyType"`
	Location     float64 `json:"location"`
	Size         float64 `json:"size"`
	Bedrooms     float64 `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	Features     float64 `json:"features"`
}

// DefaultWeights returns the production weighting. Budget dominates, the
// feature catalogue is worth more than any single structural criterion
// because it is scored with partial credit.
func DefaultWeights() Weights {
	return Weights{
		Budget:       20,
		PropertyType: 12,
		Location:     8,
		Size:         6,
		Bedrooms:     6,
		Bathrooms:    3,
		Features:     15,
	}
}
