package models

// PropertyMatch is one entry of the ranked property list for a client.
type PropertyMatch struct {
	Property Property `json:"property"`
	Score    int      `json:"score"` // 0..100
	IsNew    bool     `json:"isNew"` // true until the pair is marked viewed
}

// BuyerMatch is one entry of the ranked buyer list for a property.
type BuyerMatch struct {
	Client Client `json:"client"`
	Score  int    `json:"score"` // 0..100
	IsNew  bool   `json:"isNew"`
}
