package matching

import (
	"math"
	"sort"

	"estia/models"
)

// Ranking thresholds. The per-client property list admits any positive
// score; the per-property buyer list is stricter because it backs a noisier
// surface where weak matches are not worth showing.
const (
	minPropertyScore = 0
	minBuyerScore    = 30
)

// Scorer computes 0..100 compatibility scores between clients and
// properties. It is stateless and safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score computes the compatibility score for one (client, property) pair.
//
// Each criterion the client has expressed a preference on contributes its
// weight to the attainable maximum; satisfied criteria contribute to the
// achieved total. The result is the achieved share normalized to 0..100 and
// rounded half-up. Non-active properties earn half credit across the board:
// a rented or sold listing is still worth surfacing, just not at full
// strength.
//
// A client with no constraints at all scores 0 against every property, not
// 100. An empty search profile means "nothing to match on", and surfacing
// the whole catalogue for such a client would bury the lists that matter.
func (s *Scorer) Score(client models.Client, property models.Property) int {
	var score, maxScore float64

	if client.BudgetMin != nil || client.BudgetMax != nil {
		maxScore += s.weights.Budget
		if withinFloatBounds(property.Price, client.BudgetMin, client.BudgetMax) {
			score += s.weights.Budget
		}
	}

	if client.DesiredPropertyType != nil {
		maxScore += s.weights.PropertyType
		if property.Type == *client.DesiredPropertyType {
			score += s.weights.PropertyType
		}
	}

	if len(client.DesiredLocations) > 0 || client.DesiredLocation != "" {
		maxScore += s.weights.Location
		if locationMatches(client.DesiredLocations, client.DesiredLocation, property.Location) {
			score += s.weights.Location
		}
	}

	if client.MinSize != nil || client.MaxSize != nil {
		maxScore += s.weights.Size
		if withinFloatBounds(property.Size, client.MinSize, client.MaxSize) {
			score += s.weights.Size
		}
	}

	if client.MinBedrooms != nil || client.MaxBedrooms != nil {
		maxScore += s.weights.Bedrooms
		if withinIntBounds(intOrZero(property.Bedrooms), client.MinBedrooms, client.MaxBedrooms) {
			score += s.weights.Bedrooms
		}
	}

	if client.MinBathrooms != nil || client.MaxBathrooms != nil {
		maxScore += s.weights.Bathrooms
		if withinIntBounds(intOrZero(property.Bathrooms), client.MinBathrooms, client.MaxBathrooms) {
			score += s.weights.Bathrooms
		}
	}

	if client.Preferences != nil {
		maxScore += s.weights.Features
		score += s.weights.Features * featureCredit(*client.Preferences, property.Features)
	}

	// Rented and sold listings are half-weighted relative to active ones.
	if property.Status != models.PropertyStatusActive {
		score *= 0.5
	}

	if maxScore <= 0 {
		return 0
	}
	return int(math.Round(100 * score / maxScore))
}

// featureCredit returns the satisfied share of the client's wanted features
// in [0,1]. A preference set with zero wanted flags earns full credit: no
// preference is no penalty.
func featureCredit(prefs, features models.FeatureSet) float64 {
	var wanted, matched int
	have := features.Flags()
	for i, want := range prefs.Flags() {
		if !want {
			continue
		}
		wanted++
		if have[i] {
			matched++
		}
	}
	if wanted == 0 {
		return 1
	}
	return float64(matched) / float64(wanted)
}

// RankPropertiesForClient scores every property against the client and
// returns those with a positive score, best first. Ties keep the input
// ordering.
func (s *Scorer) RankPropertiesForClient(client models.Client, properties []models.Property) []models.PropertyMatch {
	var out []models.PropertyMatch
	for _, p := range properties {
		if score := s.Score(client, p); score > minPropertyScore {
			out = append(out, models.PropertyMatch{Property: p, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// RankClientsForProperty scores the given clients against the property and
// returns buyers scoring above the buyer threshold, best first. Sellers are
// never matched in this direction. Ties keep the input ordering.
func (s *Scorer) RankClientsForProperty(clients []models.Client, property models.Property) []models.BuyerMatch {
	var out []models.BuyerMatch
	for _, c := range clients {
		if c.Category != models.ClientCategoryBuyer {
			continue
		}
		if score := s.Score(c, property); score > minBuyerScore {
			out = append(out, models.BuyerMatch{Client: c, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func withinFloatBounds(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func withinIntBounds(v int, min, max *int) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
