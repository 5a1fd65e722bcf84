package matching

import (
	"fmt"
	"sync/atomic"

	clientRepo "estia/database/repository/client"
	propertyRepo "estia/database/repository/property"
	"estia/models"
)

// MatchService is the match surface consumed by the handlers: ranked lists
// with excluded pairs removed and "new" badges annotated, plus the
// visibility bookkeeping operations.
type MatchService interface {
	// MatchesForClient returns the ranked matching properties for a client.
	MatchesForClient(clientID string) ([]models.PropertyMatch, error)
	// BuyersForProperty returns the ranked matching buyers for a property.
	BuyersForProperty(propertyID string) ([]models.BuyerMatch, error)
	// MarkViewed records that a match has been shown to the user.
	MarkViewed(propertyID, clientID string)
	// Exclude permanently hides a match from ranked results.
	Exclude(clientID, propertyID string)
	// InvalidateCatalog must be called after any client or property write.
	InvalidateCatalog()
}

// DefaultMatchService implements MatchService on top of the pure scorer and
// the visibility tracker.
type DefaultMatchService struct {
	ClientRepo   clientRepo.ClientRepository
	PropertyRepo propertyRepo.PropertyRepository
	Scorer       *Scorer
	Tracker      *VisibilityTracker

	catalogVersion atomic.Uint64
	propertyCache  propertyRankCache
	buyerCache     buyerRankCache
}

type scoredProperty struct {
	property models.Property
	score    int
}

type scoredClient struct {
	client models.Client
	score  int
}

// InvalidateCatalog bumps the catalog version, stranding memoized rankings.
func (s *DefaultMatchService) InvalidateCatalog() {
	s.catalogVersion.Add(1)
}

// MarkViewed records that a match has been shown to the user.
func (s *DefaultMatchService) MarkViewed(propertyID, clientID string) {
	s.Tracker.MarkViewed(propertyID, clientID)
}

// Exclude permanently hides a match from ranked results.
func (s *DefaultMatchService) Exclude(clientID, propertyID string) {
	s.Tracker.Exclude(clientID, propertyID)
}

// MatchesForClient returns the client's matching properties, best first,
// with excluded pairs removed. IsNew is annotated per call rather than
// cached so that marking a match viewed takes effect immediately.
func (s *DefaultMatchService) MatchesForClient(clientID string) ([]models.PropertyMatch, error) {
	client, err := s.ClientRepo.GetByID(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load client: %w", err)
	}

	key := cacheKey{
		subjectID:        clientID,
		catalogVersion:   s.catalogVersion.Load(),
		exclusionVersion: s.Tracker.ExclusionVersion(),
	}

	scored, ok := s.propertyCache.get(key)
	if !ok {
		properties, err := s.PropertyRepo.GetAllByAgent(client.AgentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load properties: %w", err)
		}
		for _, m := range s.Scorer.RankPropertiesForClient(*client, properties) {
			if s.Tracker.IsExcluded(client.ID, m.Property.ID) {
				continue
			}
			scored = append(scored, scoredProperty{property: m.Property, score: m.Score})
		}
		s.propertyCache.put(key, scored)
	}

	matches := make([]models.PropertyMatch, 0, len(scored))
	for _, sp := range scored {
		matches = append(matches, models.PropertyMatch{
			Property: sp.property,
			Score:    sp.score,
			IsNew:    !s.Tracker.IsViewed(sp.property.ID, client.ID),
		})
	}
	return matches, nil
}

// BuyersForProperty returns the property's matching buyers, best first, with
// excluded pairs removed.
func (s *DefaultMatchService) BuyersForProperty(propertyID string) ([]models.BuyerMatch, error) {
	property, err := s.PropertyRepo.GetByID(propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	key := cacheKey{
		subjectID:        propertyID,
		catalogVersion:   s.catalogVersion.Load(),
		exclusionVersion: s.Tracker.ExclusionVersion(),
	}

	scored, ok := s.buyerCache.get(key)
	if !ok {
		buyers, err := s.ClientRepo.GetBuyersByAgent(property.AgentID)
		if err != nil {
			return nil, fmt.Errorf("failed to load buyers: %w", err)
		}
		for _, m := range s.Scorer.RankClientsForProperty(buyers, *property) {
			if s.Tracker.IsExcluded(m.Client.ID, property.ID) {
				continue
			}
			scored = append(scored, scoredClient{client: m.Client, score: m.Score})
		}
		s.buyerCache.put(key, scored)
	}

	matches := make([]models.BuyerMatch, 0, len(scored))
	for _, sc := range scored {
		matches = append(matches, models.BuyerMatch{
			Client: sc.client,
			Score:  sc.score,
			IsNew:  !s.Tracker.IsViewed(property.ID, sc.client.ID),
		})
	}
	return matches, nil
}
