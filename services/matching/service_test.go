package matching

import (
	"fmt"
	"testing"

	"estia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeClientRepo struct {
	clients    []models.Client
	buyerCalls int
}

func (r *fakeClientRepo) GetByID(id string) (*models.Client, error) {
	for i := range r.clients {
		if r.clients[i].ID == id {
			c := r.clients[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("client not found")
}

func (r *fakeClientRepo) GetAllByAgent(agentID string) ([]models.Client, error) {
	var out []models.Client
	for _, c := range r.clients {
		if c.AgentID == agentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) GetBuyersByAgent(agentID string) ([]models.Client, error) {
	r.buyerCalls++
	var out []models.Client
	for _, c := range r.clients {
		if c.AgentID == agentID && c.Category == models.ClientCategoryBuyer {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeClientRepo) Create(client *models.Client) error            { return nil }
func (r *fakeClientRepo) Update(client *models.Client) error            { return nil }
func (r *fakeClientRepo) Delete(id string) error                        { return nil }
func (r *fakeClientRepo) UpdateSetDocument(id string, doc bson.M) error { return nil }

type fakePropertyRepo struct {
	properties []models.Property
	listCalls  int
}

func (r *fakePropertyRepo) GetByID(id string) (*models.Property, error) {
	for i := range r.properties {
		if r.properties[i].ID == id {
			p := r.properties[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("property not found")
}

func (r *fakePropertyRepo) GetAllByAgent(agentID string) ([]models.Property, error) {
	r.listCalls++
	var out []models.Property
	for _, p := range r.properties {
		if p.AgentID == agentID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePropertyRepo) Create(property *models.Property) error           { return nil }
func (r *fakePropertyRepo) Update(property *models.Property) error           { return nil }
func (r *fakePropertyRepo) Delete(id string) error                           { return nil }
func (r *fakePropertyRepo) UpdateSetDocument(id string, doc bson.M) error    { return nil }
func (r *fakePropertyRepo) AddPhoto(id string, p models.PropertyPhoto) error { return nil }
func (r *fakePropertyRepo) RemovePhoto(id string, photoID string) error      { return nil }

func newTestMatchService() (*DefaultMatchService, *fakeClientRepo, *fakePropertyRepo) {
	buyer := budgetAndTypeClient()
	buyer.AgentID = "agent-1"

	seller := budgetAndTypeClient()
	seller.ID = "c2"
	seller.AgentID = "agent-1"
	seller.Category = models.ClientCategorySeller

	p1 := activeApartment("p1", 150000) // 100 against the buyer
	p1.AgentID = "agent-1"
	p2 := activeApartment("p2", 150000) // 63: budget only
	p2.AgentID = "agent-1"
	p2.Type = models.PropertyTypeHouse
	p3 := activeApartment("p3", 250000) // 38: type only
	p3.AgentID = "agent-1"

	clientRepo := &fakeClientRepo{clients: []models.Client{buyer, seller}}
	propertyRepo := &fakePropertyRepo{properties: []models.Property{p1, p2, p3}}

	svc := &DefaultMatchService{
		ClientRepo:   clientRepo,
		PropertyRepo: propertyRepo,
		Scorer:       NewScorer(DefaultWeights()),
		Tracker:      newMemoryTracker(),
	}
	return svc, clientRepo, propertyRepo
}

func TestMatchesForClientRanksAndAnnotates(t *testing.T) {
	svc, _, _ := newTestMatchService()

	matches, err := svc.MatchesForClient("c1")
	require.NoError(t, err)
	require.Len(t, matches, 3)

	assert.Equal(t, "p1", matches[0].Property.ID)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, "p2", matches[1].Property.ID)
	assert.Equal(t, "p3", matches[2].Property.ID)
	for _, m := range matches {
		assert.True(t, m.IsNew)
	}
}

func TestMatchesForClientUnknownClient(t *testing.T) {
	svc, _, _ := newTestMatchService()

	_, err := svc.MatchesForClient("nope")
	assert.Error(t, err)
}

func TestMarkViewedClearsNewBadgeImmediately(t *testing.T) {
	svc, _, _ := newTestMatchService()

	_, err := svc.MatchesForClient("c1")
	require.NoError(t, err)

	svc.MarkViewed("p1", "c1")

	// The ranking cache is still warm; only the badge changes.
	matches, err := svc.MatchesForClient("c1")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.False(t, matches[0].IsNew)
	assert.True(t, matches[1].IsNew)
	assert.True(t, matches[2].IsNew)
}

func TestExcludeRemovesMatchFromBothDirections(t *testing.T) {
	svc, _, _ := newTestMatchService()

	svc.Exclude("c1", "p2")

	matches, err := svc.MatchesForClient("c1")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "p1", matches[0].Property.ID)
	assert.Equal(t, "p3", matches[1].Property.ID)

	svc.Exclude("c1", "p1")
	buyers, err := svc.BuyersForProperty("p1")
	require.NoError(t, err)
	assert.Empty(t, buyers)
}

func TestMatchesForClientMemoization(t *testing.T) {
	svc, _, propertyRepo := newTestMatchService()

	_, err := svc.MatchesForClient("c1")
	require.NoError(t, err)
	_, err = svc.MatchesForClient("c1")
	require.NoError(t, err)
	assert.Equal(t, 1, propertyRepo.listCalls)

	// A catalog write strands the memoized ranking.
	svc.InvalidateCatalog()
	_, err = svc.MatchesForClient("c1")
	require.NoError(t, err)
	assert.Equal(t, 2, propertyRepo.listCalls)

	// So does a new exclusion.
	svc.Exclude("c1", "p3")
	_, err = svc.MatchesForClient("c1")
	require.NoError(t, err)
	assert.Equal(t, 3, propertyRepo.listCalls)
}

func TestBuyersForProperty(t *testing.T) {
	svc, clientRepo, _ := newTestMatchService()

	buyers, err := svc.BuyersForProperty("p1")
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	assert.Equal(t, "c1", buyers[0].Client.ID)
	assert.Equal(t, 100, buyers[0].Score)
	assert.True(t, buyers[0].IsNew)

	// Viewed state is shared with the client-side direction.
	svc.MarkViewed("p1", "c1")
	buyers, err = svc.BuyersForProperty("p1")
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	assert.False(t, buyers[0].IsNew)

	assert.Equal(t, 1, clientRepo.buyerCalls)
}

func TestBuyersForPropertyBelowThresholdDropped(t *testing.T) {
	svc, clientRepo, _ := newTestMatchService()

	// Against p3 the buyer earns type credit only, still above threshold.
	buyers, err := svc.BuyersForProperty("p3")
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	assert.Equal(t, 38, buyers[0].Score)

	// A weak buyer stays out of the list.
	clientRepo.clients = append(clientRepo.clients, models.Client{
		ID:          "c3",
		AgentID:     "agent-1",
		Category:    models.ClientCategoryBuyer,
		Preferences: &models.FeatureSet{Pool: true, Garden: true, Elevator: true, Parking: true},
	})
	svc.InvalidateCatalog()

	buyers, err = svc.BuyersForProperty("p1")
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	assert.Equal(t, "c1", buyers[0].Client.ID)
}
