package matching

import (
	"testing"

	"estia/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64                         { return &v }
func iptr(v int) *int                                 { return &v }
func tptr(v models.PropertyType) *models.PropertyType { return &v }

func budgetAndTypeClient() models.Client {
	return models.Client{
		ID:                  "c1",
		Category:            models.ClientCategoryBuyer,
		BudgetMin:           fptr(100000),
		BudgetMax:           fptr(200000),
		DesiredPropertyType: tptr(models.PropertyTypeApartment),
	}
}

func activeApartment(id string, price float64) models.Property {
	return models.Property{
		ID:     id,
		Price:  price,
		Type:   models.PropertyTypeApartment,
		Status: models.PropertyStatusActive,
	}
}

func TestScoreBudgetAndType(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	client := budgetAndTypeClient()

	// Both criteria satisfied.
	assert.Equal(t, 100, scorer.Score(client, activeApartment("a", 150000)))

	// Budget missed, type satisfied: 12 of 32 attainable points.
	assert.Equal(t, 38, scorer.Score(client, activeApartment("b", 250000)))

	// Neither satisfied.
	house := activeApartment("c", 250000)
	house.Type = models.PropertyTypeHouse
	assert.Equal(t, 0, scorer.Score(client, house))
}

func TestScoreUnconstrainedClientIsZero(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	client := models.Client{ID: "c1", Category: models.ClientCategoryBuyer}

	assert.Equal(t, 0, scorer.Score(client, activeApartment("a", 150000)))
}

func TestScoreFullProfilePerfectMatch(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	client := models.Client{
		ID:                  "c1",
		Category:            models.ClientCategoryBuyer,
		BudgetMin:           fptr(100000),
		BudgetMax:           fptr(200000),
		DesiredPropertyType: tptr(models.PropertyTypeApartment),
		DesiredLocations:    []string{"Nea Smyrni"},
		MinSize:             fptr(50),
		MaxSize:             fptr(150),
		MinBedrooms:         iptr(1),
		MaxBedrooms:         iptr(3),
		MinBathrooms:        iptr(1),
		MaxBathrooms:        iptr(2),
		Preferences:         &models.FeatureSet{Pool: true, Garden: true},
	}
	property := models.Property{
		ID:        "p1",
		Price:     150000,
		Type:      models.PropertyTypeApartment,
		Location:  "nea  smyrni,",
		Size:      100,
		Bedrooms:  iptr(2),
		Bathrooms: iptr(1),
		Status:    models.PropertyStatusActive,
		Features:  models.FeatureSet{Pool: true, Garden: true, Balcony: true},
	}

	assert.Equal(t, 100, scorer.Score(client, property))
}

func TestScoreNonActiveStatusHalvesScore(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	client := budgetAndTypeClient()

	rented := activeApartment("a", 150000)
	rented.Status = models.PropertyStatusRented
	assert.Equal(t, 50, scorer.Score(client, rented))

	sold := activeApartment("b", 150000)
	sold.Status = models.PropertyStatusSold
	assert.Equal(t, 50, scorer.Score(client, sold))
}

func TestScoreFeaturePartialCredit(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	client := models.Client{
		ID:          "c1",
		Category:    models.ClientCategoryBuyer,
		Preferences: &models.FeatureSet{Pool: true, Garden: true, Elevator: true},
	}
	property := activeApartment("a", 150000)
	property.Features = models.FeatureSet{Pool: true, Garden: true}

	// 2 of 3 wanted features present: 10 of 15 attainable points.
	assert.Equal(t, 67, scorer.Score(client, property))
}

func TestScoreEmptyPreferenceSetIsFullCredit(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	client := models.Client{
		ID:          "c1",
		Category:    models.ClientCategoryBuyer,
		Preferences: &models.FeatureSet{},
	}

	// A present but empty preference set wants nothing, so it is satisfied
	// by every property.
	assert.Equal(t, 100, scorer.Score(client, activeApartment("a", 150000)))
}

func TestScoreMissingRoomCountsAsZero(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	property := activeApartment("a", 150000) // Bedrooms nil

	minClient := models.Client{ID: "c1", MinBedrooms: iptr(2)}
	assert.Equal(t, 0, scorer.Score(minClient, property))

	maxClient := models.Client{ID: "c1", MaxBedrooms: iptr(2)}
	assert.Equal(t, 100, scorer.Score(maxClient, property))
}

func TestScoreLocationNormalization(t *testing.T) {
	scorer := NewScorer(DefaultWeights())

	client := models.Client{ID: "c1", DesiredLocation: "Αθήνα, "}
	property := activeApartment("a", 150000)
	property.Location = "αθήνα"
	assert.Equal(t, 100, scorer.Score(client, property))

	// Missing accent is a different location.
	client.DesiredLocation = "Αθηνα"
	assert.Equal(t, 0, scorer.Score(client, property))
}

func TestRankPropertiesForClient(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	client := budgetAndTypeClient()

	inBudgetHouse := activeApartment("p2", 150000)
	inBudgetHouse.Type = models.PropertyTypeHouse
	noMatch := activeApartment("p4", 500000)
	noMatch.Type = models.PropertyTypePlot

	matches := scorer.RankPropertiesForClient(client, []models.Property{
		inBudgetHouse,                 // 63
		activeApartment("p1", 150000), // 100
		activeApartment("p3", 250000), // 38
		noMatch,                       // 0, dropped
	})

	require.Len(t, matches, 3)
	assert.Equal(t, "p1", matches[0].Property.ID)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, "p2", matches[1].Property.ID)
	assert.Equal(t, 63, matches[1].Score)
	assert.Equal(t, "p3", matches[2].Property.ID)
	assert.Equal(t, 38, matches[2].Score)
}

func TestRankPropertiesForClientTiesKeepInputOrder(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	client := models.Client{ID: "c1", BudgetMax: fptr(200000)}

	matches := scorer.RankPropertiesForClient(client, []models.Property{
		activeApartment("p1", 150000),
		activeApartment("p2", 120000),
		activeApartment("p3", 180000),
	})

	require.Len(t, matches, 3)
	assert.Equal(t, "p1", matches[0].Property.ID)
	assert.Equal(t, "p2", matches[1].Property.ID)
	assert.Equal(t, "p3", matches[2].Property.ID)
}

func TestRankClientsForProperty(t *testing.T) {
	scorer := NewScorer(DefaultWeights())
	property := activeApartment("p1", 150000)
	property.Features = models.FeatureSet{Pool: true}

	strongBuyer := budgetAndTypeClient() // 100
	seller := budgetAndTypeClient()      // filtered out regardless of score
	seller.ID = "c2"
	seller.Category = models.ClientCategorySeller
	weakBuyer := models.Client{ // 25, below the buyer threshold
		ID:          "c3",
		Category:    models.ClientCategoryBuyer,
		Preferences: &models.FeatureSet{Pool: true, Garden: true, Elevator: true, Parking: true},
	}
	typeOnlyBuyer := models.Client{ // 38, above the buyer threshold
		ID:                  "c4",
		Category:            models.ClientCategoryBuyer,
		BudgetMax:           fptr(50000),
		DesiredPropertyType: tptr(models.PropertyTypeApartment),
	}

	matches := scorer.RankClientsForProperty(
		[]models.Client{weakBuyer, strongBuyer, seller, typeOnlyBuyer}, property)

	require.Len(t, matches, 2)
	assert.Equal(t, "c1", matches[0].Client.ID)
	assert.Equal(t, 100, matches[0].Score)
	assert.Equal(t, "c4", matches[1].Client.ID)
	assert.Equal(t, 38, matches[1].Score)
}
