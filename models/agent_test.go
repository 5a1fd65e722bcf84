package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestAgentBSONRoundTrip(t *testing.T) {
	agent := Agent{
		ID:    "a1",
		Name:  "Maria",
		Email: "maria@example.com",
		Subscription: Subscription{
			StripeCustomerID:     "cus_123",
			StripeSubscriptionID: "sub_456",
			Status:               "active",
			CurrentPeriodEnd:     time.UnixMilli(1756722000000).UTC(),
		},
	}

	raw, err := bson.Marshal(agent)
	require.NoError(t, err)

	var decoded Agent
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, "cus_123", decoded.Subscription.StripeCustomerID)
	assert.Equal(t, "sub_456", decoded.Subscription.StripeSubscriptionID)
	assert.Equal(t, "active", decoded.Subscription.Status)
	assert.Equal(t, agent.Subscription.CurrentPeriodEnd.Unix(), decoded.Subscription.CurrentPeriodEnd.Unix())
}

func TestHasActiveSubscription(t *testing.T) {
	for status, want := range map[string]bool{
		"active":   true,
		"trialing": true,
		"past_due": false,
		"canceled": false,
		"":         false,
	} {
		a := Agent{Subscription: Subscription{Status: status}}
		assert.Equal(t, want, a.HasActiveSubscription(), "status %q", status)
	}
}
