package models

import "time"

// Subscription holds the agent's Stripe billing state. Status mirrors the
// Stripe subscription status string ("active", "trialing", "past_due", ...).
type Subscription struct {
	StripeCustomerID     string    `bson:"stripeCustomerId,omitempty" json:"stripeCustomerId,omitempty"`
	StripeSubscriptionID string    `bson:"stripeSubscriptionId,omitempty" json:"stripeSubscriptionId,omitempty"`
	Status               string    `bson:"status,omitempty" json:"status,omitempty"`
	CurrentPeriodEnd     time.Time `bson:"currentPeriodEnd,omitempty" json:"currentPeriodEnd,omitempty"`
}

// Agent is a CRM user account.
type Agent struct {
	ID           string       `bson:"id" json:"id"`
	Name         string       `bson:"name" json:"name"`
	Email        string       `bson:"email" json:"email"`
	Phone        string       `bson:"phone,omitempty" json:"phone,omitempty"`
	Password     string       `bson:"-" json:"password,omitempty"`
	PasswordHash string       `bson:"passwordHash" json:"-"`
	TokenHash    string       `bson:"tokenHash,omitempty" json:"-"`
	Subscription Subscription `bson:"subscription,omitempty" json:"subscription,omitempty"`
	CreatedAt    time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// HasActiveSubscription reports whether the agent may use gated features.
func (a Agent) HasActiveSubscription() bool {
	return a.Subscription.Status == "active" || a.Subscription.Status == "trialing"
}
