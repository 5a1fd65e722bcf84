package agent

import (
	"fmt"
	"time"

	"estia/config"
	"estia/models"
	"estia/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	"github.com/stripe/stripe-go/v76/subscription"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SubscriptionIntent is returned when a subscription is started; the client
// completes the initial payment with the client secret.
type SubscriptionIntent struct {
	SubscriptionID string `json:"subscriptionId"`
	Status         string `json:"status"`
	ClientSecret   string `json:"clientSecret,omitempty"`
}

// StartSubscription creates a Stripe customer (if needed) and an incomplete
// subscription on the configured price. The agent document is updated with
// the billing identifiers; the subscription becomes active once the client
// confirms the initial payment.
func (s *DefaultAgentService) StartSubscription(agentID string) (*SubscriptionIntent, error) {
	logger := utils.GetLogger()

	agent, err := s.Repo.GetByID(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve agent: %w", err)
	}
	if agent.HasActiveSubscription() {
		return nil, fmt.Errorf("agent already has an active subscription")
	}
	if config.AppConfig.StripePriceID == "" {
		return nil, fmt.Errorf("stripe price is not configured")
	}

	customerID := agent.Subscription.StripeCustomerID
	if customerID == "" {
		cust, err := customer.New(&stripe.CustomerParams{
			Email: stripe.String(agent.Email),
			Name:  stripe.String(agent.Name),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create stripe customer: %w", err)
		}
		customerID = cust.ID
	}

	subParams := &stripe.SubscriptionParams{
		Customer: stripe.String(customerID),
		Items: []*stripe.SubscriptionItemsParams{
			{Price: stripe.String(config.AppConfig.StripePriceID)},
		},
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	subParams.AddExpand("latest_invoice.payment_intent")

	sub, err := subscription.New(subParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create stripe subscription: %w", err)
	}

	update := bson.M{
		"subscription": models.Subscription{
			StripeCustomerID:     customerID,
			StripeSubscriptionID: sub.ID,
			Status:               string(sub.Status),
			CurrentPeriodEnd:     time.Unix(sub.CurrentPeriodEnd, 0),
		},
		"updatedAt": time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(agentID, update); err != nil {
		return nil, fmt.Errorf("failed to store subscription state: %w", err)
	}

	logger.Info("Subscription started",
		zap.String("agentID", agentID),
		zap.String("subscriptionID", sub.ID),
		zap.String("status", string(sub.Status)))

	intent := &SubscriptionIntent{
		SubscriptionID: sub.ID,
		Status:         string(sub.Status),
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		intent.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return intent, nil
}

// RefreshSubscription fetches the current subscription state from Stripe and
// mirrors it onto the agent document.
func (s *DefaultAgentService) RefreshSubscription(agentID string) (*models.Subscription, error) {
	agent, err := s.Repo.GetByID(agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve agent: %w", err)
	}
	if agent.Subscription.StripeSubscriptionID == "" {
		return &agent.Subscription, nil
	}

	sub, err := subscription.Get(agent.Subscription.StripeSubscriptionID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stripe subscription: %w", err)
	}

	refreshed := models.Subscription{
		StripeCustomerID:     agent.Subscription.StripeCustomerID,
		StripeSubscriptionID: sub.ID,
		Status:               string(sub.Status),
		CurrentPeriodEnd:     time.Unix(sub.CurrentPeriodEnd, 0),
	}
	update := bson.M{
		"subscription": refreshed,
		"updatedAt":    time.Now(),
	}
	if err := s.Repo.UpdateSetDocument(agentID, update); err != nil {
		return nil, fmt.Errorf("failed to store subscription state: %w", err)
	}
	return &refreshed, nil
}
