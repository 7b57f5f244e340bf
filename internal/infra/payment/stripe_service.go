// Package payment implements the payment collaborator on top of Stripe.
package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"registry/config"
	"registry/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
)

// Metadata key linking a Stripe object back to our user.
const metadataUserIDKey = "user_id"

// stripeService implements service.PaymentService using the Stripe SDK.
type stripeService struct {
	client        *client.API
	webhookSecret string
	priceID       string
	successURL    string
	cancelURL     string
	portalReturn  string
	logger        *slog.Logger
}

// NewStripeService creates a new Stripe-backed PaymentService.
func NewStripeService(cfg *config.Config, logger *slog.Logger) (service.PaymentService, error) {
	if cfg.Stripe == nil || cfg.Stripe.SecretKey == "" {
		return nil, errors.New("stripe secret key must be provided")
	}

	sc := &client.API{}
	sc.Init(cfg.Stripe.SecretKey, nil)

	return &stripeService{
		client:        sc,
		webhookSecret: cfg.Stripe.WebhookSecret,
		priceID:       cfg.Stripe.PriceID,
		successURL:    cfg.Stripe.SuccessURL,
		cancelURL:     cfg.Stripe.CancelURL,
		portalReturn:  cfg.Stripe.PortalReturn,
		logger:        logger,
	}, nil
}

// CreateCheckoutSession starts a subscription checkout for the given user and
// returns the hosted checkout URL. The user ID travels as the session's client
// reference so the completion webhook can be tied back to the account.
func (s *stripeService) CreateCheckoutSession(ctx context.Context, userID string, email string) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.successURL),
		CancelURL:         stripe.String(s.cancelURL),
		ClientReferenceID: stripe.String(userID),
		CustomerEmail:     stripe.String(email),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: map[string]string{
				metadataUserIDKey: userID,
			},
		},
		Params: stripe.Params{
			Context: ctx,
		},
	}

	session, err := s.client.CheckoutSessions.New(params)
	if err != nil {
		s.logStripeError("CreateCheckoutSession", err)

		return "", errors.Wrap(err, "stripe: failed to create checkout session")
	}

	s.logger.Info("Stripe checkout session created",
		slog.String("session_id", session.ID),
		slog.String("user_id", userID),
	)

	return session.URL, nil
}

// CreatePortalSession opens a billing portal session for an existing Stripe
// customer and returns the portal URL.
func (s *stripeService) CreatePortalSession(ctx context.Context, customerID string) (string, error) {
	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(customerID),
		ReturnURL: stripe.String(s.portalReturn),
		Params: stripe.Params{
			Context: ctx,
		},
	}

	session, err := s.client.BillingPortalSessions.New(params)
	if err != nil {
		s.logStripeError("CreatePortalSession", err)

		return "", errors.Wrap(err, "stripe: failed to create portal session")
	}

	return session.URL, nil
}

// VerifyWebhook checks the webhook signature and translates the raw Stripe
// event into a CheckoutEvent. Event types other than
// checkout.session.completed are reported as ignored so the caller can ack
// them without acting.
func (s *stripeService) VerifyWebhook(payload []byte, signature string) (*service.CheckoutEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, s.webhookSecret)
	if err != nil {
		return nil, errors.Wrap(err, "stripe: webhook signature verification failed")
	}

	if event.Type != stripe.EventType(service.CheckoutEventCompleted) {
		s.logger.Debug("Ignoring Stripe webhook event",
			slog.String("event_type", string(event.Type)),
		)

		return &service.CheckoutEvent{Type: service.CheckoutEventIgnored}, nil
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, errors.Wrap(err, "stripe: failed to parse checkout session")
	}

	if session.ClientReferenceID == "" {
		return nil, errors.New("stripe: checkout session missing client reference ID")
	}

	checkoutEvent := &service.CheckoutEvent{
		Type:   service.CheckoutEventCompleted,
		UserID: session.ClientReferenceID,
	}
	if session.Customer != nil {
		checkoutEvent.CustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		checkoutEvent.SubscriptionID = session.Subscription.ID

		// The session payload carries only the subscription ID, so fetch the
		// subscription to learn when the current billing period ends.
		sub, err := s.client.Subscriptions.Get(session.Subscription.ID, &stripe.SubscriptionParams{})
		if err != nil {
			s.logStripeError("GetSubscription", err)

			return nil, errors.Wrap(err, "stripe: failed to fetch subscription")
		}
		checkoutEvent.CurrentPeriodEnd = time.Unix(sub.CurrentPeriodEnd, 0).UTC()
	}

	s.logger.Info("Stripe checkout completed",
		slog.String("user_id", checkoutEvent.UserID),
		slog.String("subscription_id", checkoutEvent.SubscriptionID),
	)

	return checkoutEvent, nil
}

// logStripeError logs the structured details of a Stripe API error.
func (s *stripeService) logStripeError(operation string, err error) {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		s.logger.Error("Stripe API error",
			slog.String("operation", operation),
			slog.String("type", string(stripeErr.Type)),
			slog.String("code", string(stripeErr.Code)),
			slog.String("message", stripeErr.Msg),
			slog.String("request_id", stripeErr.RequestID),
			slog.Int("status_code", stripeErr.HTTPStatusCode),
		)
	} else {
		s.logger.Error("Stripe operation failed",
			slog.String("operation", operation),
			slog.Any("error", err),
		)
	}
}
