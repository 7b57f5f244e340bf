package service

import (
	"context"
)

// MembershipEvent is emitted when a membership changes state, e.g. when a card
// is issued after payment confirmation. Consumed by downstream systems (CRM,
// analytics) over Pub/Sub; contains no email or payment identifiers.
type MembershipEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	EventType  string `json:"event_type"`           // e.g. "membership.activated"
	UserID     string `json:"user_id"`
	MemberID   string `json:"member_id"`
	OccurredAt string `json:"occurred_at"` // RFC3339
}

// MembershipActivated is the event type published after card issuance.
const MembershipActivated = "membership.activated"

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMembershipEvent publishes a membership lifecycle event for async processing
	PublishMembershipEvent(ctx context.Context, event *MembershipEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
