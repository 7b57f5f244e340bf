// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider names accepted by the pubsub.events configuration.
const (
	// PubSubProviderLocal publishes membership events to a local HTTP endpoint,
	// mimicking the push format for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes membership events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
