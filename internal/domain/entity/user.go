// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // The user's primary contact email, used as a login identifier.
	Profile   *Profile  // A pointer to the user's member profile. Created together with the user.
	Roles     Roles     // The roles granted to this user, carried into the access token.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}

// Profile holds the member-facing presentation data for a user.
// It is the only user data a public verification result may draw from.
type Profile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	FullName  string    // The member's display name, shown on the card and verification page.
	AvatarURL string    // URL of the member's avatar image in object storage.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}
