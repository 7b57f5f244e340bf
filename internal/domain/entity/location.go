// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExclusiveLocation is a partner venue where membership grants access.
// Read-only reference data shown to members; not part of the verification core.
type ExclusiveLocation struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Place     string    `json:"place"` // Human-readable city/neighbourhood label.
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}
