// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"registry/internal/domain/entity"
)

// LocationRepository defines read access to the exclusive-locations reference data.
type LocationRepository interface {
	// FindActiveLocations retrieves all active locations ordered by name.
	FindActiveLocations(ctx context.Context) ([]*entity.ExclusiveLocation, error)

	// CountActiveLocations returns the number of active locations.
	CountActiveLocations(ctx context.Context) (int64, error)
}
