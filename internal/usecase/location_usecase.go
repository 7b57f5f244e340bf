package usecase

import (
	"context"

	"registry/internal/domain/entity"
)

// LocationWithDistance pairs a location with its distance from the caller's
// position, in meters. Distance is negative when no position was supplied.
type LocationWithDistance struct {
	Location *entity.ExclusiveLocation `json:"location"`
	Distance float64                   `json:"distance_meters"`
}

// ListLocationsInput optionally carries the caller's position. When both
// coordinates are present, results are ordered nearest-first.
type ListLocationsInput struct {
	Latitude  *float64
	Longitude *float64
}

// LocationUsecase lists the partner venues available to members.
type LocationUsecase interface {
	ListLocations(ctx context.Context, input *ListLocationsInput) ([]*LocationWithDistance, error)
}
