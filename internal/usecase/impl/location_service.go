package impl

import (
	"context"
	"log/slog"
	"sort"

	"registry/internal/domain/repository"
	"registry/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(
	locationRepo repository.LocationRepository,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// ListLocations lists the active partner venues. When the caller supplies a
// position, each entry carries the geodesic distance in meters and the list is
// ordered nearest-first; otherwise the repository's name ordering is kept and
// distances are negative.
func (srv *locationService) ListLocations(ctx context.Context, input *usecase.ListLocationsInput) ([]*usecase.LocationWithDistance, error) {
	locations, err := srv.locationRepo.FindActiveLocations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active locations")
	}

	hasPosition := input != nil && input.Latitude != nil && input.Longitude != nil

	var origin orb.Point
	if hasPosition {
		origin = orb.Point{*input.Longitude, *input.Latitude}
	}

	results := make([]*usecase.LocationWithDistance, 0, len(locations))
	for _, location := range locations {
		distance := -1.0
		if hasPosition {
			distance = geo.Distance(origin, orb.Point{location.Longitude, location.Latitude})
		}
		results = append(results, &usecase.LocationWithDistance{
			Location: location,
			Distance: distance,
		})
	}

	if hasPosition {
		sort.Slice(results, func(i, j int) bool {
			return results[i].Distance < results[j].Distance
		})
	}

	return results, nil
}
