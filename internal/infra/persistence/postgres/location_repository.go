// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"registry/internal/domain/entity"
	"registry/internal/domain/repository"
	"registry/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// FindActiveLocations retrieves all active locations ordered by name.
func (repo *locationRepository) FindActiveLocations(ctx context.Context) ([]*entity.ExclusiveLocation, error) {
	var locationModels []*model.ExclusiveLocationModel

	if err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&locationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active locations")
	}

	locations := make([]*entity.ExclusiveLocation, 0, len(locationModels))
	for _, locationM := range locationModels {
		locations = append(locations, toLocationDomain(locationM))
	}

	return locations, nil
}

// CountActiveLocations returns the number of active locations.
func (repo *locationRepository) CountActiveLocations(ctx context.Context) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ExclusiveLocationModel{}).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active locations")
	}

	return count, nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM ExclusiveLocationModel to a domain ExclusiveLocation entity.
func toLocationDomain(data *model.ExclusiveLocationModel) *entity.ExclusiveLocation {
	if data == nil {
		return nil
	}

	return &entity.ExclusiveLocation{
		ID:        data.ID,
		Name:      data.Name,
		Place:     data.Place,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}
