package location

import (
	"Stockify-Backend/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	LocationRepository interface {
		CreateLocation(ctx context.Context, location *entities.Location) error
		GetLocationByID(ctx context.Context, id string) (*entities.Location, error)
		GetLocations(ctx context.Context, nameFilter string) ([]*entities.Location, error)
		GetLocationOptions(ctx context.Context) ([]*entities.Location, error)
		UpdateLocation(ctx context.Context, location *entities.Location) error
		DeleteLocation(ctx context.Context, id string) error
	}

	locationRepository struct {
		db *gorm.DB
	}
)

func NewLocationRepository(db *gorm.DB) LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) CreateLocation(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

func (r *locationRepository) GetLocationByID(ctx context.Context, id string) (*entities.Location, error) {
	var location entities.Location
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *locationRepository) GetLocations(ctx context.Context, nameFilter string) ([]*entities.Location, error) {
	var locations []*entities.Location
	query := r.db.WithContext(ctx).Order("name asc")
	if nameFilter != "" {
		// case-insensitive match
		query = query.Where("lower(name) LIKE ?", "%"+strings.ToLower(nameFilter)+"%")
	}
	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) GetLocationOptions(ctx context.Context) ([]*entities.Location, error) {
	var locations []*entities.Location
	if err := r.db.WithContext(ctx).
		Select("id", "name").
		Order("name asc").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *locationRepository) UpdateLocation(ctx context.Context, location *entities.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

func (r *locationRepository) DeleteLocation(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Location{}).Error
}
