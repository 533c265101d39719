package location

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"Stockify-Backend/internal/utils/storage"
	"Stockify-Backend/pkg/audit"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	LocationService interface {
		CreateLocation(ctx context.Context, req domain.CreateLocationRequest, userID string) (domain.LocationResponse, error)
		UpdateLocation(ctx context.Context, id string, req domain.UpdateLocationRequest, userID string) error
		DeleteLocation(ctx context.Context, id string, userID string) error
		GetLocations(ctx context.Context, nameFilter string) ([]domain.LocationResponse, error)
		GetLocationByID(ctx context.Context, id string) (domain.LocationResponse, error)
		GetLocationOptions(ctx context.Context) ([]domain.SelectOption, error)
	}

	locationService struct {
		locationRepository LocationRepository
		auditService       audit.AuditService
		s3                 storage.AwsS3
	}
)

func NewLocationService(locationRepository LocationRepository, auditService audit.AuditService, s3 storage.AwsS3) LocationService {
	return &locationService{
		locationRepository: locationRepository,
		auditService:       auditService,
		s3:                 s3,
	}
}

func (s *locationService) CreateLocation(ctx context.Context, req domain.CreateLocationRequest, userID string) (domain.LocationResponse, error) {
	location := &entities.Location{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
	}

	if req.Image != nil {
		fileName := fmt.Sprintf("location-%s", location.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.Image, "locations", storage.AllowImage...)
		if err != nil {
			return domain.LocationResponse{}, err
		}
		location.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.locationRepository.CreateLocation(ctx, location); err != nil {
		return domain.LocationResponse{}, err
	}

	s.auditService.Record(ctx, "location", location.ID.String(), entities.AuditActionCreate, userID, location.Name)

	return toLocationResponse(location), nil
}

func (s *locationService) UpdateLocation(ctx context.Context, id string, req domain.UpdateLocationRequest, userID string) error {
	location, err := s.locationRepository.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLocationNotFound
		}
		return err
	}

	if req.Name != "" {
		location.Name = req.Name
	}
	if req.Description != "" {
		location.Description = req.Description
	}

	if req.Image != nil {
		if location.ImageURL != "" {
			existingKey := s.s3.GetObjectKeyFromLink(location.ImageURL)
			if existingKey != "" {
				_ = s.s3.DeleteFile(existingKey)
			}
		}
		fileName := fmt.Sprintf("location-%s", location.ID.String())
		objectKey, err := s.s3.UploadFile(fileName, req.Image, "locations", storage.AllowImage...)
		if err != nil {
			return err
		}
		location.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.locationRepository.UpdateLocation(ctx, location); err != nil {
		return err
	}

	s.auditService.Record(ctx, "location", location.ID.String(), entities.AuditActionUpdate, userID, location.Name)
	return nil
}

func (s *locationService) DeleteLocation(ctx context.Context, id string, userID string) error {
	location, err := s.locationRepository.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLocationNotFound
		}
		return err
	}

	if location.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(location.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	if err := s.locationRepository.DeleteLocation(ctx, id); err != nil {
		return err
	}

	s.auditService.Record(ctx, "location", id, entities.AuditActionDelete, userID, location.Name)
	return nil
}

func (s *locationService) GetLocations(ctx context.Context, nameFilter string) ([]domain.LocationResponse, error) {
	locations, err := s.locationRepository.GetLocations(ctx, nameFilter)
	if err != nil {
		return nil, err
	}

	var response []domain.LocationResponse
	for _, location := range locations {
		response = append(response, toLocationResponse(location))
	}
	return response, nil
}

func (s *locationService) GetLocationByID(ctx context.Context, id string) (domain.LocationResponse, error) {
	location, err := s.locationRepository.GetLocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LocationResponse{}, domain.ErrLocationNotFound
		}
		return domain.LocationResponse{}, err
	}
	return toLocationResponse(location), nil
}

func (s *locationService) GetLocationOptions(ctx context.Context) ([]domain.SelectOption, error) {
	locations, err := s.locationRepository.GetLocationOptions(ctx)
	if err != nil {
		return nil, err
	}

	options := make([]domain.SelectOption, 0, len(locations))
	for _, location := range locations {
		options = append(options, domain.SelectOption{
			Label: location.Name,
			Value: location.ID.String(),
		})
	}
	return options, nil
}

func toLocationResponse(location *entities.Location) domain.LocationResponse {
	return domain.LocationResponse{
		ID:          location.ID.String(),
		Name:        location.Name,
		Description: location.Description,
		ImageURL:    location.ImageURL,
		CreatedAt:   location.CreatedAt,
		UpdatedAt:   location.UpdatedAt,
	}
}
