package services

import (
	"context"

	model "task-marketplace.com/task-marketplace/internal/models"
)

type LocationService struct {
	locations LocationStore
}

func NewLocationService(locations LocationStore) *LocationService {
	return &LocationService{locations: locations}
}

func (s *LocationService) CreateLocation(ctx context.Context, userID, address, city, postalCode string) (*model.Location, error) {
	location := &model.Location{
		UserID:     userID,
		Address:    address,
		City:       city,
		PostalCode: postalCode,
	}
	if err := s.locations.CreateLocation(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (s *LocationService) GetLocation(ctx context.Context, id string) (*model.Location, error) {
	return s.locations.FindByID(ctx, id)
}
