package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "task-marketplace.com/task-marketplace/internal/errors"
	model "task-marketplace.com/task-marketplace/internal/models"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

func (r *LocationRepository) CreateLocation(ctx context.Context, location *model.Location) error {
	location.ID = uuid.NewString()
	location.CreatedAt = time.Now().UTC()

	if err := conn(ctx, r.db).Create(location).Error; err != nil {
		return wrapStorageError("failed to create location", err)
	}
	return nil
}

func (r *LocationRepository) FindByID(ctx context.Context, id string) (*model.Location, error) {
	var location model.Location
	err := conn(ctx, r.db).First(&location, "id = ?", id).Error
	if err != nil {
		return nil, findError(err, apperrors.ErrLocationNotFound, "failed to load location")
	}
	return &location, nil
}
