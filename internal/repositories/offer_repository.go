package repository

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"task-marketplace.com/task-marketplace/internal/constants"
	apperrors "task-marketplace.com/task-marketplace/internal/errors"
	model "task-marketplace.com/task-marketplace/internal/models"
)

type OfferRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) *OfferRepository {
	return &OfferRepository{db: db}
}

// CreateOffer stores offer as PENDING. Offer ids are ULIDs, so ordering by id is insertion order.
func (r *OfferRepository) CreateOffer(ctx context.Context, offer *model.Offer) error {
	now := time.Now().UTC()
	offer.ID = ulid.Make().String()
	offer.Status = constants.OfferStatusPending
	offer.Version = 1
	offer.CreatedAt = now
	offer.UpdatedAt = now

	if err := conn(ctx, r.db).Create(offer).Error; err != nil {
		return wrapStorageError("failed to create offer", err)
	}

	return nil
}

func (r *OfferRepository) FindByID(ctx context.Context, id string) (*model.Offer, error) {
	var offer model.Offer
	err := conn(ctx, r.db).First(&offer, "id = ?", id).Error
	if err != nil {
		return nil, findError(err, apperrors.ErrOfferNotFound, "failed to load offer")
	}
	return &offer, nil
}

func (r *OfferRepository) List(ctx context.Context) ([]model.Offer, error) {
	var offers []model.Offer
	if err := conn(ctx, r.db).Order("id asc").Find(&offers).Error; err != nil {
		return nil, wrapStorageError("failed to list offers", err)
	}
	return offers, nil
}

func (r *OfferRepository) ListByTask(ctx context.Context, taskID string) ([]model.Offer, error) {
	var offers []model.Offer
	err := conn(ctx, r.db).Where("task_id = ?", taskID).Order("id asc").Find(&offers).Error
	if err != nil {
		return nil, wrapStorageError("failed to list offers", err)
	}
	return offers, nil
}

func (r *OfferRepository) Update(ctx context.Context, offer *model.Offer) error {
	now := time.Now().UTC()
	res := conn(ctx, r.db).Model(&model.Offer{}).
		Where("id = ? AND version = ?", offer.ID, offer.Version).
		Updates(map[string]interface{}{
			"message":    offer.Message,
			"status":     offer.Status,
			"updated_at": now,
			"version":    gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return wrapStorageError("failed to update offer", res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	offer.Version++
	offer.UpdatedAt = now
	return nil
}
