package services

import (
	"context"
	"time"

	model "task-marketplace.com/task-marketplace/internal/models"
)

// TaskStore is the persistence contract TaskService needs. Update must be
// conditional on the record's version.
type TaskStore interface {
	CreateTask(ctx context.Context, task *model.Task) error
	FindByID(ctx context.Context, id string) (*model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) error
}

type OverdueTaskFinder interface {
	ListOverdue(ctx context.Context, now time.Time, limit int) ([]model.Task, error)
}

type OfferStore interface {
	CreateOffer(ctx context.Context, offer *model.Offer) error
	FindByID(ctx context.Context, id string) (*model.Offer, error)
	List(ctx context.Context) ([]model.Offer, error)
	ListByTask(ctx context.Context, taskID string) ([]model.Offer, error)
	Update(ctx context.Context, offer *model.Offer) error
}

type LocationStore interface {
	CreateLocation(ctx context.Context, location *model.Location) error
	FindByID(ctx context.Context, id string) (*model.Location, error)
}

// Transactor makes every store call issued with the callback's context part of one atomic write.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
