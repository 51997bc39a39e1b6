package services

import (
	"context"
	"errors"
	"log/slog"

	"task-marketplace.com/task-marketplace/internal/constants"
	apperrors "task-marketplace.com/task-marketplace/internal/errors"
	"task-marketplace.com/task-marketplace/internal/locks"
	model "task-marketplace.com/task-marketplace/internal/models"
)

// AssignmentCoordinator is the only component allowed to assign a task. It
// accepts an offer and assigns the offer's task in one transaction, under the
// task's lock, so two offers on the same task cannot both win.
type AssignmentCoordinator struct {
	offers OfferStore
	tasks  *TaskService
	tx     Transactor
	locker locks.Locker
	logger *slog.Logger
}

func NewAssignmentCoordinator(
	offers OfferStore,
	tasks *TaskService,
	tx Transactor,
	locker locks.Locker,
	logger *slog.Logger,
) *AssignmentCoordinator {
	return &AssignmentCoordinator{
		offers: offers,
		tasks:  tasks,
		tx:     tx,
		locker: locker,
		logger: logger,
	}
}

func (c *AssignmentCoordinator) AcceptOffer(ctx context.Context, offerID string) (*model.Offer, error) {
	current, err := c.offers.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}

	var accepted *model.Offer
	err = inTaskScope(ctx, c.locker, c.tx, current.TaskID, func(ctx context.Context) error {
		offer, err := c.offers.FindByID(ctx, offerID)
		if err != nil {
			return err
		}

		if err := applyOfferTransition(ctx, c.offers, offer, constants.OfferStatusAccepted); err != nil {
			return err
		}

		if _, err := c.tasks.assign(ctx, offer.TaskID, offer.UserID); err != nil {
			return err
		}

		accepted = offer
		return nil
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			c.logger.WarnContext(ctx, "offer acceptance refused",
				slog.String("offer_id", offerID),
				slog.String("task_id", current.TaskID),
				slog.String("reason", err.Error()))
		}
		return nil, err
	}

	c.logger.InfoContext(ctx, "offer accepted",
		slog.String("offer_id", accepted.ID),
		slog.String("task_id", accepted.TaskID),
		slog.String("assigned_user_id", accepted.UserID))

	return accepted, nil
}
