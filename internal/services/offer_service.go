package services

import (
	"context"
	"fmt"
	"strings"

	"task-marketplace.com/task-marketplace/internal/constants"
	apperrors "task-marketplace.com/task-marketplace/internal/errors"
	"task-marketplace.com/task-marketplace/internal/locks"
	model "task-marketplace.com/task-marketplace/internal/models"
)

// OfferService drives the offer state machine.
//
// Placing the first offer on an OPEN task moves the task to PENDING_OFFER in
// the same unit of work; acceptance then requires PENDING_OFFER.
type OfferService struct {
	offers      OfferStore
	tasks       *TaskService
	coordinator *AssignmentCoordinator
	tx          Transactor
	locker      locks.Locker
}

func NewOfferService(
	offers OfferStore,
	tasks *TaskService,
	coordinator *AssignmentCoordinator,
	tx Transactor,
	locker locks.Locker,
) *OfferService {
	return &OfferService{
		offers:      offers,
		tasks:       tasks,
		coordinator: coordinator,
		tx:          tx,
		locker:      locker,
	}
}

func (s *OfferService) CreateOffer(ctx context.Context, taskID, userID string, message *string) (*model.Offer, error) {
	var created *model.Offer

	err := inTaskScope(ctx, s.locker, s.tx, taskID, func(ctx context.Context) error {
		task, err := s.tasks.GetTask(ctx, taskID)
		if err != nil {
			return err
		}

		if !task.Status.AcceptsOffers() {
			return apperrors.New(apperrors.ErrInvalidState,
				fmt.Sprintf("cannot offer on a %s task", strings.ToLower(string(task.Status))))
		}

		if task.Status == constants.TaskStatusOpen {
			if _, err := s.tasks.applyTransition(ctx, taskID, constants.TaskStatusPendingOffer, nil); err != nil {
				return err
			}
		}

		offer := &model.Offer{
			TaskID:  taskID,
			UserID:  userID,
			Message: message,
		}
		if err := s.offers.CreateOffer(ctx, offer); err != nil {
			return err
		}

		created = offer
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *OfferService) GetOffer(ctx context.Context, id string) (*model.Offer, error) {
	return s.offers.FindByID(ctx, id)
}

func (s *OfferService) ListOffers(ctx context.Context) ([]model.Offer, error) {
	return s.offers.List(ctx)
}

// ListOffersByTask returns the offers placed on taskID, oldest first.
func (s *OfferService) ListOffersByTask(ctx context.Context, taskID string) ([]model.Offer, error) {
	if _, err := s.tasks.GetTask(ctx, taskID); err != nil {
		return nil, err
	}
	return s.offers.ListByTask(ctx, taskID)
}

// UpdateMessage replaces the offer's message whatever its status.
func (s *OfferService) UpdateMessage(ctx context.Context, id string, message string) (*model.Offer, error) {
	return s.inOfferScope(ctx, id, func(ctx context.Context, offer *model.Offer) error {
		offer.Message = &message
		return s.offers.Update(ctx, offer)
	})
}

func (s *OfferService) WithdrawOffer(ctx context.Context, id string) (*model.Offer, error) {
	return s.settle(ctx, id, constants.OfferStatusWithdrawn)
}

func (s *OfferService) RejectOffer(ctx context.Context, id string) (*model.Offer, error) {
	return s.settle(ctx, id, constants.OfferStatusRejected)
}

// AcceptOffer accepts the offer and assigns its task to the offering user, or does neither.
func (s *OfferService) AcceptOffer(ctx context.Context, id string) (*model.Offer, error) {
	return s.coordinator.AcceptOffer(ctx, id)
}

func (s *OfferService) settle(ctx context.Context, id string, to constants.OfferStatus) (*model.Offer, error) {
	return s.inOfferScope(ctx, id, func(ctx context.Context, offer *model.Offer) error {
		return applyOfferTransition(ctx, s.offers, offer, to)
	})
}

// inOfferScope loads the offer, then reloads it inside its task's scope and hands it to fn.
func (s *OfferService) inOfferScope(
	ctx context.Context,
	id string,
	fn func(ctx context.Context, offer *model.Offer) error,
) (*model.Offer, error) {
	current, err := s.offers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var result *model.Offer
	err = inTaskScope(ctx, s.locker, s.tx, current.TaskID, func(ctx context.Context) error {
		offer, err := s.offers.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(ctx, offer); err != nil {
			return err
		}
		result = offer
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func applyOfferTransition(ctx context.Context, offers OfferStore, offer *model.Offer, to constants.OfferStatus) error {
	if !offer.Status.CanTransitionTo(to) {
		return apperrors.New(apperrors.ErrInvalidState,
			fmt.Sprintf("only PENDING offers can be %s (offer is %s)", strings.ToLower(string(to)), offer.Status))
	}

	offer.Status = to
	return offers.Update(ctx, offer)
}
