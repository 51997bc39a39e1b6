package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"task-marketplace.com/task-marketplace/internal/constants"
	apperrors "task-marketplace.com/task-marketplace/internal/errors"
	"task-marketplace.com/task-marketplace/internal/locks"
	model "task-marketplace.com/task-marketplace/internal/models"
)

type CreateTaskInput struct {
	Title              string
	Description        string
	Price              decimal.Decimal
	IsPaid             bool
	CreatedByUserID    string
	LocationID         *string
	ExpectedFinishDate *time.Time
}

// TaskPatch is a partial update. A nil field is left unchanged; there is no
// way to clear a field through a patch.
type TaskPatch struct {
	Title              *string
	Description        *string
	Price              *decimal.Decimal
	IsPaid             *bool
	ExpectedFinishDate *time.Time
	LocationID         *string
}

type TaskService struct {
	tasks     TaskStore
	locations LocationStore
	tx        Transactor
	locker    locks.Locker
}

func NewTaskService(
	tasks TaskStore,
	locations LocationStore,
	tx Transactor,
	locker locks.Locker,
) *TaskService {
	return &TaskService{
		tasks:     tasks,
		locations: locations,
		tx:        tx,
		locker:    locker,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateTaskInput) (*model.Task, error) {
	if in.LocationID != nil {
		if err := s.checkLocation(ctx, *in.LocationID, in.CreatedByUserID); err != nil {
			return nil, err
		}
	}

	task := &model.Task{
		Title:              in.Title,
		Description:        in.Description,
		Price:              in.Price,
		IsPaid:             in.IsPaid,
		CreatedByUserID:    in.CreatedByUserID,
		LocationID:         in.LocationID,
		ExpectedFinishDate: utc(in.ExpectedFinishDate),
	}

	if err := s.tasks.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.tasks.List(ctx)
}

func (s *TaskService) UpdateTask(ctx context.Context, id string, patch TaskPatch) (*model.Task, error) {
	var updated *model.Task

	err := inTaskScope(ctx, s.locker, s.tx, id, func(ctx context.Context) error {
		task, err := s.tasks.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if task.Status.IsTerminal() {
			return apperrors.New(apperrors.ErrInvalidState,
				fmt.Sprintf("cannot update a task in status %s", task.Status))
		}

		if patch.LocationID != nil && !sameString(task.LocationID, patch.LocationID) {
			if err := s.checkLocation(ctx, *patch.LocationID, task.CreatedByUserID); err != nil {
				return err
			}
			task.LocationID = patch.LocationID
		}
		if patch.Title != nil {
			task.Title = *patch.Title
		}
		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Price != nil {
			task.Price = *patch.Price
		}
		if patch.IsPaid != nil {
			task.IsPaid = *patch.IsPaid
		}
		if patch.ExpectedFinishDate != nil {
			task.ExpectedFinishDate = utc(patch.ExpectedFinishDate)
		}

		if err := s.tasks.Update(ctx, task); err != nil {
			return err
		}

		updated = task
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TaskService) MarkPendingOffer(ctx context.Context, id string) (*model.Task, error) {
	return s.transition(ctx, id, constants.TaskStatusPendingOffer, nil)
}

func (s *TaskService) MarkInProgress(ctx context.Context, id string) (*model.Task, error) {
	return s.transition(ctx, id, constants.TaskStatusInProgress, func(task *model.Task) {
		startedAt := time.Now().UTC()
		task.StartedAt = &startedAt
	})
}

func (s *TaskService) MarkCompleted(ctx context.Context, id string) (*model.Task, error) {
	return s.transition(ctx, id, constants.TaskStatusCompleted, stampCompletion)
}

func (s *TaskService) MarkUnconcluded(ctx context.Context, id string) (*model.Task, error) {
	return s.transition(ctx, id, constants.TaskStatusUnconcluded, stampCompletion)
}

// CancelTask withdraws the task from the marketplace. The assignee, if any, is
// released since only assigned-family statuses may carry one.
func (s *TaskService) CancelTask(ctx context.Context, id string) (*model.Task, error) {
	return s.transition(ctx, id, constants.TaskStatusCancelled, func(task *model.Task) {
		task.AssignedUserID = nil
		stampCompletion(task)
	})
}

// assign moves a PENDING_OFFER task to ASSIGNED. It runs inside the caller's
// task scope and is reserved for AssignmentCoordinator.
func (s *TaskService) assign(ctx context.Context, id, workerID string) (*model.Task, error) {
	return s.applyTransition(ctx, id, constants.TaskStatusAssigned, func(task *model.Task) {
		task.AssignedUserID = &workerID
	})
}

func (s *TaskService) transition(
	ctx context.Context,
	id string,
	to constants.TaskStatus,
	mutate func(*model.Task),
) (*model.Task, error) {
	var task *model.Task

	err := inTaskScope(ctx, s.locker, s.tx, id, func(ctx context.Context) error {
		t, err := s.applyTransition(ctx, id, to, mutate)
		if err != nil {
			return err
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

// applyTransition must be called inside the task's scope.
func (s *TaskService) applyTransition(
	ctx context.Context,
	id string,
	to constants.TaskStatus,
	mutate func(*model.Task),
) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !task.Status.CanTransitionTo(to) {
		return nil, invalidTaskTransition(task.Status, to)
	}

	task.Status = to
	if mutate != nil {
		mutate(task)
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) checkLocation(ctx context.Context, locationID, userID string) error {
	location, err := s.locations.FindByID(ctx, locationID)
	if err != nil {
		return err
	}
	if location.UserID != userID {
		return apperrors.ErrLocationNotOwned
	}
	return nil
}

func invalidTaskTransition(from, to constants.TaskStatus) error {
	var msg string
	switch {
	case to == constants.TaskStatusAssigned:
		msg = fmt.Sprintf("task is not awaiting assignment (status %s)", from)
	case to == constants.TaskStatusCancelled && from == constants.TaskStatusCompleted:
		msg = "cannot cancel a completed task"
	default:
		msg = fmt.Sprintf("cannot move task from %s to %s", from, to)
	}
	return apperrors.New(apperrors.ErrInvalidState, msg)
}

func stampCompletion(task *model.Task) {
	completedAt := time.Now().UTC()
	task.CompletedAt = &completedAt
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func utc(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
