package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-marketplace.com/task-marketplace/internal/constants"
	apperrors "task-marketplace.com/task-marketplace/internal/errors"
	model "task-marketplace.com/task-marketplace/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// CreateTask stores task as a new OPEN record, assigning its id and version.
func (r *TaskRepository) CreateTask(ctx context.Context, task *model.Task) error {
	now := time.Now().UTC()
	task.ID = uuid.NewString()
	task.Status = constants.TaskStatusOpen
	task.Version = 1
	task.CreatedAt = now
	task.UpdatedAt = now

	if err := conn(ctx, r.db).Create(task).Error; err != nil {
		return wrapStorageError("failed to create task", err)
	}

	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := conn(ctx, r.db).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, findError(err, apperrors.ErrTaskNotFound, "failed to load task")
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	err := conn(ctx, r.db).Order("created_at asc").Order("id asc").Find(&tasks).Error
	if err != nil {
		return nil, wrapStorageError("failed to list tasks", err)
	}
	return tasks, nil
}

// ListOverdue returns assigned or running tasks whose expected finish date is before now.
func (r *TaskRepository) ListOverdue(ctx context.Context, now time.Time, limit int) ([]model.Task, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be positive")
	}

	var tasks []model.Task
	query := conn(ctx, r.db).
		Where("status IN ? AND expected_finish_date IS NOT NULL AND expected_finish_date < ?",
			[]constants.TaskStatus{constants.TaskStatusAssigned, constants.TaskStatusInProgress}, now).
		Order("expected_finish_date asc").Limit(limit)

	if err := query.Find(&tasks).Error; err != nil {
		return nil, wrapStorageError("failed to list overdue tasks", err)
	}

	return tasks, nil
}

// Update writes every mutable column, but only if nobody bumped the version since task was read.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	now := time.Now().UTC()
	res := conn(ctx, r.db).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":                task.Title,
			"description":          task.Description,
			"price":                task.Price,
			"is_paid":              task.IsPaid,
			"assigned_user_id":     task.AssignedUserID,
			"location_id":          task.LocationID,
			"status":               task.Status,
			"expected_finish_date": task.ExpectedFinishDate,
			"started_at":           task.StartedAt,
			"completed_at":         task.CompletedAt,
			"updated_at":           now,
			"version":              gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return wrapStorageError("failed to update task", res.Error)
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	task.Version++
	task.UpdatedAt = now
	return nil
}
