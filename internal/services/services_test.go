package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-marketplace.com/task-marketplace/internal/constants"
	"task-marketplace.com/task-marketplace/internal/locks"
	model "task-marketplace.com/task-marketplace/internal/models"
	repository "task-marketplace.com/task-marketplace/internal/repositories"
)

type testEnv struct {
	db          *gorm.DB
	taskRepo    *repository.TaskRepository
	offerRepo   *repository.OfferRepository
	tasks       *TaskService
	offers      *OfferService
	coordinator *AssignmentCoordinator
	locations   *LocationService
	logger      *slog.Logger
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect database")
	require.NoError(t, db.AutoMigrate(&model.Task{}, &model.Offer{}, &model.Location{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	taskRepo := repository.NewTaskRepository(db)
	offerRepo := repository.NewOfferRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	tx := repository.NewTransactor(db)
	locker := locks.NewMemoryLocker()

	tasks := NewTaskService(taskRepo, locationRepo, tx, locker)
	coordinator := NewAssignmentCoordinator(offerRepo, tasks, tx, locker, logger)

	return &testEnv{
		db:          db,
		taskRepo:    taskRepo,
		offerRepo:   offerRepo,
		tasks:       tasks,
		offers:      NewOfferService(offerRepo, tasks, coordinator, tx, locker),
		coordinator: coordinator,
		locations:   NewLocationService(locationRepo),
		logger:      logger,
	}
}

func (e *testEnv) createTask(t *testing.T, creator string) *model.Task {
	t.Helper()

	task, err := e.tasks.CreateTask(context.Background(), CreateTaskInput{
		Title:           "Assemble wardrobe",
		Description:     "IKEA PAX, two doors",
		Price:           decimal.RequireFromString("80"),
		IsPaid:          true,
		CreatedByUserID: creator,
	})
	require.NoError(t, err)
	return task
}

func (e *testEnv) createOffer(t *testing.T, taskID, userID string) *model.Offer {
	t.Helper()

	msg := "I can do it tomorrow"
	offer, err := e.offers.CreateOffer(context.Background(), taskID, userID, &msg)
	require.NoError(t, err)
	return offer
}

// driveTo builds a task in the requested status using only public operations.
func (e *testEnv) driveTo(t *testing.T, status constants.TaskStatus) *model.Task {
	t.Helper()
	ctx := context.Background()

	task := e.createTask(t, "owner")
	var err error

	switch status {
	case constants.TaskStatusOpen:
		return task
	case constants.TaskStatusPendingOffer:
		_, err = e.tasks.MarkPendingOffer(ctx, task.ID)
	case constants.TaskStatusCancelled:
		_, err = e.tasks.CancelTask(ctx, task.ID)
	default:
		offer := e.createOffer(t, task.ID, "worker")
		_, err = e.offers.AcceptOffer(ctx, offer.ID)
		require.NoError(t, err)

		switch status {
		case constants.TaskStatusInProgress:
			_, err = e.tasks.MarkInProgress(ctx, task.ID)
		case constants.TaskStatusCompleted:
			_, err = e.tasks.MarkCompleted(ctx, task.ID)
		case constants.TaskStatusUnconcluded:
			_, err = e.tasks.MarkUnconcluded(ctx, task.ID)
		}
	}
	require.NoError(t, err)

	task, err = e.tasks.GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, status, task.Status)
	return task
}

func assertAssigneeInvariant(t *testing.T, task *model.Task) {
	t.Helper()
	assert.Equalf(t, task.Status.HasAssignee(), task.AssignedUserID != nil,
		"task %s in status %s has assignee %v", task.ID, task.Status, task.AssignedUserID)
}
