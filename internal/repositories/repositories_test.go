package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"task-marketplace.com/task-marketplace/internal/constants"
	apperrors "task-marketplace.com/task-marketplace/internal/errors"
	model "task-marketplace.com/task-marketplace/internal/models"
)

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

func newTask(creator string) *model.Task {
	return &model.Task{
		Title:           "Fix fence",
		Description:     "Two broken planks",
		Price:           decimal.RequireFromString("45.50"),
		CreatedByUserID: creator,
	}
}

func TestTaskRepository_CreateAndFind(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := newTask("user-1")
	require.NoError(t, repo.CreateTask(ctx, task))
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, constants.TaskStatusOpen, task.Status)
	assert.Equal(t, uint(1), task.Version)

	found, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Title, found.Title)
	assert.True(t, task.Price.Equal(found.Price), "price = %s, want %s", found.Price, task.Price)
	assert.Nil(t, found.AssignedUserID)
}

func TestTaskRepository_FindByID_NotFound(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrTaskNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTaskRepository_UpdateRejectsStaleVersion(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()

	task := newTask("user-1")
	require.NoError(t, repo.CreateTask(ctx, task))

	first, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	second, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)

	first.Status = constants.TaskStatusPendingOffer
	require.NoError(t, repo.Update(ctx, first))
	assert.Equal(t, uint(2), first.Version)

	second.Status = constants.TaskStatusCancelled
	err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, apperrors.ErrOptimisticLock)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)

	stored, err := repo.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskStatusPendingOffer, stored.Status)
}

func TestTaskRepository_ListOverdue(t *testing.T) {
	repo := NewTaskRepository(setupTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()
	past := now.Add(-2 * time.Hour)
	future := now.Add(2 * time.Hour)
	worker := "worker-1"

	mk := func(status constants.TaskStatus, due *time.Time) *model.Task {
		task := newTask("owner")
		require.NoError(t, repo.CreateTask(ctx, task))
		task.Status = status
		task.ExpectedFinishDate = due
		if status.HasAssignee() {
			task.AssignedUserID = &worker
		}
		require.NoError(t, repo.Update(ctx, task))
		return task
	}

	overdue := mk(constants.TaskStatusAssigned, &past)
	mk(constants.TaskStatusAssigned, &future)
	mk(constants.TaskStatusOpen, &past)
	mk(constants.TaskStatusInProgress, nil)

	tasks, err := repo.ListOverdue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, overdue.ID, tasks[0].ID)

	_, err = repo.ListOverdue(ctx, now, 0)
	assert.Error(t, err)
}

func TestOfferRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewOfferRepository(setupTestDB(t))
	ctx := context.Background()

	var ids []string
	for i := 0; i < 5; i++ {
		offer := &model.Offer{TaskID: "task-1", UserID: fmt.Sprintf("user-%d", i)}
		require.NoError(t, repo.CreateOffer(ctx, offer))
		assert.Equal(t, constants.OfferStatusPending, offer.Status)
		ids = append(ids, offer.ID)
	}

	offers, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, offers, len(ids))
	for i, offer := range offers {
		assert.Equal(t, ids[i], offer.ID)
	}

	byTask, err := repo.ListByTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Len(t, byTask, len(ids))
}

func TestTransactor_RollsBackBothWrites(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	offers := NewOfferRepository(db)
	tx := NewTransactor(db)
	ctx := context.Background()

	task := newTask("owner")
	require.NoError(t, tasks.CreateTask(ctx, task))
	offer := &model.Offer{TaskID: task.ID, UserID: "worker"}
	require.NoError(t, offers.CreateOffer(ctx, offer))

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		offer.Status = constants.OfferStatusAccepted
		if err := offers.Update(ctx, offer); err != nil {
			return err
		}
		task.Status = constants.TaskStatusCancelled
		if err := tasks.Update(ctx, task); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	storedOffer, err := offers.FindByID(ctx, offer.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OfferStatusPending, storedOffer.Status)

	storedTask, err := tasks.FindByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskStatusOpen, storedTask.Status)
}

func TestTransactor_NestedCallsJoinOuter(t *testing.T) {
	db := setupTestDB(t)
	locations := NewLocationRepository(db)
	tx := NewTransactor(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return tx.WithinTransaction(ctx, func(ctx context.Context) error {
			loc := &model.Location{UserID: "owner", Address: "1 Main St"}
			require.NoError(t, locations.CreateLocation(ctx, loc))
			return boom
		})
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&model.Location{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLocationRepository_NotFound(t *testing.T) {
	repo := NewLocationRepository(setupTestDB(t))

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
}
