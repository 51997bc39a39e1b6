package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	apperrors "task-marketplace.com/task-marketplace/internal/errors"
)

// OverdueSweeper periodically moves ASSIGNED or IN_PROGRESS tasks whose
// expected finish date has passed to UNCONCLUDED. A poll loop feeds task ids
// into a bounded queue drained by a fixed set of workers.
type OverdueSweeper struct {
	queue     chan string
	wg        sync.WaitGroup
	loopWG    sync.WaitGroup
	enqueued  sync.Map
	finder    OverdueTaskFinder
	tasks     *TaskService
	batchSize int
	stop      chan struct{}
	logger    *slog.Logger
	now       func() time.Time
}

func NewOverdueSweeper(
	finder OverdueTaskFinder,
	tasks *TaskService,
	workers int,
	batchSize int,
	interval time.Duration,
	logger *slog.Logger,
) *OverdueSweeper {
	s := &OverdueSweeper{
		queue:     make(chan string, batchSize),
		finder:    finder,
		tasks:     tasks,
		batchSize: batchSize,
		stop:      make(chan struct{}),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}

	s.loopWG.Add(1)
	go s.pollLoop(interval)

	for i := 1; i <= workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	return s
}

func (s *OverdueSweeper) pollLoop(interval time.Duration) {
	defer s.loopWG.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.SweepOnce(context.Background())
		case <-s.stop:
			return
		}
	}
}

// SweepOnce queues one batch of overdue tasks and returns how many were queued.
func (s *OverdueSweeper) SweepOnce(ctx context.Context) int {
	tasks, err := s.finder.ListOverdue(ctx, s.now(), s.batchSize)
	if err != nil {
		s.logger.ErrorContext(ctx, "sweep: failed to list overdue tasks", slog.Any("error", err))
		return 0
	}

	queued := 0
	for _, task := range tasks {
		ok, full := s.enqueueIfNotPresent(task.ID)
		if full {
			break
		}
		if ok {
			queued++
		}
	}

	return queued
}

func (s *OverdueSweeper) worker(workerID int) {
	defer s.wg.Done()

	s.logger.Debug("sweep worker started", slog.Int("worker", workerID))

	for taskID := range s.queue {
		s.handleTask(workerID, taskID)
	}

	s.logger.Debug("sweep worker stopped", slog.Int("worker", workerID))
}

func (s *OverdueSweeper) handleTask(workerID int, taskID string) {
	defer s.enqueued.Delete(taskID)

	ctx := context.Background()
	if _, err := s.tasks.MarkUnconcluded(ctx, taskID); err != nil {
		if errors.Is(err, apperrors.ErrInvalidState) {
			s.logger.Debug("sweep: task moved on before it could be closed",
				slog.Int("worker", workerID), slog.String("task_id", taskID), slog.Any("error", err))
			return
		}
		s.logger.Error("sweep: failed to close overdue task",
			slog.Int("worker", workerID), slog.String("task_id", taskID), slog.Any("error", err))
		return
	}

	s.logger.Info("overdue task marked unconcluded", slog.Int("worker", workerID), slog.String("task_id", taskID))
}

// enqueueIfNotPresent reports whether taskID was queued, and whether the queue was full.
func (s *OverdueSweeper) enqueueIfNotPresent(taskID string) (bool, bool) {
	if _, loaded := s.enqueued.LoadOrStore(taskID, struct{}{}); loaded {
		return false, false
	}

	select {
	case s.queue <- taskID:
		return true, false
	default:
		s.enqueued.Delete(taskID)
		return false, true
	}
}

func (s *OverdueSweeper) Shutdown(ctx context.Context) {
	close(s.stop)
	s.loopWG.Wait()
	close(s.queue)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("overdue sweeper shut down cleanly")
	case <-ctx.Done():
		s.logger.Warn("overdue sweeper shutdown timed out")
	}
}
