package services

import (
	"context"

	"task-marketplace.com/task-marketplace/internal/locks"
)

// inTaskScope runs fn holding the task's lock and inside a single transaction.
// Nothing else that mutates the task, or any of its offers, can interleave.
func inTaskScope(
	ctx context.Context,
	locker locks.Locker,
	tx Transactor,
	taskID string,
	fn func(ctx context.Context) error,
) error {
	release, err := locker.Acquire(ctx, locks.TaskKey(taskID))
	if err != nil {
		return err
	}
	defer release()

	return tx.WithinTransaction(ctx, fn)
}
