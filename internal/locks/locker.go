// Package locks provides the per-task exclusion scope used around multi-step transitions.
package locks

import "context"

// Locker hands out exclusive, key-scoped critical sections.
//
// Acquire blocks until the key is free or ctx is done. The returned release
// function is safe to call more than once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

func TaskKey(taskID string) string {
	return "task:" + taskID
}
