package locks

import (
	"context"
	"sync"
)

type slot struct {
	held chan struct{}
	refs int
}

// MemoryLocker is an in-process Locker. Slots are created on demand and
// dropped when the last waiter leaves, so idle keys cost nothing.
type MemoryLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
}

func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{slots: make(map[string]*slot)}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string) (func(), error) {
	s := l.join(key)

	select {
	case s.held <- struct{}{}:
	case <-ctx.Done():
		l.leave(key, s)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-s.held
			l.leave(key, s)
		})
	}, nil
}

func (l *MemoryLocker) join(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{held: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

func (l *MemoryLocker) leave(key string, s *slot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}
