package errors

// ErrOptimisticLock is returned when a conditional write lost against a concurrent writer.
var ErrOptimisticLock = New(ErrInvalidState, "optimistic locking conflict")
