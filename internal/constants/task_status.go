package constants

type TaskStatus string

const (
	TaskStatusOpen         TaskStatus = "OPEN"
	TaskStatusPendingOffer TaskStatus = "PENDING_OFFER"
	TaskStatusAssigned     TaskStatus = "ASSIGNED"
	TaskStatusInProgress   TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted    TaskStatus = "COMPLETED"
	TaskStatusCancelled    TaskStatus = "CANCELLED"
	TaskStatusUnconcluded  TaskStatus = "UNCONCLUDED"
)

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskStatusOpen:         {TaskStatusPendingOffer, TaskStatusCancelled},
	TaskStatusPendingOffer: {TaskStatusAssigned, TaskStatusCancelled},
	TaskStatusAssigned:     {TaskStatusInProgress, TaskStatusCompleted, TaskStatusUnconcluded, TaskStatusCancelled},
	TaskStatusInProgress:   {TaskStatusCompleted, TaskStatusUnconcluded, TaskStatusCancelled},
}

// CanTransitionTo reports whether the task state machine has an edge from s to next.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	for _, allowed := range taskTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusCancelled, TaskStatusUnconcluded:
		return true
	}
	return false
}

// HasAssignee reports whether a task in this status must carry an assigned user.
func (s TaskStatus) HasAssignee() bool {
	switch s {
	case TaskStatusAssigned, TaskStatusInProgress, TaskStatusCompleted, TaskStatusUnconcluded:
		return true
	}
	return false
}

// AcceptsOffers reports whether new offers may be placed on a task in this status.
func (s TaskStatus) AcceptsOffers() bool {
	return !s.IsTerminal()
}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusPendingOffer, TaskStatusAssigned, TaskStatusInProgress,
		TaskStatusCompleted, TaskStatusCancelled, TaskStatusUnconcluded:
		return true
	}
	return false
}
