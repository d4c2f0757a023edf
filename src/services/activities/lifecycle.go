package activities

import (
	"errors"

	"Backend-VolunteerHub/src/models"
)

// Lifecycle violations. Deterministic validation failures, never retried.
var (
	ErrTerminalStateLocked = errors.New("activity is completed or cancelled and cannot change status")
	ErrBackwardTransition  = errors.New("activity status cannot move backward")
	ErrCannotCancelOngoing = errors.New("an ongoing activity cannot be cancelled")
	ErrUnknownStatus       = errors.New("unknown activity status")
	ErrHasParticipants     = errors.New("activity with participants cannot be deleted")
	ErrConflict            = errors.New("activity was modified concurrently, retry")
	ErrActivityNotFound    = errors.New("activity not found")
)

// statusIndex fixes the forward ordering used by the backward check.
var statusIndex = map[models.ActivityStatus]int{
	models.StatusDraft:     0,
	models.StatusPublished: 1,
	models.StatusOngoing:   2,
	models.StatusCompleted: 3,
	models.StatusCancelled: 4,
}

// CanTransition reports whether an activity may move from current to
// requested. Terminal states lock, the ordering is forward-only, and an
// ongoing activity cannot be cancelled.
func CanTransition(current, requested models.ActivityStatus) error {
	curIdx, ok := statusIndex[current]
	if !ok {
		return ErrUnknownStatus
	}
	reqIdx, ok := statusIndex[requested]
	if !ok {
		return ErrUnknownStatus
	}
	if current.IsTerminal() {
		return ErrTerminalStateLocked
	}
	if reqIdx < curIdx {
		return ErrBackwardTransition
	}
	if current == models.StatusOngoing && requested == models.StatusCancelled {
		return ErrCannotCancelOngoing
	}
	return nil
}
