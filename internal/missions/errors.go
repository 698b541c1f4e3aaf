package missions

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("mission not found")
	ErrInvalidState = errors.New("invalid mission state")
)

// StateError is returned when an operation is not allowed in the mission's
// current status. It matches ErrInvalidState under errors.Is.
type StateError struct {
	MissionID string
	Op        string
	Status    Status
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s mission %s: %v (status %s)", e.Op, e.MissionID, ErrInvalidState, e.Status)
}

func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

func notFound(op, id string) error {
	return fmt.Errorf("%s mission %s: %w", op, id, ErrNotFound)
}
