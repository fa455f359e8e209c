package task

import (
	"errors"
	"fmt"
)

var ErrEmptyBarrier = errors.New("barrier cannot be empty")

type NotFoundError struct {
	ID string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("could not find task %q", err.ID)
}

type BarrierNotFoundError struct {
	TaskID  string
	Barrier string
}

func (err BarrierNotFoundError) Error() string {
	return fmt.Sprintf("task %q has no barrier %q", err.TaskID, err.Barrier)
}

// ConflictError reports a command that cannot be applied to the task in its
// current state.
type ConflictError struct {
	TaskID string
	Reason string
}

func (err ConflictError) Error() string {
	return fmt.Sprintf("task %q: %s", err.TaskID, err.Reason)
}
