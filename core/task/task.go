package task

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname TaskRepository --filename task_repository.go --output=./mocks
import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/r3labs/diff/v2"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	// Update applies fn to a copy of the task and publishes the result.
	Update(ctx context.Context, id string, fn func(*Task) error) (Task, error)
	// Reset restores every task to its loaded state.
	Reset(ctx context.Context) error
}

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
	StatusDone       Status = "done"
)

var Statuses = []string{string(StatusTodo), string(StatusInProgress), string(StatusBlocked), string(StatusDone)}

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusTodo, StatusInProgress, StatusBlocked, StatusDone:
		return st, true
	}
	return "", false
}

// Task is a unit of work. A task with at least one barrier is blocked.
type Task struct {
	ID          string         `json:"id" diff:"-"`
	Title       string         `json:"title" diff:"title"`
	Description string         `json:"description" diff:"description"`
	Assignee    string         `json:"assignee" diff:"assignee"`
	Priority    int            `json:"priority" diff:"priority"`
	Status      Status         `json:"status" diff:"status"`
	DueDate     *time.Time     `json:"due_date" diff:"due_date"`
	Barriers    []string       `json:"barriers" diff:"barriers"`
	Changelog   diff.Changelog `json:"changelog,omitempty" diff:"-"`
}

func (t Task) Blocked() bool {
	return len(t.Barriers) > 0
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	c := t
	c.Barriers = slices.Clone(t.Barriers)
	if c.Barriers == nil {
		c.Barriers = []string{}
	}
	if t.DueDate != nil {
		due := *t.DueDate
		c.DueDate = &due
	}
	c.Changelog = nil
	return c
}

// Diff returns nil changelog with nil error if equal
func (t *Task) Diff(other *Task) (diff.Changelog, error) {
	return diff.Diff(t, other, diff.DiscardComplexOrigin(), diff.AllowTypeMismatch(true))
}
