package memory

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/goto/screener/core/task"
)

// TaskRepository keeps the demo task board. Commands mutate the in memory
// copy only; Reset brings back what was loaded.
type TaskRepository struct {
	store *Store[task.Task]
}

func NewTaskRepository(file File) *TaskRepository {
	src := JSONSource[task.Task]{File: file, Decode: decodeTasks}
	return &TaskRepository{
		store: New[task.Task]("tasks", src,
			func(t task.Task) string { return t.ID },
			WithClone(task.Task.Clone),
		),
	}
}

func (r *TaskRepository) GetAll(_ context.Context) ([]task.Task, error) {
	return r.store.All(), nil
}

func (r *TaskRepository) GetByID(_ context.Context, id string) (task.Task, error) {
	t, ok := r.store.Get(id)
	if !ok {
		return task.Task{}, task.NotFoundError{ID: id}
	}
	return t, nil
}

func (r *TaskRepository) Update(_ context.Context, id string, fn func(*task.Task) error) (task.Task, error) {
	t, err := r.store.Update(id, fn)
	if errors.Is(err, ErrRecordNotFound) {
		return task.Task{}, task.NotFoundError{ID: id}
	}
	return t, err
}

func (r *TaskRepository) Reset(_ context.Context) error {
	r.store.Reset()
	return nil
}

func (r *TaskRepository) Name() string { return r.store.Name() }

func (r *TaskRepository) Len() int { return r.store.Len() }

func (r *TaskRepository) Reload(ctx context.Context) error {
	return r.store.Reload(ctx)
}

type taskRecord struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee"`
	Priority    jsonNumber `json:"priority"`
	Status      string     `json:"status"`
	DueDate     *string    `json:"due_date"`
	Barriers    []string   `json:"barriers"`
}

func decodeTasks(data []byte) ([]task.Task, error) {
	records, err := decodeRecords[taskRecord](data)
	if err != nil {
		return nil, err
	}

	tasks := make([]task.Task, 0, len(records))
	for _, rec := range records {
		if strings.TrimSpace(rec.ID) == "" {
			continue
		}
		tasks = append(tasks, rec.toTask())
	}
	return tasks, nil
}

// toTask degrades unknown statuses to todo, unparseable due dates to none
// and missing priorities to 1. A task with barriers is always blocked.
func (rec taskRecord) toTask() task.Task {
	status, ok := task.ParseStatus(rec.Status)
	if !ok {
		status = task.StatusTodo
	}

	barriers := make([]string, 0, len(rec.Barriers))
	for _, b := range rec.Barriers {
		if b = strings.TrimSpace(b); b != "" {
			barriers = append(barriers, b)
		}
	}
	switch {
	case len(barriers) > 0:
		status = task.StatusBlocked
	case status == task.StatusBlocked:
		status = task.StatusTodo
	}

	priority := 1
	if p := rec.Priority.Float(); p != nil {
		priority = int(min(max(*p, 1), 5))
	}

	return task.Task{
		ID:          strings.TrimSpace(rec.ID),
		Title:       rec.Title,
		Description: rec.Description,
		Assignee:    rec.Assignee,
		Priority:    priority,
		Status:      status,
		DueDate:     parseDue(rec.DueDate),
		Barriers:    barriers,
	}
}

func parseDue(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	t, err := task.ParseTime(*raw)
	if err != nil {
		return nil
	}
	return &t
}
