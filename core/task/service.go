package task

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/goto/screener/core/query"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Service struct {
	repository Repository

	opCounter metric.Int64Counter
}

type ServiceDeps struct {
	Repository Repository
}

func NewService(deps ServiceDeps) *Service {
	opCounter, err := otel.Meter("github.com/goto/screener/core/task").
		Int64Counter("screener.task.operation")
	if err != nil {
		otel.Handle(err)
	}

	return &Service{
		repository: deps.Repository,
		opCounter:  opCounter,
	}
}

func (s *Service) List(ctx context.Context, flt Filter) (page query.ResultPage[Task], err error) {
	defer func() {
		s.instrumentOp(ctx, "List", err)
	}()

	c, err := flt.Criteria()
	if err != nil {
		return query.ResultPage[Task]{}, err
	}

	tasks, err := s.repository.GetAll(ctx)
	if err != nil {
		return query.ResultPage[Task]{}, fmt.Errorf("list tasks: %w", err)
	}

	return query.Evaluate(tasks, c), nil
}

func (s *Service) Get(ctx context.Context, id string) (t Task, err error) {
	defer func() {
		s.instrumentOp(ctx, "Get", err)
	}()

	return s.repository.GetByID(ctx, strings.TrimSpace(id))
}

// UpdateStatus moves a task to status. A task with barriers cannot leave the
// blocked status and a task without barriers cannot enter it.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (t Task, err error) {
	defer func() {
		s.instrumentOp(ctx, "UpdateStatus", err)
	}()

	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized == "" {
		return Task{}, query.InvalidParameterError{Field: "status", Value: status, Reason: "cannot be empty"}
	}
	if err := query.ValidateOneOf("status", normalized, Statuses...); err != nil {
		return Task{}, err
	}
	st := Status(normalized)

	return s.update(ctx, id, func(t *Task) error {
		switch {
		case t.Blocked() && st != StatusBlocked:
			return ConflictError{TaskID: t.ID, Reason: "remove every barrier before changing the status"}
		case !t.Blocked() && st == StatusBlocked:
			return ConflictError{TaskID: t.ID, Reason: "add a barrier to block the task"}
		}
		t.Status = st
		return nil
	})
}

// AddBarrier records something the task is waiting on and blocks it. Adding
// a barrier the task already has is a no-op.
func (s *Service) AddBarrier(ctx context.Context, id, barrier string) (t Task, err error) {
	defer func() {
		s.instrumentOp(ctx, "AddBarrier", err)
	}()

	barrier = strings.TrimSpace(barrier)
	if barrier == "" {
		return Task{}, query.InvalidParameterError{Field: "barrier", Reason: ErrEmptyBarrier.Error()}
	}

	return s.update(ctx, id, func(t *Task) error {
		if t.Status == StatusDone {
			return ConflictError{TaskID: t.ID, Reason: "a done task cannot be blocked"}
		}
		if !slices.Contains(t.Barriers, barrier) {
			t.Barriers = append(t.Barriers, barrier)
		}
		t.Status = StatusBlocked
		return nil
	})
}

// RemoveBarrier drops a barrier. Removing the last one returns the task to
// todo.
func (s *Service) RemoveBarrier(ctx context.Context, id, barrier string) (t Task, err error) {
	defer func() {
		s.instrumentOp(ctx, "RemoveBarrier", err)
	}()

	barrier = strings.TrimSpace(barrier)
	return s.update(ctx, id, func(t *Task) error {
		i := slices.Index(t.Barriers, barrier)
		if i < 0 {
			return BarrierNotFoundError{TaskID: t.ID, Barrier: barrier}
		}
		t.Barriers = slices.Delete(t.Barriers, i, i+1)
		if len(t.Barriers) == 0 && t.Status == StatusBlocked {
			t.Status = StatusTodo
		}
		return nil
	})
}

func (s *Service) Reset(ctx context.Context) (err error) {
	defer func() {
		s.instrumentOp(ctx, "Reset", err)
	}()

	if err := s.repository.Reset(ctx); err != nil {
		return fmt.Errorf("reset tasks: %w", err)
	}
	return nil
}

// update runs fn through the repository and attaches the changelog between
// the stored and the updated task.
func (s *Service) update(ctx context.Context, id string, fn func(*Task) error) (Task, error) {
	var before Task
	updated, err := s.repository.Update(ctx, strings.TrimSpace(id), func(t *Task) error {
		before = t.Clone()
		return fn(t)
	})
	if err != nil {
		return Task{}, err
	}

	changelog, err := before.Diff(&updated)
	if err != nil {
		return Task{}, fmt.Errorf("diff task: %w", err)
	}
	updated.Changelog = changelog
	return updated, nil
}

func (s *Service) instrumentOp(ctx context.Context, op string, err error) {
	if s.opCounter == nil {
		return
	}
	s.opCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("screener.task_operation", op),
		attribute.Bool("operation.success", err == nil),
	))
}
