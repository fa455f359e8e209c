package task_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/task"
	"github.com/goto/screener/core/task/mocks"
	"github.com/r3labs/diff/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func due(s string) *time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return &t
}

func fixture() []task.Task {
	return []task.Task{
		{ID: "T-1", Title: "Write onboarding guide", Assignee: "dana", Priority: 2, Status: task.StatusTodo, DueDate: due("2024-07-01T17:00:00Z"), Barriers: []string{}},
		{ID: "T-2", Title: "Add xlsx export", Assignee: "lee", Priority: 4, Status: task.StatusInProgress, DueDate: due("2024-06-14T17:00:00Z"), Barriers: []string{}},
		{ID: "T-3", Title: "Refresh sample stock data", Assignee: "sam", Priority: 3, Status: task.StatusBlocked, DueDate: due("2024-06-10T17:00:00Z"), Barriers: []string{"waiting on data vendor"}},
		{ID: "T-4", Title: "Tune page size defaults", Assignee: "lee", Priority: 1, Status: task.StatusDone, DueDate: due("2024-05-20T17:00:00Z"), Barriers: []string{}},
		{ID: "T-5", Title: "Dashboard for reload latency", Assignee: "dana", Priority: 3, Status: task.StatusTodo, DueDate: nil, Barriers: []string{}},
	}
}

func ids(tasks []task.Task) []string {
	out := []string{}
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

// updatingRepo wires Update to apply fn to a copy of the fixture task.
func updatingRepo(t *testing.T, ctx context.Context) *mocks.TaskRepository {
	repo := mocks.NewTaskRepository(t)
	repo.EXPECT().Update(ctx, mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, id string, fn func(*task.Task) error) (task.Task, error) {
			for _, tsk := range fixture() {
				if tsk.ID != id {
					continue
				}
				next := tsk.Clone()
				if err := fn(&next); err != nil {
					return task.Task{}, err
				}
				return next, nil
			}
			return task.Task{}, task.NotFoundError{ID: id}
		},
	)
	return repo
}

func TestService_List(t *testing.T) {
	type testCase struct {
		Description string
		Params      url.Values
		Expected    []string
		ErrField    string
	}

	testCases := []testCase{
		{Description: "should list every task", Params: url.Values{}, Expected: []string{"T-1", "T-2", "T-3", "T-4", "T-5"}},
		{Description: "should filter by status", Params: url.Values{"statuses": {"todo,done"}}, Expected: []string{"T-1", "T-4", "T-5"}},
		{Description: "should filter by assignee ignoring case", Params: url.Values{"assignees": {"LEE"}}, Expected: []string{"T-2", "T-4"}},
		{Description: "should filter by priority range", Params: url.Values{"min_priority": {"3"}, "max_priority": {"4"}}, Expected: []string{"T-2", "T-3", "T-5"}},
		{Description: "should keep blocked tasks only", Params: url.Values{"blocked": {"1"}}, Expected: []string{"T-3"}},
		{Description: "should keep tasks due before a date", Params: url.Values{"due_before": {"2024-06-12"}}, Expected: []string{"T-3", "T-4"}},
		{Description: "should sort by due date with undated first", Params: url.Values{"sort": {"due_date"}}, Expected: []string{"T-5", "T-4", "T-3", "T-2", "T-1"}},
		{Description: "should sort by workflow status", Params: url.Values{"sort": {"status"}, "direction": {"desc"}}, Expected: []string{"T-4", "T-3", "T-2", "T-1", "T-5"}},
		{Description: "should reject an unknown status", Params: url.Values{"statuses": {"archived"}}, ErrField: "statuses"},
		{Description: "should reject a priority out of range", Params: url.Values{"max_priority": {"9"}}, ErrField: "max_priority"},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			ctx := context.Background()
			repo := mocks.NewTaskRepository(t)
			if tc.ErrField == "" {
				repo.EXPECT().GetAll(ctx).Return(fixture(), nil)
			}
			svc := task.NewService(task.ServiceDeps{Repository: repo})

			flt, err := task.FilterFromParams(tc.Params)
			require.NoError(t, err)

			got, err := svc.List(ctx, flt)
			if tc.ErrField != "" {
				var ipe query.InvalidParameterError
				require.ErrorAs(t, err, &ipe)
				assert.Equal(t, tc.ErrField, ipe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, ids(got.Items))
		})
	}
}

func TestFilterFromParamsRejectsBadCutoff(t *testing.T) {
	_, err := task.FilterFromParams(url.Values{"due_before": {"someday"}})

	var ipe query.InvalidParameterError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "due_before", ipe.Field)
	assert.Equal(t, "someday", ipe.Value)
}

func TestService_UpdateStatus(t *testing.T) {
	t.Run("should move a task and report the change", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: updatingRepo(t, ctx)})

		got, err := svc.UpdateStatus(ctx, "T-1", "IN_PROGRESS")
		require.NoError(t, err)
		assert.Equal(t, task.StatusInProgress, got.Status)
		require.Len(t, got.Changelog, 1)
		assert.Equal(t, diff.UPDATE, got.Changelog[0].Type)
		assert.Equal(t, []string{"status"}, got.Changelog[0].Path)
	})

	t.Run("should refuse to unblock a task with barriers", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: updatingRepo(t, ctx)})

		_, err := svc.UpdateStatus(ctx, "T-3", "done")
		assert.ErrorAs(t, err, new(task.ConflictError))
	})

	t.Run("should reject an unknown status before touching the repository", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: mocks.NewTaskRepository(t)})

		_, err := svc.UpdateStatus(ctx, "T-1", "archived")
		var ipe query.InvalidParameterError
		require.ErrorAs(t, err, &ipe)
		assert.Equal(t, "status", ipe.Field)
		assert.Equal(t, "archived", ipe.Value)
		assert.Equal(t, "must be one of [todo in_progress blocked done]", ipe.Reason)

		_, err = svc.UpdateStatus(ctx, "T-1", "  ")
		require.ErrorAs(t, err, &ipe)
		assert.Equal(t, "cannot be empty", ipe.Reason)
	})

	t.Run("should surface not found", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: updatingRepo(t, ctx)})

		_, err := svc.UpdateStatus(ctx, "T-99", "done")
		assert.ErrorAs(t, err, new(task.NotFoundError))
	})
}

func TestService_Barriers(t *testing.T) {
	t.Run("adding a barrier blocks the task", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: updatingRepo(t, ctx)})

		got, err := svc.AddBarrier(ctx, "T-2", " design review ")
		require.NoError(t, err)
		assert.Equal(t, task.StatusBlocked, got.Status)
		assert.Equal(t, []string{"design review"}, got.Barriers)
		assert.True(t, got.Blocked())
		assert.NotEmpty(t, got.Changelog)
	})

	t.Run("adding an existing barrier keeps a single copy", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: updatingRepo(t, ctx)})

		got, err := svc.AddBarrier(ctx, "T-3", "waiting on data vendor")
		require.NoError(t, err)
		assert.Equal(t, []string{"waiting on data vendor"}, got.Barriers)
		assert.Empty(t, got.Changelog)
	})

	t.Run("a done task cannot be blocked", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: updatingRepo(t, ctx)})

		_, err := svc.AddBarrier(ctx, "T-4", "late feedback")
		assert.ErrorAs(t, err, new(task.ConflictError))
	})

	t.Run("empty barrier is invalid", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: mocks.NewTaskRepository(t)})

		_, err := svc.AddBarrier(ctx, "T-1", "   ")
		assert.ErrorAs(t, err, new(query.InvalidParameterError))
	})

	t.Run("removing the last barrier returns the task to todo", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: updatingRepo(t, ctx)})

		got, err := svc.RemoveBarrier(ctx, "T-3", "waiting on data vendor")
		require.NoError(t, err)
		assert.Equal(t, task.StatusTodo, got.Status)
		assert.Empty(t, got.Barriers)
		assert.False(t, got.Blocked())
	})

	t.Run("removing an unknown barrier fails", func(t *testing.T) {
		ctx := context.Background()
		svc := task.NewService(task.ServiceDeps{Repository: updatingRepo(t, ctx)})

		_, err := svc.RemoveBarrier(ctx, "T-3", "nothing")
		var bnf task.BarrierNotFoundError
		require.ErrorAs(t, err, &bnf)
		assert.Equal(t, "nothing", bnf.Barrier)
	})
}

func TestService_Reset(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewTaskRepository(t)
	repo.EXPECT().Reset(ctx).Return(nil)
	svc := task.NewService(task.ServiceDeps{Repository: repo})

	assert.NoError(t, svc.Reset(ctx))
}
