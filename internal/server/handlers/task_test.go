package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/goto/salt/log"
	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/task"
	"github.com/goto/screener/internal/server/handlers"
	"github.com/goto/screener/internal/server/handlers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func decodeTask(t *testing.T, rw *httptest.ResponseRecorder) task.Task {
	t.Helper()
	var got task.Task
	require.NoError(t, json.NewDecoder(rw.Body).Decode(&got))
	return got
}

func TestTaskHandlerList(t *testing.T) {
	t.Run("should forward the parsed filter", func(t *testing.T) {
		params := url.Values{"statuses": {"blocked"}, "blocked": {"1"}, "due_before": {"2024-07-01"}}
		want, err := task.FilterFromParams(params)
		require.NoError(t, err)

		svc := mocks.NewTaskService(t)
		svc.EXPECT().List(mock.Anything, want).Return(query.ResultPage[task.Task]{
			Items: []task.Task{{ID: "T-3", Status: task.StatusBlocked, Barriers: []string{"waiting on data vendor"}}},
			Page:  1, PageSize: 50, Total: 1, TotalPages: 1,
		}, nil)

		h := handlers.NewTaskHandler(log.NewNoop(), svc)
		rw := do(h.List, http.MethodGet, "/api/tasks?"+params.Encode(), "", nil)

		require.Equal(t, http.StatusOK, rw.Code)
		var page query.ResultPage[task.Task]
		require.NoError(t, json.NewDecoder(rw.Body).Decode(&page))
		require.Len(t, page.Items, 1)
		assert.Equal(t, "T-3", page.Items[0].ID)
	})

	t.Run("should return 400 for an unparseable cutoff", func(t *testing.T) {
		h := handlers.NewTaskHandler(log.NewNoop(), mocks.NewTaskService(t))
		rw := do(h.List, http.MethodGet, "/api/tasks?due_before=someday", "", nil)

		assert.Equal(t, http.StatusBadRequest, rw.Code)
		assert.Equal(t, "due_before", decodeError(t, rw).Field)
	})
}

func TestTaskHandlerCommands(t *testing.T) {
	type testCase struct {
		Description  string
		Handler      func(h *handlers.TaskHandler) http.HandlerFunc
		Method       string
		Body         string
		Vars         map[string]string
		ExpectStatus int
		ExpectCode   string
		Setup        func(svc *mocks.TaskService)
	}

	blocked := task.Task{ID: "T-1", Status: task.StatusBlocked, Barriers: []string{"review"}}

	testCases := []testCase{
		{
			Description:  "status update returns the updated task",
			Handler:      func(h *handlers.TaskHandler) http.HandlerFunc { return h.UpdateStatus },
			Method:       http.MethodPatch,
			Body:         `{"status": "in_progress"}`,
			Vars:         map[string]string{"id": "T-2"},
			ExpectStatus: http.StatusOK,
			Setup: func(svc *mocks.TaskService) {
				svc.EXPECT().UpdateStatus(mock.Anything, "T-2", "in_progress").Return(task.Task{ID: "T-2", Status: task.StatusInProgress}, nil)
			},
		},
		{
			Description:  "status update with an unknown status is a bad request",
			Handler:      func(h *handlers.TaskHandler) http.HandlerFunc { return h.UpdateStatus },
			Method:       http.MethodPatch,
			Body:         `{"status": "paused"}`,
			Vars:         map[string]string{"id": "T-2"},
			ExpectStatus: http.StatusBadRequest,
			ExpectCode:   "invalid_parameter",
			Setup: func(svc *mocks.TaskService) {
				svc.EXPECT().UpdateStatus(mock.Anything, "T-2", "paused").Return(task.Task{}, query.InvalidParameterError{Field: "status", Value: "paused"})
			},
		},
		{
			Description:  "leaving blocked with barriers left is a conflict",
			Handler:      func(h *handlers.TaskHandler) http.HandlerFunc { return h.UpdateStatus },
			Method:       http.MethodPatch,
			Body:         `{"status": "done"}`,
			Vars:         map[string]string{"id": "T-1"},
			ExpectStatus: http.StatusConflict,
			ExpectCode:   "conflict",
			Setup: func(svc *mocks.TaskService) {
				svc.EXPECT().UpdateStatus(mock.Anything, "T-1", "done").Return(task.Task{}, task.ConflictError{TaskID: "T-1", Reason: "task still has barriers"})
			},
		},
		{
			Description:  "malformed body is rejected before the service is called",
			Handler:      func(h *handlers.TaskHandler) http.HandlerFunc { return h.UpdateStatus },
			Method:       http.MethodPatch,
			Body:         `status=done`,
			Vars:         map[string]string{"id": "T-1"},
			ExpectStatus: http.StatusBadRequest,
			ExpectCode:   "invalid_body",
		},
		{
			Description:  "adding a barrier blocks the task",
			Handler:      func(h *handlers.TaskHandler) http.HandlerFunc { return h.AddBarrier },
			Method:       http.MethodPost,
			Body:         `{"barrier": "review"}`,
			Vars:         map[string]string{"id": "T-1"},
			ExpectStatus: http.StatusOK,
			Setup: func(svc *mocks.TaskService) {
				svc.EXPECT().AddBarrier(mock.Anything, "T-1", "review").Return(blocked, nil)
			},
		},
		{
			Description:  "adding a barrier to an unknown task is not found",
			Handler:      func(h *handlers.TaskHandler) http.HandlerFunc { return h.AddBarrier },
			Method:       http.MethodPost,
			Body:         `{"barrier": "review"}`,
			Vars:         map[string]string{"id": "T-404"},
			ExpectStatus: http.StatusNotFound,
			ExpectCode:   "not_found",
			Setup: func(svc *mocks.TaskService) {
				svc.EXPECT().AddBarrier(mock.Anything, "T-404", "review").Return(task.Task{}, task.NotFoundError{ID: "T-404"})
			},
		},
		{
			Description:  "removing an unknown barrier is not found",
			Handler:      func(h *handlers.TaskHandler) http.HandlerFunc { return h.RemoveBarrier },
			Method:       http.MethodDelete,
			Vars:         map[string]string{"id": "T-1", "barrier": "lunch"},
			ExpectStatus: http.StatusNotFound,
			ExpectCode:   "not_found",
			Setup: func(svc *mocks.TaskService) {
				svc.EXPECT().RemoveBarrier(mock.Anything, "T-1", "lunch").Return(task.Task{}, task.BarrierNotFoundError{TaskID: "T-1", Barrier: "lunch"})
			},
		},
		{
			Description:  "reset failures are internal errors",
			Handler:      func(h *handlers.TaskHandler) http.HandlerFunc { return h.Reset },
			Method:       http.MethodPost,
			ExpectStatus: http.StatusInternalServerError,
			ExpectCode:   "internal",
			Setup: func(svc *mocks.TaskService) {
				svc.EXPECT().Reset(mock.Anything).Return(errors.New("source vanished"))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			svc := mocks.NewTaskService(t)
			if tc.Setup != nil {
				tc.Setup(svc)
			}

			h := handlers.NewTaskHandler(log.NewNoop(), svc)
			rw := do(tc.Handler(h), tc.Method, "/api/tasks", tc.Body, tc.Vars)

			assert.Equal(t, tc.ExpectStatus, rw.Code)
			if tc.ExpectCode != "" {
				assert.Equal(t, tc.ExpectCode, decodeError(t, rw).Code)
			}
		})
	}
}

func TestTaskHandlerGet(t *testing.T) {
	svc := mocks.NewTaskService(t)
	svc.EXPECT().Get(mock.Anything, "t-5").Return(task.Task{ID: "T-5", Title: "Write docs", Priority: 2, Status: task.StatusTodo, Barriers: []string{}}, nil)

	h := handlers.NewTaskHandler(log.NewNoop(), svc)
	rw := do(h.Get, http.MethodGet, "/api/tasks/t-5", "", map[string]string{"id": "t-5"})

	require.Equal(t, http.StatusOK, rw.Code)
	got := decodeTask(t, rw)
	assert.Equal(t, "T-5", got.ID)
	assert.Nil(t, got.DueDate)
	assert.JSONEq(t, `{"id":"T-5","title":"Write docs","description":"","assignee":"","priority":2,"status":"todo","due_date":null,"barriers":[]}`,
		mustJSON(t, got))
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestTaskHandlerEcho(t *testing.T) {
	type testCase struct {
		Description   string
		ContentType   string
		Body          string
		ExpectStatus  int
		ExpectBody    string
		ExpectMessage string
	}

	testCases := []testCase{
		{
			Description:  "echoes the task verbatim",
			ContentType:  "application/json",
			Body:         `{"task": "   Task with   multiple   spaces   "}`,
			ExpectStatus: http.StatusOK,
			ExpectBody:   `{"received": "   Task with   multiple   spaces   "}`,
		},
		{
			Description:  "accepts a charset parameter and an empty task",
			ContentType:  "application/json; charset=utf-8",
			Body:         `{"task": ""}`,
			ExpectStatus: http.StatusOK,
			ExpectBody:   `{"received": ""}`,
		},
		{
			Description:  "keeps unicode and escapes",
			ContentType:  "application/json",
			Body:         `{"task": "naïve \"quoted\"\nline ✓"}`,
			ExpectStatus: http.StatusOK,
			ExpectBody:   `{"received": "naïve \"quoted\"\nline ✓"}`,
		},
		{
			Description:   "rejects non JSON content types",
			ContentType:   "application/x-www-form-urlencoded",
			Body:          `task=hello`,
			ExpectStatus:  http.StatusBadRequest,
			ExpectMessage: "json",
		},
		{
			Description:   "rejects a missing task",
			ContentType:   "application/json",
			Body:          `{"other_field": "value"}`,
			ExpectStatus:  http.StatusBadRequest,
			ExpectMessage: "task",
		},
		{
			Description:   "rejects non string tasks",
			ContentType:   "application/json",
			Body:          `{"task": 123}`,
			ExpectStatus:  http.StatusBadRequest,
			ExpectMessage: "string",
		},
		{
			Description:   "rejects a null task",
			ContentType:   "application/json",
			Body:          `{"task": null}`,
			ExpectStatus:  http.StatusBadRequest,
			ExpectMessage: "string",
		},
		{
			Description:   "rejects bodies that are not objects",
			ContentType:   "application/json",
			Body:          `["task"]`,
			ExpectStatus:  http.StatusBadRequest,
			ExpectMessage: "object",
		},
		{
			Description:   "rejects malformed JSON",
			ContentType:   "application/json",
			Body:          `{"task": "unterminated`,
			ExpectStatus:  http.StatusBadRequest,
			ExpectMessage: "json",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			h := handlers.NewTaskHandler(log.NewNoop(), mocks.NewTaskService(t))

			req := httptest.NewRequest(http.MethodPost, "/task", strings.NewReader(tc.Body))
			req.Header.Set("Content-Type", tc.ContentType)
			rw := httptest.NewRecorder()
			h.Echo(rw, req)

			assert.Equal(t, tc.ExpectStatus, rw.Code)
			if tc.ExpectBody != "" {
				assert.JSONEq(t, tc.ExpectBody, rw.Body.String())
				return
			}

			var resp handlers.EchoErrorResponse
			require.NoError(t, json.NewDecoder(rw.Body).Decode(&resp))
			assert.Equal(t, "Bad Request", resp.Error)
			assert.Contains(t, strings.ToLower(resp.Message), tc.ExpectMessage)
		})
	}
}
