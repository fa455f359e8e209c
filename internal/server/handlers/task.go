package handlers

//go:generate mockery --name=TaskService -r --case underscore --with-expecter --structname TaskService --filename task_service.go --output=./mocks
import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/task"
)

type TaskService interface {
	List(ctx context.Context, flt task.Filter) (query.ResultPage[task.Task], error)
	Get(ctx context.Context, id string) (task.Task, error)
	UpdateStatus(ctx context.Context, id, status string) (task.Task, error)
	AddBarrier(ctx context.Context, id, barrier string) (task.Task, error)
	RemoveBarrier(ctx context.Context, id, barrier string) (task.Task, error)
	Reset(ctx context.Context) error
}

type TaskHandler struct {
	logger  log.Logger
	service TaskService
}

func NewTaskHandler(logger log.Logger, service TaskService) *TaskHandler {
	return &TaskHandler{logger: logger, service: service}
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type BarrierRequest struct {
	Barrier string `json:"barrier"`
}

type EchoErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	flt, err := task.FilterFromParams(r.URL.Query())
	if err != nil {
		writeError(w, h.logger, "error parsing task filter", err)
		return
	}

	page, err := h.service.List(r.Context(), flt)
	if err != nil {
		writeError(w, h.logger, "error listing tasks", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, "error getting task", err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var payload UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, codeInvalidBody, bodyParserErrorMsg(err))
		return
	}

	t, err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], payload.Status)
	if err != nil {
		writeError(w, h.logger, "error updating task status", err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (h *TaskHandler) AddBarrier(w http.ResponseWriter, r *http.Request) {
	var payload BarrierRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		WriteJSONError(w, http.StatusBadRequest, codeInvalidBody, bodyParserErrorMsg(err))
		return
	}

	t, err := h.service.AddBarrier(r.Context(), mux.Vars(r)["id"], payload.Barrier)
	if err != nil {
		writeError(w, h.logger, "error adding task barrier", err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (h *TaskHandler) RemoveBarrier(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	t, err := h.service.RemoveBarrier(r.Context(), vars["id"], vars["barrier"])
	if err != nil {
		writeError(w, h.logger, "error removing task barrier", err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

func (h *TaskHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Reset(r.Context()); err != nil {
		writeError(w, h.logger, "error resetting tasks", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// Echo returns the posted task string exactly as received.
func (h *TaskHandler) Echo(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeEchoError(w, "Content-Type must be application/json")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeEchoError(w, bodyParserErrorMsg(err))
		return
	}

	resp, err := task.Echo(body)
	if err != nil {
		writeEchoError(w, echoErrorMessage(err))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func echoErrorMessage(err error) string {
	if errors.Is(err, task.ErrEchoNotObject) ||
		errors.Is(err, task.ErrEchoMissingTask) ||
		errors.Is(err, task.ErrEchoTaskType) {
		return err.Error()
	}
	return "invalid JSON: " + err.Error()
}

func writeEchoError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, EchoErrorResponse{
		Error:   http.StatusText(http.StatusBadRequest),
		Message: msg,
	})
}
