package handlers

//go:generate mockery --name=Reloader -r --case underscore --with-expecter --structname Reloader --filename reloader.go --output=./mocks
import (
	"context"
	"net/http"
	"time"

	"github.com/goto/salt/log"
)

type Reloader interface {
	ReloadAll(ctx context.Context) error
	LastReload() time.Time
}

type SystemHandler struct {
	logger   log.Logger
	reloader Reloader
}

func NewSystemHandler(logger log.Logger, reloader Reloader) *SystemHandler {
	return &SystemHandler{logger: logger, reloader: reloader}
}

type ReloadResponse struct {
	Status     string    `json:"status"`
	ReloadedAt time.Time `json:"reloaded_at"`
}

func (h *SystemHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Reload re-reads every dataset from its source. A failure keeps the
// previously loaded records live.
func (h *SystemHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.reloader.ReloadAll(r.Context()); err != nil {
		internalServerError(w, h.logger, "error reloading datasets", err)
		return
	}

	writeJSON(w, http.StatusOK, ReloadResponse{
		Status:     "reloaded",
		ReloadedAt: h.reloader.LastReload().UTC(),
	})
}
