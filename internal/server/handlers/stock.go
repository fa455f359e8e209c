package handlers

//go:generate mockery --name=StockService -r --case underscore --with-expecter --structname StockService --filename stock_service.go --output=./mocks
import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/stock"
	"github.com/goto/screener/internal/export"
)

type StockService interface {
	List(ctx context.Context, flt stock.Filter) (query.ResultPage[stock.Stock], error)
	Select(ctx context.Context, flt stock.Filter) ([]stock.Stock, error)
	GetByTicker(ctx context.Context, ticker string) (stock.Stock, error)
	Sectors(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (stock.Stats, error)
}

type StockHandler struct {
	logger  log.Logger
	service StockService
	now     func() time.Time
}

func NewStockHandler(logger log.Logger, service StockService) *StockHandler {
	return &StockHandler{
		logger:  logger,
		service: service,
		now:     time.Now,
	}
}

func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	flt, err := stock.FilterFromParams(r.URL.Query())
	if err != nil {
		writeError(w, h.logger, "error parsing stock filter", err)
		return
	}

	page, err := h.service.List(r.Context(), flt)
	if err != nil {
		writeError(w, h.logger, "error listing stocks", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Screen is List with the criteria carried in a JSON object body.
func (h *StockHandler) Screen(w http.ResponseWriter, r *http.Request) {
	params, err := decodeParams(r.Body)
	if err != nil {
		var invalidParam query.InvalidParameterError
		if errors.As(err, &invalidParam) {
			writeError(w, h.logger, "error parsing screen body", err)
			return
		}
		WriteJSONError(w, http.StatusBadRequest, codeInvalidBody, bodyParserErrorMsg(err))
		return
	}

	flt, err := stock.FilterFromParams(params)
	if err != nil {
		writeError(w, h.logger, "error parsing stock filter", err)
		return
	}

	page, err := h.service.List(r.Context(), flt)
	if err != nil {
		writeError(w, h.logger, "error screening stocks", err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Screener responds with a bare array of every matching stock.
func (h *StockHandler) Screener(w http.ResponseWriter, r *http.Request) {
	flt, err := stock.FilterFromParams(r.URL.Query())
	if err != nil {
		writeError(w, h.logger, "error parsing stock filter", err)
		return
	}

	stocks, err := h.service.Select(r.Context(), flt)
	if err != nil {
		writeError(w, h.logger, "error screening stocks", err)
		return
	}

	writeJSON(w, http.StatusOK, stocks)
}

func (h *StockHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	st, err := h.service.GetByTicker(r.Context(), ticker)
	if err != nil {
		writeError(w, h.logger, "error getting stock", err)
		return
	}

	writeJSON(w, http.StatusOK, st)
}

func (h *StockHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeError(w, h.logger, "error computing stock stats", err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func (h *StockHandler) Sectors(w http.ResponseWriter, r *http.Request) {
	sectors, err := h.service.Sectors(r.Context())
	if err != nil {
		writeError(w, h.logger, "error listing sectors", err)
		return
	}

	writeJSON(w, http.StatusOK, sectors)
}

func (h *StockHandler) Export(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	raw := params.Get("format")
	if err := query.ValidateOneOf("format", strings.ToLower(strings.TrimSpace(raw)), export.Formats...); err != nil {
		writeError(w, h.logger, "error parsing export format", err)
		return
	}
	format, _ := export.ParseFormat(raw)

	flt, err := stock.FilterFromParams(params)
	if err != nil {
		writeError(w, h.logger, "error parsing stock filter", err)
		return
	}

	stocks, err := h.service.Select(r.Context(), flt)
	if err != nil {
		writeError(w, h.logger, "error selecting stocks for export", err)
		return
	}

	var buf bytes.Buffer
	if err := export.Write(&buf, format, "stocks", export.StockColumns, stocks); err != nil {
		internalServerError(w, h.logger, "error rendering stock export", err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", `attachment; filename="`+format.FileName("stocks", h.now())+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("error writing stock export", "err", err)
	}
}

// decodeParams reads an optional JSON object body into query parameters.
func decodeParams(body io.Reader) (query.Params, error) {
	var payload map[string]interface{}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return query.Params{}, nil
		}
		return nil, err
	}
	return query.FlattenJSON(payload)
}
