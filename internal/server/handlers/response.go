package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/salt/log"
	"github.com/goto/screener/core/product"
	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/stock"
	"github.com/goto/screener/core/task"
)

const (
	codeInvalidParameter = "invalid_parameter"
	codeNotFound         = "not_found"
	codeConflict         = "conflict"
	codeInvalidBody      = "invalid_body"
	codeMethodNotAllowed = "method_not_allowed"
	codeTooManyRequests  = "too_many_requests"
	codeInternal         = "internal"
)

type ErrorResponse struct {
	Code   string `json:"code"`
	Reason string `json:"reason"`
	Field  string `json:"field,omitempty"`
	Value  string `json:"value,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		_, _ = w.Write([]byte("error encoding response to json"))
	}
}

func WriteJSONError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Code: code, Reason: msg})
}

func NotFound(w http.ResponseWriter, _ *http.Request) {
	WriteJSONError(w, http.StatusNotFound, codeNotFound, "no matching route was found")
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	WriteJSONError(w, http.StatusMethodNotAllowed, codeMethodNotAllowed, "method is not allowed")
}

func TooManyRequests(w http.ResponseWriter, _ *http.Request) {
	WriteJSONError(w, http.StatusTooManyRequests, codeTooManyRequests, "too many requests, try again later")
}

func internalServerError(w http.ResponseWriter, logger log.Logger, msg string, err error) {
	ref := time.Now().Unix()

	logger.Error(msg, "ref", ref, "err", err)
	WriteJSONError(w, http.StatusInternalServerError, codeInternal, fmt.Sprintf(
		"%s - ref (%d)",
		http.StatusText(http.StatusInternalServerError),
		ref,
	))
}

// writeError translates a service error into its HTTP response. Anything not
// recognised is logged and reported as a 500 with a correlation ref.
func writeError(w http.ResponseWriter, logger log.Logger, msg string, err error) {
	var (
		invalidParam query.InvalidParameterError
		conflict     task.ConflictError
	)
	switch {
	case errors.As(err, &invalidParam):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Code:   codeInvalidParameter,
			Reason: invalidParam.Reason,
			Field:  invalidParam.Field,
			Value:  invalidParam.Value,
		})
	case isNotFound(err):
		WriteJSONError(w, http.StatusNotFound, codeNotFound, err.Error())
	case errors.As(err, &conflict):
		WriteJSONError(w, http.StatusConflict, codeConflict, conflict.Error())
	default:
		internalServerError(w, logger, msg, err)
	}
}

func isNotFound(err error) bool {
	return errors.As(err, new(stock.NotFoundError)) ||
		errors.As(err, new(product.NotFoundError)) ||
		errors.As(err, new(task.NotFoundError)) ||
		errors.As(err, new(task.BarrierNotFoundError))
}

func bodyParserErrorMsg(err error) string {
	return fmt.Sprintf("error parsing request body: %v", err)
}
