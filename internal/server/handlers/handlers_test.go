package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/goto/screener/internal/server/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func do(h http.HandlerFunc, method, target, body string, vars map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}

	rw := httptest.NewRecorder()
	h.ServeHTTP(rw, req)
	return rw
}

func decodeError(t *testing.T, rw *httptest.ResponseRecorder) handlers.ErrorResponse {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rw.Body).Decode(&resp))
	return resp
}

func TestNotFoundHandler(t *testing.T) {
	rw := do(handlers.NotFound, http.MethodGet, "/xxx", "", nil)

	assert.Equal(t, http.StatusNotFound, rw.Code)
	assert.Equal(t, "application/json", rw.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"not_found","reason":"no matching route was found"}`, rw.Body.String())
}

func TestMethodNotAllowedHandler(t *testing.T) {
	rw := do(handlers.MethodNotAllowed, http.MethodPost, "/health", "", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, rw.Code)
	assert.JSONEq(t, `{"code":"method_not_allowed","reason":"method is not allowed"}`, rw.Body.String())
}
