package server_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goto/salt/log"
	"github.com/goto/screener/core/stock"
	"github.com/goto/screener/core/task"
	"github.com/goto/screener/internal/server"
	"github.com/goto/screener/internal/server/handlers/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type routerFixture struct {
	stocks   *mocks.StockService
	products *mocks.ProductService
	tasks    *mocks.TaskService
	reloader *mocks.Reloader
	handler  http.Handler
}

func newRouter(t *testing.T, cfg server.Config) routerFixture {
	f := routerFixture{
		stocks:   mocks.NewStockService(t),
		products: mocks.NewProductService(t),
		tasks:    mocks.NewTaskService(t),
		reloader: mocks.NewReloader(t),
	}
	f.handler = server.NewHandler(cfg, server.Deps{
		Logger:         log.NewNoop(),
		StockService:   f.stocks,
		ProductService: f.products,
		TaskService:    f.tasks,
		Reloader:       f.reloader,
	})
	return f
}

func (f routerFixture) do(req *http.Request) *httptest.ResponseRecorder {
	rw := httptest.NewRecorder()
	f.handler.ServeHTTP(rw, req)
	return rw
}

func TestRoutes(t *testing.T) {
	t.Run("health", func(t *testing.T) {
		f := newRouter(t, server.Config{})
		rw := f.do(httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rw.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rw.Body.String())
		assert.NotEmpty(t, rw.Header().Get("X-Request-Id"))
	})

	t.Run("unknown routes are json 404s", func(t *testing.T) {
		f := newRouter(t, server.Config{})
		rw := f.do(httptest.NewRequest(http.MethodGet, "/api/nothing", nil))

		assert.Equal(t, http.StatusNotFound, rw.Code)
		assert.JSONEq(t, `{"code":"not_found","reason":"no matching route was found"}`, rw.Body.String())
	})

	t.Run("unmatched requests still pass the middleware chain", func(t *testing.T) {
		type testCase struct {
			Method   string
			Path     string
			Incoming string
			Code     int
		}

		testCases := []testCase{
			{Method: http.MethodGet, Path: "/api/nothing", Code: http.StatusNotFound},
			{Method: http.MethodGet, Path: "/nothing", Incoming: "req-404", Code: http.StatusNotFound},
			{Method: http.MethodPut, Path: "/task", Code: http.StatusMethodNotAllowed},
			{Method: http.MethodDelete, Path: "/api/tasks", Incoming: "req-405", Code: http.StatusMethodNotAllowed},
		}

		f := newRouter(t, server.Config{})
		for _, tc := range testCases {
			req := httptest.NewRequest(tc.Method, tc.Path, nil)
			if tc.Incoming != "" {
				req.Header.Set("X-Request-Id", tc.Incoming)
			}
			rw := f.do(req)

			assert.Equal(t, tc.Code, rw.Code, tc.Path)
			if tc.Incoming != "" {
				assert.Equal(t, tc.Incoming, rw.Header().Get("X-Request-Id"), tc.Path)
			} else {
				assert.NotEmpty(t, rw.Header().Get("X-Request-Id"), tc.Path)
			}
		}
	})

	t.Run("wrong methods are json 405s", func(t *testing.T) {
		f := newRouter(t, server.Config{})
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			rw := f.do(httptest.NewRequest(method, "/task", nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rw.Code, method)
		}
	})

	t.Run("legacy and api stock paths share a handler", func(t *testing.T) {
		f := newRouter(t, server.Config{})
		f.stocks.EXPECT().GetByTicker(mock.Anything, "msft").Return(stock.Stock{Ticker: "MSFT"}, nil).Twice()

		assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodGet, "/stocks/msft", nil)).Code)
		assert.Equal(t, http.StatusOK, f.do(httptest.NewRequest(http.MethodGet, "/api/stocks/msft", nil)).Code)
	})

	t.Run("barrier names are path decoded", func(t *testing.T) {
		f := newRouter(t, server.Config{})
		f.tasks.EXPECT().RemoveBarrier(mock.Anything, "T-3", "waiting on data vendor").Return(taskFixture(), nil).Once()

		rw := f.do(httptest.NewRequest(http.MethodDelete, "/api/tasks/T-3/barriers/waiting%20on%20data%20vendor", nil))
		assert.Equal(t, http.StatusOK, rw.Code)
	})

	t.Run("admin reload is rate limited", func(t *testing.T) {
		f := newRouter(t, server.Config{AdminReload: server.AdminReloadConfig{RatePerMinute: 1, Burst: 1}})
		f.reloader.EXPECT().ReloadAll(mock.Anything).Return(nil).Once()
		f.reloader.EXPECT().LastReload().Return(time.Now()).Once()

		first := f.do(httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := f.do(httptest.NewRequest(http.MethodPost, "/api/admin/reload", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
	})

	t.Run("cross origin requests are allowed", func(t *testing.T) {
		f := newRouter(t, server.Config{CORS: server.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}})
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")

		rw := f.do(req)
		assert.Equal(t, "http://localhost:3000", rw.Header().Get("Access-Control-Allow-Origin"))
	})
}

func taskFixture() task.Task {
	return task.Task{ID: "T-3", Status: task.StatusTodo, Barriers: []string{}}
}
