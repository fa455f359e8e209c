package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	saltmux "github.com/goto/salt/mux"
	serverhandlers "github.com/goto/screener/internal/server/handlers"
	"github.com/goto/screener/internal/server/middleware"
	"github.com/goto/screener/pkg/statsd"
	"github.com/goto/screener/pkg/telemetry"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/cors"
	"golang.org/x/time/rate"
)

type Config struct {
	Host    string `yaml:"host" mapstructure:"host" default:"0.0.0.0"`
	Port    int    `yaml:"port" mapstructure:"port" default:"8080"`
	BaseUrl string `yaml:"baseurl" mapstructure:"baseurl" default:"localhost:8080"`

	CORS        CORSConfig        `yaml:"cors" mapstructure:"cors"`
	AdminReload AdminReloadConfig `yaml:"admin_reload" mapstructure:"admin_reload"`
}

func (cfg Config) addr() string { return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port) }

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// AdminReloadConfig throttles the dataset reload endpoint. A zero rate
// disables the limit.
type AdminReloadConfig struct {
	RatePerMinute float64 `yaml:"rate_per_minute" mapstructure:"rate_per_minute" default:"6"`
	Burst         int     `yaml:"burst" mapstructure:"burst" default:"1"`
}

func (cfg AdminReloadConfig) limiter() *rate.Limiter {
	if cfg.RatePerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(cfg.RatePerMinute/60), max(cfg.Burst, 1))
}

type Deps struct {
	Logger         log.Logger
	NewRelic       *newrelic.Application
	StatsdReporter *statsd.Reporter
	HTTPMetrics    *telemetry.HTTPMetrics

	StockService   serverhandlers.StockService
	ProductService serverhandlers.ProductService
	TaskService    serverhandlers.TaskService
	Reloader       serverhandlers.Reloader
}

// NewHandler builds the complete HTTP handler: routes, middleware, CORS and
// response compression.
func NewHandler(cfg Config, deps Deps) http.Handler {
	chain := []mux.MiddlewareFunc{
		middleware.RequestID,
		middleware.NewRelic(deps.NewRelic),
		middleware.Telemetry(deps.HTTPMetrics),
		middleware.StatsD(deps.StatsdReporter),
		middleware.Logger(deps.Logger),
	}

	router := mux.NewRouter()
	router.Use(chain...)

	registerRoutes(router, cfg, deps)

	// The router skips its middleware when no route matches.
	router.NotFoundHandler = wrap(router.NotFoundHandler, chain)
	router.MethodNotAllowedHandler = wrap(router.MethodNotAllowedHandler, chain)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader, "Content-Disposition"},
	})

	return handlers.CompressHandler(
		handlers.RecoveryHandler(handlers.PrintRecoveryStack(false))(c.Handler(router)),
	)
}

// wrap applies mws so the first one sees the request first, the same
// order router.Use gives.
func wrap(h http.Handler, mws []mux.MiddlewareFunc) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

func registerRoutes(router *mux.Router, cfg Config, deps Deps) {
	var (
		stockHandler   = serverhandlers.NewStockHandler(deps.Logger, deps.StockService)
		productHandler = serverhandlers.NewProductHandler(deps.Logger, deps.ProductService)
		taskHandler    = serverhandlers.NewTaskHandler(deps.Logger, deps.TaskService)
		systemHandler  = serverhandlers.NewSystemHandler(deps.Logger, deps.Reloader)
	)

	router.Path("/health").Methods(http.MethodGet).HandlerFunc(systemHandler.Health)
	router.Path("/screener").Methods(http.MethodGet).HandlerFunc(stockHandler.Screener)
	router.Path("/stocks/{ticker}").Methods(http.MethodGet).HandlerFunc(stockHandler.Get)
	router.Path("/task").Methods(http.MethodPost).HandlerFunc(taskHandler.Echo)

	api := router.PathPrefix("/api").Subrouter()

	api.Path("/stocks").Methods(http.MethodGet).HandlerFunc(stockHandler.List)
	api.Path("/stocks/{ticker}").Methods(http.MethodGet).HandlerFunc(stockHandler.Get)
	api.Path("/screen").Methods(http.MethodPost).HandlerFunc(stockHandler.Screen)
	api.Path("/stats").Methods(http.MethodGet).HandlerFunc(stockHandler.Stats)
	api.Path("/sectors").Methods(http.MethodGet).HandlerFunc(stockHandler.Sectors)
	api.Path("/export/stocks").Methods(http.MethodGet).HandlerFunc(stockHandler.Export)

	api.Path("/products").Methods(http.MethodGet).HandlerFunc(productHandler.List)
	api.Path("/products/{id}").Methods(http.MethodGet).HandlerFunc(productHandler.Get)

	api.Path("/tasks").Methods(http.MethodGet).HandlerFunc(taskHandler.List)
	api.Path("/tasks/reset").Methods(http.MethodPost).HandlerFunc(taskHandler.Reset)
	api.Path("/tasks/{id}").Methods(http.MethodGet).HandlerFunc(taskHandler.Get)
	api.Path("/tasks/{id}/status").Methods(http.MethodPatch).HandlerFunc(taskHandler.UpdateStatus)
	api.Path("/tasks/{id}/barriers").Methods(http.MethodPost).HandlerFunc(taskHandler.AddBarrier)
	api.Path("/tasks/{id}/barriers/{barrier}").Methods(http.MethodDelete).HandlerFunc(taskHandler.RemoveBarrier)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RateLimit(cfg.AdminReload.limiter(), serverhandlers.TooManyRequests))
	admin.Path("/reload").Methods(http.MethodPost).HandlerFunc(systemHandler.Reload)

	router.NotFoundHandler = http.HandlerFunc(serverhandlers.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(serverhandlers.MethodNotAllowed)
}

func Serve(ctx context.Context, cfg Config, deps Deps) error {
	logger := deps.Logger

	logger.Info("starting server", "http_addr", cfg.addr())
	if err := saltmux.Serve(
		ctx,
		saltmux.WithHTTPTarget(cfg.addr(), &http.Server{
			Handler:      NewHandler(cfg, deps),
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}),
		saltmux.WithGracePeriod(5*time.Second),
	); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("mux serve error", "err", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
