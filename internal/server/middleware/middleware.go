package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/goto/screener/pkg/statsd"
	"github.com/goto/screener/pkg/telemetry"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/oklog/ulid/v2"
	"golang.org/x/time/rate"
)

const RequestIDHeader = "X-Request-Id"

type requestIDKey struct{}

// RequestIDFromContext returns the id assigned by RequestID, if any.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestID keeps an incoming X-Request-Id or assigns a fresh ULID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = ulid.Make().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func Logger(logger log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responseWriter(w)
			next.ServeHTTP(rw, r)

			logger.Info("handled request",
				"method", r.Method,
				"route", routeName(r),
				"status", rw.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", RequestIDFromContext(r.Context()),
			)
		})
	}
}

func StatsD(reporter *statsd.Reporter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if reporter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responseWriter(w)
			next.ServeHTTP(rw, r)

			route := routeName(r)
			reporter.Timing("http.response_time", time.Since(start)).
				Tag("method", r.Method).Tag("route", route).Publish()
			reporter.Incr("http.response_status").
				Tag("method", r.Method).Tag("route", route).Status(rw.statusCode).Publish()
		})
	}
}

func Telemetry(metrics *telemetry.HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if metrics == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responseWriter(w)
			next.ServeHTTP(rw, r)
			metrics.Record(r.Context(), r.Method, routeName(r), rw.statusCode, time.Since(start))
		})
	}
}

func NewRelic(app *newrelic.Application) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if app == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			txn := app.StartTransaction(r.Method + " " + routeName(r))
			defer txn.End()

			w = txn.SetWebResponse(w)
			txn.SetWebRequestHTTP(r)
			next.ServeHTTP(w, newrelic.RequestWithTransactionContext(r, txn))
		})
	}
}

// RateLimit rejects requests with the rejected handler once limiter runs
// out of tokens. A nil limiter lets everything through.
func RateLimit(limiter *rate.Limiter, rejected http.HandlerFunc) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if limiter == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				rejected(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// routeName is the matched route template, so /api/stocks/{ticker} is one
// series rather than one per ticker.
func routeName(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

func responseWriter(w http.ResponseWriter) *interceptedResponseWriter {
	if rw, ok := w.(*interceptedResponseWriter); ok {
		return rw
	}
	return &interceptedResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

type interceptedResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *interceptedResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}
