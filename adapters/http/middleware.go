package http

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gruzdev-dev/game-store/core/domain"
	"github.com/gruzdev-dev/game-store/pkg/logger"
	"github.com/gruzdev-dev/game-store/pkg/metrics"
	"github.com/gruzdev-dev/game-store/pkg/requestid"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Middleware struct {
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewMiddleware(log *zap.Logger, m *metrics.Metrics) *Middleware {
	return &Middleware{log: log, metrics: m}
}

// Observe tags the request with an id and a request-scoped logger, then
// records an access log line and request metrics once the handler returns.
func (m *Middleware) Observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rid := requestid.OrNew(r.Header.Get(requestid.Header))
		w.Header().Set(requestid.Header, rid)

		reqLog := m.log.With(zap.String("request_id", rid))
		if sc := trace.SpanContextFromContext(r.Context()); sc.IsValid() {
			reqLog = reqLog.With(
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}

		ctx := requestid.WithCtx(r.Context(), rid)
		ctx = logger.WithCtx(ctx, reqLog)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		route := routeTemplate(r)
		elapsed := time.Since(start)
		m.metrics.ObserveRequest(r.Method, route, rec.status, elapsed)

		reqLog.Info("http_request",
			zap.String("method", r.Method),
			zap.String("route", route),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Int64("duration_ms", elapsed.Milliseconds()),
		)
	})
}

// Recover turns a panicking handler into a 500 response.
func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				logger.FromCtx(r.Context(), m.log).Error("handler panic",
					zap.Any("panic", p),
					zap.ByteString("stack", debug.Stack()),
				)
				http.Error(w, domain.ErrInternal.Error(), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (w *statusRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func routeTemplate(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if tpl, err := route.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}
