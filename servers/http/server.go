package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
	"time"

	httpAdapter "github.com/gruzdev-dev/game-store/adapters/http"
	"github.com/gruzdev-dev/game-store/configs"
	_ "github.com/gruzdev-dev/game-store/docs"
	"github.com/gruzdev-dev/game-store/pkg/metrics"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	srv *nethttp.Server
	log *zap.Logger
}

func NewServer(
	cfg *configs.Config,
	handler *httpAdapter.Handler,
	mw *httpAdapter.Middleware,
	m *metrics.Metrics,
	tp *sdktrace.TracerProvider,
	log *zap.Logger,
) *Server {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(nethttp.MethodGet)

	router.HandleFunc("/readyz", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(nethttp.MethodGet)

	router.Handle("/metrics", m.Handler()).Methods(nethttp.MethodGet)
	router.PathPrefix("/api-docs/").Handler(httpSwagger.WrapHandler)

	api := router.NewRoute().Subrouter()
	api.Use(mw.Observe, mw.Recover)
	handler.RegisterRoutes(api)

	return &Server{
		srv: &nethttp.Server{
			Addr:              cfg.HTTPAddr(),
			Handler:           otelhttp.NewHandler(router, "http.server", otelhttp.WithTracerProvider(tp)),
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log.With(zap.String("component", "http_server")),
	}
}

// Handler exposes the fully wired router, tracing included.
func (s *Server) Handler() nethttp.Handler {
	return s.srv.Handler
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	serverErrors := make(chan error, 1)
	go func() {
		s.log.Info("starting http server", zap.String("addr", s.srv.Addr))
		serverErrors <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		s.log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server forced to shutdown: %w", err)
		}
	}

	s.log.Info("http server exited")
	return nil
}
