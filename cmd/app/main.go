package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	grpcServer "github.com/gruzdev-dev/game-store/servers/grpc"
	httpServer "github.com/gruzdev-dev/game-store/servers/http"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Game Store API
// @version 1.0
// @description Users and video game inventory with stock-checked sales.
// @host localhost:3000
// @BasePath /
func main() {
	container, err := BuildContainer()
	if err != nil {
		log.Fatalf("Fatal error building container: %v", err)
	}

	err = container.Invoke(func(
		httpSrv *httpServer.Server,
		grpcSrv *grpcServer.Server,
		tp *sdktrace.TracerProvider,
		logger *zap.Logger,
	) error {
		defer func() { _ = logger.Sync() }()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("tracer shutdown failed", zap.Error(err))
			}
		}()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return httpSrv.Start(ctx)
		})

		g.Go(func() error {
			return grpcSrv.Start(ctx)
		})

		return g.Wait()
	})

	if err != nil {
		log.Fatalf("Application stopped with error: %v", err)
	}
}
