package grpc

import (
	"context"
	"fmt"
	"net"

	grpcAdapter "github.com/gruzdev-dev/game-store/adapters/grpc"
	"github.com/gruzdev-dev/game-store/configs"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	cfg        *configs.Config
	grpcServer *grpc.Server
	health     *health.Server
	log        *zap.Logger
}

func NewServer(cfg *configs.Config, log *zap.Logger) *Server {
	log = log.With(zap.String("component", "grpc_server"))

	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcAdapter.RecoveryInterceptor(log),
			grpcAdapter.LoggingInterceptor(log),
		),
	}

	s := grpc.NewServer(opts...)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(s, hs)
	reflection.Register(s)

	return &Server{
		cfg:        cfg,
		grpcServer: s,
		health:     hs,
		log:        log,
	}
}

func (s *Server) Start(ctx context.Context) error {
	addr := s.cfg.GRPCAddr()
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve marks the service healthy and serves on lis until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	s.log.Info("starting grpc server", zap.String("addr", lis.Addr().String()))
	errCh := make(chan error, 1)
	go func() {
		if err := s.grpcServer.Serve(lis); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.Stop()
		return nil
	case err := <-errCh:
		return fmt.Errorf("gRPC server error: %w", err)
	}
}

func (s *Server) Stop() {
	s.log.Info("stopping grpc server")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
