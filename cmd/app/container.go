package main

import (
	httpAdapter "github.com/gruzdev-dev/game-store/adapters/http"
	"github.com/gruzdev-dev/game-store/adapters/storage/memory"
	"github.com/gruzdev-dev/game-store/configs"
	"github.com/gruzdev-dev/game-store/core/ports"
	"github.com/gruzdev-dev/game-store/core/services"
	"github.com/gruzdev-dev/game-store/pkg/logger"
	"github.com/gruzdev-dev/game-store/pkg/metrics"
	"github.com/gruzdev-dev/game-store/pkg/tracing"
	grpcServer "github.com/gruzdev-dev/game-store/servers/grpc"
	httpServer "github.com/gruzdev-dev/game-store/servers/http"

	"go.uber.org/dig"
)

func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []struct {
		constructor any
		opts        []dig.ProvideOption
	}{
		{constructor: configs.NewConfig},
		{constructor: logger.New},
		{constructor: metrics.New},
		{constructor: tracing.NewProvider},
		{constructor: memory.NewUserRepo, opts: []dig.ProvideOption{dig.As(new(ports.UserRepository))}},
		{constructor: memory.NewGameRepo, opts: []dig.ProvideOption{dig.As(new(ports.GameRepository))}},
		{constructor: services.NewUserService, opts: []dig.ProvideOption{dig.As(new(ports.UserService))}},
		{constructor: services.NewGameService, opts: []dig.ProvideOption{dig.As(new(ports.GameService))}},
		{constructor: httpAdapter.NewMiddleware},
		{constructor: httpAdapter.NewHandler},
		{constructor: httpServer.NewServer},
		{constructor: grpcServer.NewServer},
	}

	for _, p := range providers {
		if err := container.Provide(p.constructor, p.opts...); err != nil {
			return nil, err
		}
	}

	return container, nil
}
