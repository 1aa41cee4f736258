package configs

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	Service struct {
		Name string
		Env  string
	}
	HTTP struct {
		Port string
	}
	GRPC struct {
		Port string
	}
	Log struct {
		Level zapcore.Level
	}
	Tracing struct {
		Endpoint    string
		Insecure    bool
		SampleRatio float64
	}
}

func NewConfig() (*Config, error) {
	var cfg Config

	cfg.Service.Name = "game-store"
	if envName := os.Getenv("SERVICE_NAME"); envName != "" {
		cfg.Service.Name = envName
	}

	cfg.Service.Env = "dev"
	if envEnv := os.Getenv("ENV"); envEnv != "" {
		cfg.Service.Env = envEnv
	}

	if envPort := os.Getenv("HTTP_PORT"); envPort != "" {
		cfg.HTTP.Port = envPort
	} else {
		cfg.HTTP.Port = "3000"
	}

	if envGRPCPort := os.Getenv("GRPC_PORT"); envGRPCPort != "" {
		cfg.GRPC.Port = envGRPCPort
	} else {
		cfg.GRPC.Port = "9090"
	}

	cfg.Log.Level = zapcore.InfoLevel
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		level, err := zapcore.ParseLevel(envLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", envLevel, err)
		}
		cfg.Log.Level = level
	}

	if envEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); envEndpoint != "" {
		cfg.Tracing.Endpoint = envEndpoint
	}

	cfg.Tracing.Insecure = true
	if envInsecure := os.Getenv("OTEL_EXPORTER_OTLP_INSECURE"); envInsecure != "" {
		insecure, err := strconv.ParseBool(envInsecure)
		if err != nil {
			return nil, fmt.Errorf("invalid OTEL_EXPORTER_OTLP_INSECURE %q: %w", envInsecure, err)
		}
		cfg.Tracing.Insecure = insecure
	}

	cfg.Tracing.SampleRatio = 1
	if envRatio := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); envRatio != "" {
		ratio, err := strconv.ParseFloat(envRatio, 64)
		if err != nil || ratio < 0 || ratio > 1 {
			return nil, fmt.Errorf("invalid OTEL_TRACES_SAMPLER_ARG %q: must be a number in [0, 1]", envRatio)
		}
		cfg.Tracing.SampleRatio = ratio
	}

	return &cfg, nil
}

func (c *Config) HTTPAddr() string {
	return ":" + c.HTTP.Port
}

func (c *Config) GRPCAddr() string {
	return ":" + c.GRPC.Port
}
