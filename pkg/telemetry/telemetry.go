// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Config is read from the environment by LoadConfig.
type Config struct {
	Endpoint         string `env:"MEALS_OTEL_ENDPOINT"`
	Enabled          bool   `env:"MEALS_OTEL_ENABLED" envDefault:"true"`
	ServiceName      string `env:"MEALS_OTEL_SERVICE_NAME" envDefault:"dashboard"`
	ServiceNamespace string `env:"MEALS_OTEL_SERVICE_NAMESPACE" envDefault:"wmo.ui.web"`
	Hostname         string `env:"WEBSITE_HOSTNAME" envDefault:"unknown"`
}

// ShutdownFunc flushes and stops tracing.
type ShutdownFunc func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// LoadConfig parses the telemetry environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("invalid telemetry environment: %w", err)
	}
	return cfg, nil
}

// Active reports whether cfg enables export.
func (c Config) Active() bool {
	return c.Enabled && c.Endpoint != ""
}

// InstanceID formats the service.instance.id attribute.
func InstanceID(hostname string, pid int) string {
	if hostname == "" {
		hostname = "unknown"
	}
	return fmt.Sprintf("%s.pid-%d", hostname, pid)
}

// Setup installs a global tracer provider from the environment.
func Setup(ctx context.Context, serviceVersion string) (ShutdownFunc, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return noopShutdown, err
	}
	return SetupWithConfig(ctx, cfg, serviceVersion)
}

// SetupWithConfig installs a global tracer provider from cfg.
func SetupWithConfig(ctx context.Context, cfg Config, serviceVersion string) (ShutdownFunc, error) {
	if !cfg.Active() {
		slog.Debug("tracing disabled", "enabled", cfg.Enabled, "endpointSet", cfg.Endpoint != "")
		return noopShutdown, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(cfg.Endpoint),
	)
	if err != nil {
		return noopShutdown, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := NewResource(ctx, cfg, serviceVersion)
	if err != nil {
		return noopShutdown, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.AlwaysSample())),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	slog.Info("tracing enabled",
		"endpoint", cfg.Endpoint,
		"service", cfg.ServiceName,
		"namespace", cfg.ServiceNamespace)

	return tp.Shutdown, nil
}

// NewResource describes this process to the tracing backend.
func NewResource(ctx context.Context, cfg Config, serviceVersion string) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceNamespaceKey.String(cfg.ServiceNamespace),
			semconv.ServiceVersion(serviceVersion),
			semconv.ServiceInstanceIDKey.String(InstanceID(cfg.Hostname, os.Getpid())),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}
	return res, nil
}
