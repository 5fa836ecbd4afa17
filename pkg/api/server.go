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

package api

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NVIDIA/meal-catalog/pkg/catalog"
	"github.com/NVIDIA/meal-catalog/pkg/defaults"
	"github.com/NVIDIA/meal-catalog/pkg/logging"
	"github.com/NVIDIA/meal-catalog/pkg/server"
	"github.com/NVIDIA/meal-catalog/pkg/telemetry"
)

const (
	name           = "mealsd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/meal-catalog/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve loads the catalog from source, then runs the API server until ctx
// is canceled or the process is signaled. The server does not start when
// the catalog fails to load.
func Serve(ctx context.Context, source string) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	shutdownTracing, err := telemetry.Setup(ctx, version)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaults.TelemetryShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("tracing shutdown failed", "error", err)
		}
	}()

	loadCtx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
	store, err := catalog.Load(loadCtx, source)
	cancel()
	if err != nil {
		slog.Error("catalog load failed", "error", err)
		return err
	}

	cfg := server.NewConfig()
	h, err := NewHandler(store,
		WithCacheMaxAge(cfg.CacheMaxAge),
		WithIdentity(name, version),
	)
	if err != nil {
		return err
	}

	s := server.New(
		server.WithConfig(cfg),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(h.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
