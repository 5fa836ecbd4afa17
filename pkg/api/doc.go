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

// Package api serves the meal catalog over HTTP.
//
// Serve loads the catalog, wires the handlers into pkg/server and blocks
// until shutdown:
//
//	if err := api.Serve(ctx, os.Getenv("MEALS_CATALOG")); err != nil {
//	    log.Fatalf("server error: %v", err)
//	}
//
// # Endpoints
//
// Catalog endpoints (with rate limiting):
//   - GET /meal/{id}  - One meal by integer id, 404 when absent
//   - GET /search     - Keyword search, also served at /search/
//   - GET /           - HTML dashboard listing every meal
//   - GET /status     - HTML status page for uptime monitors
//
// System endpoints (no rate limiting):
//   - GET /health  - Liveness probe
//   - GET /ready   - Readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Search Parameters
//
//   - keyword: case-insensitive substring of the label, at least 3 characters
//   - max_results: non-negative integer, default 10
//
// Without keyword the first max_results meals are returned in catalog order.
//
//	curl "http://localhost:8000/search/?keyword=chicken&max_results=2"
//	{"results":[{"id":1,"label":"Chicken Vesuvio",...},{"id":2,...}]}
//
// Invalid parameters return 422 VALIDATION_FAILED in the shared error body.
//
// # Configuration
//
// Server settings come from pkg/server (PORT defaults to 8000), tracing from
// pkg/telemetry, and LOG_LEVEL sets verbosity. Version information is set at
// build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/meal-catalog/pkg/api.version=1.0.0'"
package api
