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

// Package server provides the HTTP server shared by the meal catalog
// binaries: routing, a common middleware chain, health and readiness
// probes, Prometheus metrics and graceful shutdown.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("mealsd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/meal/{id}": h.HandleMeal,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Handlers are registered with http.ServeMux patterns. When no "/" handler is
// supplied, a default one lists the routes as JSON.
//
// # Middleware
//
// Every registered handler runs inside, from outermost:
//
//	metrics -> tracing -> version -> request ID -> panic recovery -> rate limit -> logging
//
// /health, /ready and /metrics bypass the chain.
//
// # Configuration
//
// NewConfig reads the environment:
//
//	ADDRESS                listen address (default all interfaces)
//	PORT                   listen port (default 8000)
//	RATE_LIMIT             requests per second (default 100)
//	RATE_LIMIT_BURST       token bucket burst (default 200)
//	CACHE_MAX_AGE_SECONDS  Cache-Control max-age for catalog responses (default 300)
//	READ_TIMEOUT, WRITE_TIMEOUT, IDLE_TIMEOUT, SHUTDOWN_TIMEOUT  Go durations
//
// # Headers
//
// Requests may send X-Request-Id (UUID) and an Accept header of
// application/vnd.meals.v1+json. Responses carry X-Request-Id, X-API-Version
// and X-RateLimit-Limit/Remaining/Reset. A rate limited request gets 429 with
// Retry-After.
//
// # Errors
//
// All errors share one JSON shape:
//
//	{
//	  "code": "VALIDATION_FAILED",
//	  "message": "keyword must be at least 3 characters",
//	  "details": {"parameter": "keyword", "value": "ab", "minLength": 3},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2025-12-22T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes follow HTTPStatusFromCode: INVALID_REQUEST 400, NOT_FOUND 404,
// METHOD_NOT_ALLOWED 405, VALIDATION_FAILED 422, RATE_LIMIT_EXCEEDED 429,
// INTERNAL 500, SERVICE_UNAVAILABLE 503, TIMEOUT 504.
package server
