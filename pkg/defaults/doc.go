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

// Package defaults holds the timeout and cache constants shared across the
// catalog service.
//
// # Categories
//
//   - Catalog loading: startup load and ConfigMap reads
//   - Request handling: per-request timeout and cache lifetime
//   - HTTP server: read, write, idle and shutdown
//   - HTTP client: fetching a catalog from a URL
//   - Telemetry: span flush on exit
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CatalogLoadTimeout)
//	defer cancel()
package defaults
