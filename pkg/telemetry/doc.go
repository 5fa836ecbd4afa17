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

// Package telemetry configures OpenTelemetry tracing for the catalog server.
//
// Tracing is opt-in. With MEALS_OTEL_ENDPOINT unset, or MEALS_OTEL_ENABLED
// set to false, Setup installs nothing and returns a no-op shutdown.
// Otherwise spans are batched to the OTLP/HTTP endpoint and W3C trace
// context is propagated.
//
//	shutdown, err := telemetry.Setup(ctx, version)
//	if err != nil {
//	    return err
//	}
//	defer shutdown(context.Background())
//
// Every span carries service.name, service.namespace, service.version and
// service.instance.id. The instance id is "<WEBSITE_HOSTNAME>.pid-<pid>",
// with "unknown" when the host name is not set.
package telemetry
