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

// Package header provides the kind, API version and metadata fields shared
// by serialized meal catalog documents.
//
// A header is embedded inline so it serializes as top-level keys:
//
//	apiVersion: meals.nvidia.com/v1
//	kind: MealCatalog
//	metadata:
//	  timestamp: "2025-12-30T10:30:00Z"
//	  version: v1.0.0
//	meals:
//	  - id: 1
//	    ...
//
// All header fields are optional when reading, so a bare list of meals is a
// valid document. When kind or apiVersion is present it must match.
package header
