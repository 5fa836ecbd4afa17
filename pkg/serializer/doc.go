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

// Package serializer encodes and decodes catalog data in JSON, YAML and
// human-readable table form.
//
// Writers render any value. Values implementing Tabular get a column layout
// in table mode; everything else is flattened into FIELD/VALUE rows.
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	if err := w.Serialize(ctx, records); err != nil {
//	    return err
//	}
//
// Readers decode JSON or YAML from any io.Reader. FormatFromPath picks the
// format from a file extension, and HttpReader fetches remote documents with
// bounded timeouts.
//
//	r, err := serializer.NewReader(serializer.FormatFromPath(path), f)
//	if err != nil {
//	    return err
//	}
//	var doc catalog.Document
//	err = r.Deserialize(&doc)
//
// RespondJSON writes a JSON body with a status code and is shared by the
// HTTP handlers.
package serializer
