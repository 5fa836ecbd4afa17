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

package meal

import "strconv"

// SearchResults is the response body of a search.
type SearchResults struct {
	Results []Record `json:"results" yaml:"results"`
}

// TableHeader implements serializer.Tabular.
func (r Record) TableHeader() []string {
	return recordHeader()
}

// TableRows implements serializer.Tabular.
func (r Record) TableRows() [][]string {
	return [][]string{r.row()}
}

// TableHeader implements serializer.Tabular.
func (s SearchResults) TableHeader() []string {
	return recordHeader()
}

// TableRows implements serializer.Tabular.
func (s SearchResults) TableRows() [][]string {
	rows := make([][]string, 0, len(s.Results))
	for _, r := range s.Results {
		rows = append(rows, r.row())
	}
	return rows
}

func recordHeader() []string {
	return []string{"ID", "LABEL", "SOURCE", "URL"}
}

func (r Record) row() []string {
	return []string{strconv.Itoa(r.ID), r.Label, r.Source, r.URL}
}
