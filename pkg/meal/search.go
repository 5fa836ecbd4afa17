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

import "strings"

// Searcher filters the store by keyword.
type Searcher struct {
	store *Store
}

// NewSearcher returns a Searcher over store.
func NewSearcher(store *Store) *Searcher {
	return &Searcher{store: store}
}

// Search returns at most maxResults records. With an empty keyword it is
// the first maxResults records of the store; otherwise it is the records
// whose label contains the keyword ignoring case, in store order.
// The returned slice is never nil.
func (s *Searcher) Search(keyword string, maxResults int) []Record {
	if maxResults <= 0 {
		searchesTotal.WithLabelValues(modeOf(keyword)).Inc()
		searchResults.Observe(0)
		return []Record{}
	}

	var out []Record
	if keyword == "" {
		n := min(maxResults, len(s.store.records))
		out = make([]Record, n)
		copy(out, s.store.records[:n])
	} else {
		out = s.match(fold(keyword), maxResults)
	}

	searchesTotal.WithLabelValues(modeOf(keyword)).Inc()
	searchResults.Observe(float64(len(out)))
	return out
}

// match collects records whose folded label contains needle, stopping once
// limit records have been found.
func (s *Searcher) match(needle string, limit int) []Record {
	out := make([]Record, 0, min(limit, len(s.store.records)))
	for i, label := range s.store.folded {
		if !strings.Contains(label, needle) {
			continue
		}
		out = append(out, s.store.records[i])
		if len(out) == limit {
			break
		}
	}
	return out
}

func modeOf(keyword string) string {
	if keyword == "" {
		return searchModeBrowse
	}
	return searchModeKeyword
}
