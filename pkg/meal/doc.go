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

// Package meal implements the read-only meal catalog core: the immutable
// record store, lookup by identifier and keyword search.
//
// # Store
//
// A Store is built once from a slice of records and never modified. It is
// safe to share across goroutines without locking once NewStore returns:
//
//	store, err := meal.NewStore(records)
//	if err != nil {
//	    return fmt.Errorf("invalid catalog: %w", err)
//	}
//
// # Lookup
//
// Finder resolves a single record. The second return value reports whether
// a record was found; callers map a miss to their own not-found response:
//
//	rec, ok := meal.NewFinder(store).FindByID(2)
//
// # Search
//
// Searcher filters by an optional keyword and truncates the result:
//
//	results := meal.NewSearcher(store).Search("chicken", 10)
//
// An empty keyword does not match everything. It returns the first
// maxResults records in store order. A non-empty keyword matches when its
// Unicode case fold is a substring of the case-folded label. Matches keep
// store order and are truncated to maxResults. The result is never nil.
//
// # Queries
//
// Query carries the validated search parameters shared by the HTTP API and
// the CLI. Keywords shorter than MinKeywordLength and negative result
// limits are rejected with an errors.ErrCodeValidation structured error
// before the Searcher is called.
package meal
