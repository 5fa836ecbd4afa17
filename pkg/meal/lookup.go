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

// Finder resolves meals by identifier.
type Finder struct {
	store *Store
}

// NewFinder returns a Finder over store.
func NewFinder(store *Store) *Finder {
	return &Finder{store: store}
}

// FindByID returns the first record in store order whose id equals id.
// The boolean is false when no record matches.
func (f *Finder) FindByID(id int) (Record, bool) {
	for _, r := range f.store.records {
		if r.ID == id {
			lookupsTotal.WithLabelValues(lookupFound).Inc()
			return r, true
		}
	}
	lookupsTotal.WithLabelValues(lookupNotFound).Inc()
	return Record{}, false
}
