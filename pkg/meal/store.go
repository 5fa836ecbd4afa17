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

import (
	"fmt"

	"golang.org/x/text/cases"

	mealerrors "github.com/NVIDIA/meal-catalog/pkg/errors"
)

// Store holds the fixed collection of meals in load order.
type Store struct {
	records []Record
	// folded[i] is the case-folded label of records[i]
	folded []string
}

// NewStore validates records and builds an immutable Store. Records keep
// the order they were given in. Duplicate ids are rejected.
func NewStore(records []Record) (*Store, error) {
	s := &Store{
		records: make([]Record, 0, len(records)),
		folded:  make([]string, 0, len(records)),
	}

	seen := make(map[int]int, len(records))
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("record at position %d: %w", i, err)
		}
		if prev, dup := seen[r.ID]; dup {
			return nil, mealerrors.NewWithContext(mealerrors.ErrCodeInternal,
				fmt.Sprintf("duplicate meal id %d", r.ID),
				map[string]any{"id": r.ID, "first": prev, "second": i})
		}
		seen[r.ID] = i
		s.records = append(s.records, r)
		s.folded = append(s.folded, fold(r.Label))
	}

	return s, nil
}

// All returns a copy of the full collection in load order.
func (s *Store) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// fold applies Unicode full case folding. A Caser is stateful, so each call
// gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
