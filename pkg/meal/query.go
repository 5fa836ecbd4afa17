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
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	mealerrors "github.com/NVIDIA/meal-catalog/pkg/errors"
)

const (
	// DefaultMaxResults is used when a search does not set max_results.
	DefaultMaxResults = 10

	// MinKeywordLength is the minimum keyword length in characters.
	MinKeywordLength = 3

	// QueryParamKeyword is the search keyword query parameter.
	QueryParamKeyword = "keyword"
	// QueryParamMaxResults is the result limit query parameter.
	QueryParamMaxResults = "max_results"
)

// Query holds validated search parameters.
type Query struct {
	// Keyword is matched against labels. Empty means browse.
	Keyword string `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	// MaxResults bounds the number of returned records.
	MaxResults int `json:"max_results" yaml:"max_results"`

	keywordSet bool
}

// NewQuery returns a browse query with the default result limit.
func NewQuery() *Query {
	return &Query{MaxResults: DefaultMaxResults}
}

// SetKeyword records an explicitly supplied keyword. An explicit empty
// keyword fails validation instead of falling back to browse.
func (q *Query) SetKeyword(keyword string) {
	q.Keyword = keyword
	q.keywordSet = true
}

// Validate enforces the keyword length and non-negative limit.
func (q *Query) Validate() error {
	if q.Keyword != "" || q.keywordSet {
		if n := utf8.RuneCountInString(q.Keyword); n < MinKeywordLength {
			return mealerrors.NewWithContext(mealerrors.ErrCodeValidation,
				fmt.Sprintf("keyword must be at least %d characters", MinKeywordLength),
				map[string]any{
					"parameter": QueryParamKeyword,
					"value":     q.Keyword,
					"minLength": MinKeywordLength,
				})
		}
	}
	if q.MaxResults < 0 {
		return mealerrors.NewWithContext(mealerrors.ErrCodeValidation,
			"max_results must be a non-negative integer",
			map[string]any{
				"parameter": QueryParamMaxResults,
				"value":     q.MaxResults,
			})
	}
	return nil
}

// ParseQueryFromRequest parses and validates search parameters from the
// request URL.
func ParseQueryFromRequest(r *http.Request) (*Query, error) {
	if r == nil {
		return nil, mealerrors.New(mealerrors.ErrCodeInvalidRequest, "request cannot be nil")
	}
	return ParseQueryFromValues(r.URL.Query())
}

// ParseQueryFromValues parses and validates search parameters. A keyword
// parameter that is present but shorter than MinKeywordLength, including an
// empty one, is rejected rather than treated as absent.
func ParseQueryFromValues(values url.Values) (*Query, error) {
	q := NewQuery()

	if values.Has(QueryParamKeyword) {
		q.SetKeyword(values.Get(QueryParamKeyword))
	}

	if values.Has(QueryParamMaxResults) {
		raw := values.Get(QueryParamMaxResults)
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, mealerrors.WrapWithContext(mealerrors.ErrCodeValidation,
				"max_results must be an integer", err,
				map[string]any{
					"parameter": QueryParamMaxResults,
					"value":     raw,
				})
		}
		q.MaxResults = n
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// ParseID parses a meal identifier path segment.
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, mealerrors.WrapWithContext(mealerrors.ErrCodeValidation,
			"meal id must be an integer", err,
			map[string]any{
				"parameter": "id",
				"value":     raw,
			})
	}
	return id, nil
}
