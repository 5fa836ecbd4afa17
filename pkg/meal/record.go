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
	"net/url"
	"strings"

	mealerrors "github.com/NVIDIA/meal-catalog/pkg/errors"
)

// Record is a single meal entry.
type Record struct {
	ID     int    `json:"id" yaml:"id"`
	Label  string `json:"label" yaml:"label"`
	Source string `json:"source" yaml:"source"`
	URL    string `json:"url" yaml:"url"`
}

// NewRecord creates a validated Record.
func NewRecord(id int, label, source, rawURL string) (Record, error) {
	r := Record{
		ID:     id,
		Label:  label,
		Source: source,
		URL:    rawURL,
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate checks the label is non-empty and the URL is an absolute
// http or https URL with a host.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Label) == "" {
		return mealerrors.NewWithContext(mealerrors.ErrCodeInternal,
			fmt.Sprintf("meal %d has an empty label", r.ID),
			map[string]any{"id": r.ID})
	}
	if err := validateURL(r.URL); err != nil {
		return mealerrors.WrapWithContext(mealerrors.ErrCodeInternal,
			fmt.Sprintf("meal %d has an invalid url", r.ID), err,
			map[string]any{"id": r.ID, "url": r.URL})
	}
	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !u.IsAbs() {
		return fmt.Errorf("url %q is not absolute", raw)
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return fmt.Errorf("url scheme %q is not http or https", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}
