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

package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	mealerrors "github.com/NVIDIA/meal-catalog/pkg/errors"
	"github.com/NVIDIA/meal-catalog/pkg/meal"
	"github.com/NVIDIA/meal-catalog/pkg/serializer"
	"github.com/NVIDIA/meal-catalog/pkg/server"
)

// Route patterns served by Handler.
const (
	PathMeal        = "/meal/{id}"
	PathSearch      = "/search"
	PathSearchSlash = "/search/{$}"
	PathDashboard   = "/"
	PathStatus      = "/status"
)

// Handler serves the catalog endpoints over an immutable store.
type Handler struct {
	store       *meal.Store
	finder      *meal.Finder
	searcher    *meal.Searcher
	cacheMaxAge int
	name        string
	version     string
}

// Option configures a Handler.
type Option func(*Handler)

// WithCacheMaxAge sets the Cache-Control max-age, in seconds, on successful
// meal and search responses. Zero disables the header.
func WithCacheMaxAge(seconds int) Option {
	return func(h *Handler) {
		if seconds >= 0 {
			h.cacheMaxAge = seconds
		}
	}
}

// WithIdentity sets the name and version shown on the status page.
func WithIdentity(name, version string) Option {
	return func(h *Handler) {
		h.name = name
		h.version = version
	}
}

// NewHandler creates a Handler serving store.
func NewHandler(store *meal.Store, opts ...Option) (*Handler, error) {
	if store == nil {
		return nil, mealerrors.New(mealerrors.ErrCodeInternal, "meal store is required")
	}

	h := &Handler{
		store:    store,
		finder:   meal.NewFinder(store),
		searcher: meal.NewSearcher(store),
		name:     name,
		version:  versionDefault,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h, nil
}

// Routes returns the handlers keyed by ServeMux pattern, for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		PathMeal:        h.HandleMeal,
		PathSearch:      h.HandleSearch,
		PathSearchSlash: h.HandleSearch,
		PathDashboard:   h.HandleDashboard,
		PathStatus:      h.HandleStatus,
	}
}

// HandleMeal returns the meal whose id matches the path segment.
func (h *Handler) HandleMeal(w http.ResponseWriter, r *http.Request) {
	if !server.RequireGet(w, r) {
		return
	}

	id, err := meal.ParseID(r.PathValue("id"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid meal id", nil)
		return
	}

	trace.SpanFromContext(r.Context()).SetAttributes(attribute.Int("meal.id", id))

	rec, ok := h.finder.FindByID(id)
	if !ok {
		slog.Debug("meal not found", "id", id)
		server.WriteErrorFromErr(w, r,
			mealerrors.NewWithContext(mealerrors.ErrCodeNotFound,
				fmt.Sprintf("Meal with ID %d not found", id),
				map[string]any{"id": id}),
			"Meal lookup failed", nil)
		return
	}

	h.setCacheControl(w)
	serializer.RespondJSON(w, http.StatusOK, rec)
}

// HandleSearch returns meals whose label contains the keyword, or the first
// max_results meals when no keyword is given.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if !server.RequireGet(w, r) {
		return
	}

	q, err := meal.ParseQueryFromRequest(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid search query", nil)
		return
	}

	results := h.searcher.Search(q.Keyword, q.MaxResults)

	trace.SpanFromContext(r.Context()).SetAttributes(
		attribute.String("meal.keyword", q.Keyword),
		attribute.Int("meal.max_results", q.MaxResults),
		attribute.Int("meal.results", len(results)),
	)

	h.setCacheControl(w)
	serializer.RespondJSON(w, http.StatusOK, meal.SearchResults{Results: results})
}

func (h *Handler) setCacheControl(w http.ResponseWriter) {
	if h.cacheMaxAge > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", h.cacheMaxAge))
	}
}
