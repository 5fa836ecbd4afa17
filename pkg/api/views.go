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
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/meal-catalog/pkg/meal"
	"github.com/NVIDIA/meal-catalog/pkg/server"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	templateDashboard = "index.html"
	templateStatus    = "status.html"
)

// HandleDashboard renders every meal in catalog order.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		server.NotFound(w, r)
		return
	}
	if !server.RequireGet(w, r) {
		return
	}

	h.render(w, r, templateDashboard, struct {
		Title string
		Meals []meal.Record
	}{
		Title: "Meal Catalog",
		Meals: h.store.All(),
	})
}

// HandleStatus renders a static page for uptime checks.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if !server.RequireGet(w, r) {
		return
	}

	h.render(w, r, templateStatus, struct {
		Name      string
		Version   string
		Meals     int
		Timestamp string
	}{
		Name:      h.name,
		Version:   h.version,
		Meals:     h.store.Len(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// render executes the named template into a buffer so a template failure
// still yields a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	buf := &bytes.Buffer{}
	if err := templates.ExecuteTemplate(buf, name, data); err != nil {
		slog.Error("template render failed", "template", name, "error", err)
		server.WriteErrorFromErr(w, r, err, "Failed to render page", nil)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("response write failed", "error", err)
	}
}
