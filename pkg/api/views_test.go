package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/meal-catalog/pkg/meal"
	"github.com/NVIDIA/meal-catalog/pkg/server"
)

func TestHandleDashboard(t *testing.T) {
	handler := testServer(t)

	w := do(t, handler, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "Chicken Soup")
	assert.Contains(t, body, "Beef Stew")
	assert.Contains(t, body, `href="/meal/3"`)
	assert.Contains(t, body, "https://example.com/curry")
}

func TestHandleDashboard_Empty(t *testing.T) {
	store, err := meal.NewStore(nil)
	require.NoError(t, err)
	h, err := NewHandler(store)
	require.NoError(t, err)
	handler := server.New(server.WithHandler(h.Routes())).Handler()

	w := do(t, handler, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The catalog is empty.")
}

func TestHandleDashboard_EscapesLabels(t *testing.T) {
	store, err := meal.NewStore([]meal.Record{
		{ID: 1, Label: "<script>alert(1)</script>", Source: "x", URL: "https://example.com/x"},
	})
	require.NoError(t, err)
	h, err := NewHandler(store)
	require.NoError(t, err)
	handler := server.New(server.WithHandler(h.Routes())).Handler()

	w := do(t, handler, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, w.Body.String(), "&lt;script&gt;")
}

func TestHandleDashboard_UnknownPath(t *testing.T) {
	handler := testServer(t)

	w := do(t, handler, http.MethodGet, "/nope")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)
}

func TestHandleDashboard_MethodNotAllowed(t *testing.T) {
	handler := testServer(t)

	w := do(t, handler, http.MethodPost, "/")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestHandleStatus(t *testing.T) {
	handler := testServer(t, WithIdentity("mealsd", "1.2.3"))

	w := do(t, handler, http.MethodGet, "/status")
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "mealsd is running")
	assert.Contains(t, body, "1.2.3")
	assert.Contains(t, body, "<dd>3</dd>")
}

func TestTemplatesParsed(t *testing.T) {
	for _, name := range []string{templateDashboard, templateStatus} {
		assert.NotNil(t, templates.Lookup(name), name)
	}
}
