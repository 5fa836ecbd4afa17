package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(
		WithKind(KindMealCatalog),
		WithAPIVersion(APIVersion),
		WithMetadata("source", "test"),
	)

	assert.Equal(t, KindMealCatalog, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "test", h.Metadata["source"])
}

func TestWithMetadata_NilMap(t *testing.T) {
	h := &Header{}
	WithMetadata("k", "v")(h)
	assert.Equal(t, map[string]string{"k": "v"}, h.Metadata)
}

func TestInit(t *testing.T) {
	h := New(WithMetadata("stale", "x"))
	h.Init(KindMealCatalog, APIVersion, "1.2.3")

	assert.Equal(t, KindMealCatalog, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "1.2.3", h.Metadata["version"])
	assert.NotContains(t, h.Metadata, "stale")

	_, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)
}

func TestInit_NoVersion(t *testing.T) {
	var h Header
	h.Init(KindMealCatalog, APIVersion, "")
	assert.NotContains(t, h.Metadata, "version")
}

func TestKind_IsValid(t *testing.T) {
	assert.True(t, KindMealCatalog.IsValid())
	assert.False(t, Kind("Recipe").IsValid())
	assert.False(t, Kind("").IsValid())
	assert.Equal(t, "MealCatalog", KindMealCatalog.String())
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		header  Header
		wantErr bool
	}{
		{"empty", Header{}, false},
		{"matching", Header{Kind: KindMealCatalog, APIVersion: APIVersion}, false},
		{"kind only", Header{Kind: KindMealCatalog}, false},
		{"wrong kind", Header{Kind: "Snapshot"}, true},
		{"wrong version", Header{APIVersion: "meals.nvidia.com/v2"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.header.Check(KindMealCatalog)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
