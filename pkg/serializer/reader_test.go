package serializer

import (
	"strings"
	"testing"
)

type testDoc struct {
	Items []testConfig `json:"items" yaml:"items"`
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"meals.json", FormatJSON},
		{"MEALS.JSON", FormatJSON},
		{"meals.yaml", FormatYAML},
		{"meals.yml", FormatYAML},
		{"meals", FormatYAML},
		{"https://example.com/catalog.json", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatFromPath(tt.path); got != tt.want {
				t.Errorf("FormatFromPath(%q) = %s, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewReader_RejectsUnsupported(t *testing.T) {
	if _, err := NewReader(FormatTable, strings.NewReader("")); err == nil {
		t.Error("expected error for table format")
	}
	if _, err := NewReader(Format("xml"), strings.NewReader("")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestReader_Deserialize(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		input   string
		wantErr bool
		want    int
	}{
		{
			name:   "json",
			format: FormatJSON,
			input:  `{"items":[{"name":"a","value":1},{"name":"b","value":2}]}`,
			want:   2,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input:  "items:\n  - name: a\n    value: 1\n",
			want:   1,
		},
		{
			name:    "json unknown field",
			format:  FormatJSON,
			input:   `{"items":[],"extra":true}`,
			wantErr: true,
		},
		{
			name:    "yaml unknown field",
			format:  FormatYAML,
			input:   "items: []\nextra: true\n",
			wantErr: true,
		},
		{
			name:    "malformed json",
			format:  FormatJSON,
			input:   `{"items":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReader(tt.format, strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("NewReader failed: %v", err)
			}
			defer r.Close()

			var doc testDoc
			err = r.Deserialize(&doc)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Deserialize failed: %v", err)
			}
			if len(doc.Items) != tt.want {
				t.Errorf("got %d items, want %d", len(doc.Items), tt.want)
			}
		})
	}
}

func TestReader_NilSafety(t *testing.T) {
	var r *Reader
	if err := r.Deserialize(&testDoc{}); err == nil {
		t.Error("expected error from nil reader")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil reader returned %v", err)
	}
}
