package meal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Examples(t *testing.T) {
	s := NewSearcher(newTestStore(t))

	tests := []struct {
		name       string
		keyword    string
		maxResults int
		want       []int
	}{
		{"keyword matches in store order", "chicken", 10, []int{1, 3}},
		{"no keyword is a prefix", "", 2, []int{1, 2}},
		{"no match is empty", "zz", 10, []int{}},
		{"keyword truncated", "chicken", 1, []int{1}},
		{"case insensitive", "CHICKEN", 10, []int{1, 3}},
		{"mixed case substring", "eF sT", 10, []int{2}},
		{"no keyword larger than store", "", 50, []int{1, 2, 3}},
		{"zero with keyword", "chicken", 0, []int{}},
		{"zero without keyword", "", 0, []int{}},
		{"negative is empty", "", -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Search(tt.keyword, tt.maxResults)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearch_NoKeywordMatchesAllPrefix(t *testing.T) {
	store := newTestStore(t)
	s := NewSearcher(store)
	all := store.All()

	for n := 0; n <= len(all)+2; n++ {
		got := s.Search("", n)
		assert.Len(t, got, min(n, len(all)))
		assert.Equal(t, all[:min(n, len(all))], got)
	}
}

func TestSearch_KeywordProperties(t *testing.T) {
	store := newTestStore(t)
	s := NewSearcher(store)

	for _, kw := range []string{"chi", "Stew", "curry", "soup", "en", "xyz"} {
		var qualifying []Record
		for _, r := range store.All() {
			if strings.Contains(strings.ToLower(r.Label), strings.ToLower(kw)) {
				qualifying = append(qualifying, r)
			}
		}

		for n := 0; n <= 4; n++ {
			got := s.Search(kw, n)
			assert.LessOrEqual(t, len(got), n)
			for _, r := range got {
				assert.Contains(t, strings.ToLower(r.Label), strings.ToLower(kw))
			}
			want := qualifying[:min(n, len(qualifying))]
			if len(want) == 0 {
				assert.Empty(t, got)
				continue
			}
			assert.Equal(t, want, got, "keyword %q n=%d", kw, n)
		}
	}
}

func TestSearch_Idempotent(t *testing.T) {
	s := NewSearcher(newTestStore(t))

	first := s.Search("chicken", 10)
	for range 5 {
		assert.Equal(t, first, s.Search("chicken", 10))
	}
}

func TestSearch_UnicodeFolding(t *testing.T) {
	store, err := NewStore([]Record{
		{ID: 1, Label: "Käsespätzle", Source: "x", URL: "https://example.com/1"},
		{ID: 2, Label: "STRASSE Salad", Source: "x", URL: "https://example.com/2"},
	})
	require.NoError(t, err)
	s := NewSearcher(store)

	assert.Equal(t, []int{1}, ids(s.Search("KÄSE", 10)))
	// Full case folding maps ß to ss.
	assert.Equal(t, []int{2}, ids(s.Search("straße", 10)))
}

func TestSearch_DoesNotMutateStore(t *testing.T) {
	store := newTestStore(t)
	s := NewSearcher(store)

	got := s.Search("", 3)
	got[0].Label = "changed"

	assert.Equal(t, "Chicken Soup", store.All()[0].Label)
}
