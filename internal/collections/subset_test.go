package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubset(t *testing.T) {
	src := map[string]int{"a": 1, "b": 2, "c": 3}

	tests := []struct {
		name string
		keys []string
		want map[string]int
	}{
		{"some", []string{"a", "c"}, map[string]int{"a": 1, "c": 3}},
		{"missing skipped", []string{"a", "z"}, map[string]int{"a": 1}},
		{"duplicates", []string{"b", "b", "b"}, map[string]int{"b": 2}},
		{"empty keys", []string{}, map[string]int{}},
		{"nil keys", nil, map[string]int{}},
		{"all", []string{"c", "b", "a"}, src},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Subset(src, tt.keys)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, src)
}

func TestSubsetNilSource(t *testing.T) {
	var src map[string]int

	got := Subset(src, []string{"a"})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSubsetSharesValues(t *testing.T) {
	type settings map[string][]string
	src := settings{"paths": {"/world"}, "skip": {"x"}}

	got := Subset(src, []string{"paths"})
	got["paths"][0] = "/nether"

	assert.Equal(t, "/nether", src["paths"][0])
	assert.IsType(t, settings{}, got)
}
