package collections

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundRobinSlices(t *testing.T) {
	tests := []struct {
		name string
		in   [][]int
		want []int
	}{
		{"uneven", [][]int{{1, 2, 3}, {4}, {5, 6}}, []int{1, 4, 5, 2, 6, 3}},
		{"no inputs", nil, nil},
		{"leading empty", [][]int{{}, {1}}, []int{1}},
		{"all empty", [][]int{{}, {}, nil}, nil},
		{"single", [][]int{{1, 2, 3}}, []int{1, 2, 3}},
		{"equal", [][]int{{1, 2}, {3, 4}}, []int{1, 3, 2, 4}},
		{"long last", [][]int{{1}, {2}, {3, 4, 5}}, []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundRobinSlices(tt.in...))
		})
	}
}

func TestRoundRobinStrings(t *testing.T) {
	got := slices.Collect(RoundRobin(
		slices.Values([]string{"A", "B", "C"}),
		slices.Values([]string{"D"}),
		slices.Values([]string{"E", "F"}),
	))

	assert.Equal(t, []string{"A", "D", "E", "B", "F", "C"}, got)
}

// counted yields 0..n-1 and records how many values were produced and
// whether the sequence was abandoned.
func counted(n int, produced *int, stopped *bool) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			*produced++
			if !yield(i) {
				*stopped = true
				return
			}
		}
	}
}

func TestRoundRobinLazy(t *testing.T) {
	var producedA, producedB int
	var stoppedA, stoppedB bool

	seq := RoundRobin(counted(100, &producedA, &stoppedA), counted(100, &producedB, &stoppedB))
	assert.Zero(t, producedA+producedB)

	var got []int
	for v := range seq {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}

	assert.Equal(t, []int{0, 0, 1}, got)
	assert.Equal(t, 2, producedA)
	assert.Equal(t, 1, producedB)
	assert.True(t, stoppedA)
	assert.True(t, stoppedB)
}
