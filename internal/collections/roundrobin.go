// Package collections holds small generic helpers over sequences and maps.
package collections

import (
	"iter"
	"slices"
)

// cursor is a pulled input sequence.
type cursor[T any] struct {
	next func() (T, bool)
	stop func()
}

// RoundRobin interleaves seqs lazily: each round takes one element from every
// input that still has elements, in input order. Exhausted inputs drop out of
// the rotation and the remaining ones keep their relative order.
//
//	RoundRobin(ABC, D, EF) yields A D E B F C
//
// Inputs are pulled only while the result is being ranged over.
func RoundRobin[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		active := make([]cursor[T], 0, len(seqs))
		for _, seq := range seqs {
			next, stop := iter.Pull(seq)
			active = append(active, cursor[T]{next: next, stop: stop})
		}

		defer func() {
			for _, c := range active {
				c.stop()
			}
		}()

		for len(active) > 0 {
			for i := 0; i < len(active); {
				v, ok := active[i].next()
				if !ok {
					active[i].stop()
					active = slices.Delete(active, i, i+1)
					continue
				}

				if !yield(v) {
					return
				}
				i++
			}
		}
	}
}

// RoundRobinSlices is RoundRobin over slices, collected into a new slice.
func RoundRobinSlices[T any](in ...[]T) []T {
	seqs := make([]iter.Seq[T], len(in))
	for i, s := range in {
		seqs[i] = slices.Values(s)
	}

	return slices.Collect(RoundRobin(seqs...))
}
