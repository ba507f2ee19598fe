package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

// Map yields fn(v) for every v produced by seq.
func Map[In, Out any](seq iter.Seq[In], fn func(In) Out) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for in := range seq {
			if !yield(fn(in)) {
				return
			}
		}
	}
}

// FlatMap yields the elements of fn(v), in order, for every v produced by seq.
func FlatMap[In, Out any](seq iter.Seq[In], fn func(In) []Out) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for in := range seq {
			for _, out := range fn(in) {
				if !yield(out) {
					return
				}
			}
		}
	}
}

func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for in := range seq {
			if keep(in) {
				if !yield(in) {
					return
				}
			}
		}
	}
}

// Collect drains seq into a slice. The result is never nil, so an empty
// sequence collects to an empty slice.
func Collect[T any](seq iter.Seq[T]) []T {
	out := make([]T, 0)
	for v := range seq {
		out = append(out, v)
	}
	return out
}
