package monadfn

import "github.com/KasperOmsK/monadfn/internal/iterx"

// MultiUnit lifts x into a single-element slice.
func MultiUnit[T any](x T) []T {
	return []T{x}
}

// MultiBind adapts step so it can run on every value of a previous result.
//
// The returned function applies step to each input value and concatenates
// the results, keeping the input order and, within each input, the order
// step produced. Inputs for which step returns nothing contribute nothing.
// The input slice is never modified and the result is never nil.
func MultiBind[A, B any](step MultiFunc[A, B]) func(in []A) []B {
	return func(in []A) []B {
		return iterx.Collect(iterx.FlatMap[A, B](iterx.FromSlice(in), step))
	}
}

// MultiLift turns a plain function into a MultiFunc returning exactly one value.
func MultiLift[A, B any](fn MapFunc[A, B]) MultiFunc[A, B] {
	return func(in A) []B {
		return MultiUnit(fn(in))
	}
}

// ComposeMulti composes non-deterministic stages right to left, like Compose.
//
// Each stage runs on every value produced by the stage after it and the
// branches are flattened depth first:
//
//	ComposeMulti(Digits[int], FirstThreeMultiples[int])(12)
//	// [1 2 2 4 3 6]
//
// ComposeMulti panics if any stage is nil.
func ComposeMulti[T any](stages ...MultiFunc[T, T]) func(T) []T {
	mustStages("ComposeMulti", stages, func(s MultiFunc[T, T]) bool { return s == nil })

	return func(x T) []T {
		acc := MultiUnit(x)
		for i := len(stages) - 1; i >= 0; i-- {
			acc = MultiBind(stages[i])(acc)
		}
		return acc
	}
}
