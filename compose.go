package monadfn

// Identity returns its argument unchanged.
func Identity[T any](x T) T {
	return x
}

// Compose returns the composition of fns, applied right to left: the last
// function receives the input, and each predecessor receives the result of
// the function after it.
//
//	Compose(f, g, h)(x) == f(g(h(x)))
//
// Composing zero functions yields the identity.
//
// Compose panics if any function is nil. Panics raised by the functions
// themselves are not recovered.
func Compose[T any](fns ...func(T) T) func(T) T {
	mustStages("Compose", fns, func(f func(T) T) bool { return f == nil })

	return func(x T) T {
		acc := x
		for i := len(fns) - 1; i >= 0; i-- {
			acc = fns[i](acc)
		}
		return acc
	}
}

// Compose2 composes two functions whose types differ, returning f(g(x)).
func Compose2[A, B, C any](f MapFunc[B, C], g MapFunc[A, B]) MapFunc[A, C] {
	return func(x A) C {
		return f(g(x))
	}
}
