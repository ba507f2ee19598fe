package monadfn

import "fmt"

type (

	// MapFunc is a pure function that transforms a value of type In into a
	// value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// DebugFunc is a stage of a debug pipeline. Alongside its result it
	// returns a message fragment describing what it did.
	//
	// A stage with nothing to report returns an empty message.
	DebugFunc[In, Out any] func(in In) Debug[Out]

	// MultiFunc is a non-deterministic stage: it may produce zero, one or
	// many values for a single input.
	MultiFunc[In, Out any] func(in In) []Out

	// Predicate reports whether item satisfies a condition.
	Predicate[T any] func(item T) bool
)

// Not returns a Predicate that is true exactly when p is false.
//
// Not panics if p is nil.
func Not[T any](p Predicate[T]) Predicate[T] {
	if p == nil {
		panic("monadfn.Not: nil predicate")
	}
	return func(item T) bool {
		return !p(item)
	}
}

func mustStages[F any](caller string, stages []F, isNil func(F) bool) {
	for i, s := range stages {
		if isNil(s) {
			panic(fmt.Sprintf("monadfn.%s: stage %d is nil", caller, i))
		}
	}
}
