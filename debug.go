package monadfn

import "fmt"

// Debug pairs a value with the trace of the stages that produced it.
type Debug[T any] struct {
	Value   T
	Message string
}

func (d Debug[T]) String() string {
	return fmt.Sprintf("%v (%s)", d.Value, d.Message)
}

// DebugUnit lifts x into a Debug with an empty message.
func DebugUnit[T any](x T) Debug[T] {
	return Debug[T]{Value: x}
}

// DebugBind adapts step so it can be chained after an existing Debug.
//
// The returned function runs step on the previous value and appends the
// fragment step reports to the previous message.
func DebugBind[A, B any](step DebugFunc[A, B]) func(prev Debug[A]) Debug[B] {
	return func(prev Debug[A]) Debug[B] {
		next := step(prev.Value)
		return Debug[B]{
			Value:   next.Value,
			Message: prev.Message + next.Message,
		}
	}
}

// DebugLift turns a plain function into a silent DebugFunc.
func DebugLift[A, B any](fn MapFunc[A, B]) DebugFunc[A, B] {
	return func(in A) Debug[B] {
		return Debug[B]{Value: fn(in)}
	}
}

// ComposeDebug composes debug stages right to left, like Compose.
//
// The resulting message lists the fragments in the order the stages ran,
// so the last stage's fragment comes first:
//
//	ComposeDebug(DebugAddFive, DebugSquare)(3)
//	// Debug{Value: 14, Message: "3^2 = 9.9 + 5 = 14."}
//
// ComposeDebug panics if any stage is nil.
func ComposeDebug[T any](stages ...DebugFunc[T, T]) func(T) Debug[T] {
	mustStages("ComposeDebug", stages, func(s DebugFunc[T, T]) bool { return s == nil })

	return func(x T) Debug[T] {
		acc := DebugUnit(x)
		for i := len(stages) - 1; i >= 0; i-- {
			acc = DebugBind(stages[i])(acc)
		}
		return acc
	}
}
