/*
Package monadfn provides generic function composition and two small
monad-like pipelines built on top of it.

All pipelines in this package compose their stages right to left, like
mathematical composition: the last stage listed receives the input and the
first stage listed produces the result.

	f := monadfn.Compose(strings.ToUpper, strings.TrimSpace)
	f("  hi  ") // "HI"

The debug pipeline threads a value through stages that each describe what
they did. Messages are concatenated in the order the stages ran:

	trace := monadfn.ComposeDebug(monadfn.DebugAddFive[int], monadfn.DebugSquare[int])
	d := trace(3)
	// d.Value == 14
	// d.Message == "3^2 = 9.9 + 5 = 14."

Plain functions join a debug pipeline through DebugLift, which reports
nothing.

The multi-value pipeline composes non-deterministic stages: each stage
may return any number of values per input, and every branch is explored.
Results are flattened depth first, so the output order follows the order in
which branches were produced:

	expand := monadfn.ComposeMulti(monadfn.Digits[int], monadfn.FirstThreeMultiples[int])
	expand(12) // [1 2 2 4 3 6]

Plain functions join a multi-value pipeline through MultiLift, which
always returns exactly one value.

Nothing in this package returns errors or recovers panics. A stage that
panics aborts the whole composition and the panic reaches the caller.
*/
package monadfn
