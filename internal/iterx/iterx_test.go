package iterx_test

import (
	"testing"

	"github.com/KasperOmsK/monadfn/internal/iterx"

	"github.com/stretchr/testify/require"
)

func TestFromSlice_StopsEarly(t *testing.T) {
	var seen []int
	for v := range iterx.FromSlice([]int{1, 2, 3, 4}) {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}

	require.Equal(t, []int{1, 2}, seen)
}

func TestMap(t *testing.T) {
	out := iterx.Collect(iterx.Map(iterx.FromSlice([]string{"a", "bb", "ccc"}), func(s string) int {
		return len(s)
	}))

	require.Equal(t, []int{1, 2, 3}, out)
}

func TestFlatMap_PreservesOrder(t *testing.T) {
	out := iterx.Collect(iterx.FlatMap(iterx.FromSlice([]int{1, 2, 3}), func(v int) []int {
		if v == 2 {
			return nil
		}
		return []int{v, v * 10}
	}))

	require.Equal(t, []int{1, 10, 3, 30}, out)
}

func TestFilter(t *testing.T) {
	out := iterx.Collect(iterx.Filter(iterx.FromSlice([]int{1, 2, 3, 4, 5}), func(v int) bool {
		return v%2 == 1
	}))

	require.Equal(t, []int{1, 3, 5}, out)
}

func TestCollect_EmptyIsNotNil(t *testing.T) {
	out := iterx.Collect(iterx.FromSlice[int](nil))

	require.NotNil(t, out)
	require.Empty(t, out)
}
