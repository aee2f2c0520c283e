package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgMax(t *testing.T) {
	require.Equal(t, 1, ArgMax([]int{-2, 4, 4, 1}), "Ties should resolve to the first maximum")
	require.Equal(t, 0, ArgMax([]int{-3, -5}))
	require.Equal(t, -1, ArgMax([]int{}))
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, []int{0, 9, 0, 9}, func(rank int) bool { return rank == 9 })
	require.Equal(t, []int{2, 4}, got)
}
