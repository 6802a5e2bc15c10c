package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/limaJavier/regroup/pkg/errors"
)

func TestNew(t *testing.T) {
	t.Run("Complete graph", func(t *testing.T) {
		state, err := New(4, nil)

		require.Nil(t, err)
		assert.Equal(t, 4, state.Vertices())
		assert.Equal(t, 6, state.EdgeCount())
		assert.Equal(t, 3, state.MinDegree())
		for u := 0; u < 4; u++ {
			assert.False(t, state.HasEdge(u, u))
			for v := u + 1; v < 4; v++ {
				assert.True(t, state.HasEdge(u, v))
				assert.True(t, state.HasEdge(v, u))
			}
		}
	})

	t.Run("Conflicts removed", func(t *testing.T) {
		state, err := New(4, [][2]int{{0, 1}, {2, 3}})

		require.Nil(t, err)
		assert.False(t, state.HasEdge(0, 1))
		assert.False(t, state.HasEdge(1, 0))
		assert.False(t, state.HasEdge(3, 2))
		assert.True(t, state.HasEdge(0, 2))
		assert.Equal(t, 4, state.EdgeCount())
		assert.Equal(t, []int{2, 3}, state.Neighbors(0))
	})

	t.Run("Malformed conflicts", func(t *testing.T) {
		scenarios := []struct {
			name      string
			n         int
			conflicts [][2]int
		}{
			{"out of range", 3, [][2]int{{0, 3}}},
			{"negative vertex", 3, [][2]int{{-1, 2}}},
			{"self pair", 3, [][2]int{{1, 1}}},
			{"duplicate pair", 3, [][2]int{{0, 1}, {0, 1}}},
			{"duplicate reversed", 3, [][2]int{{0, 1}, {1, 0}}},
		}

		for _, scenario := range scenarios {
			t.Run(scenario.name, func(t *testing.T) {
				_, err := New(scenario.n, scenario.conflicts)

				require.NotNil(t, err)
				assert.True(t, errs.Is(err, errs.ErrCodeMalformedGraph))
			})
		}
	})

	t.Run("Negative vertex count", func(t *testing.T) {
		_, err := New(-1, nil)

		require.NotNil(t, err)
		assert.True(t, errs.Is(err, errs.ErrCodeInvalidParameter))
	})
}

func TestWithGroupsRemoved(t *testing.T) {
	t.Run("Receiver untouched", func(t *testing.T) {
		//** Arrange
		state, err := New(5, nil)
		require.Nil(t, err)

		//** Act
		derived := state.WithGroupsRemoved([][]int{{0, 1, 2}, {3, 4}})

		//** Assert
		assert.Equal(t, 10, state.EdgeCount())
		assert.Equal(t, 6, derived.EdgeCount())
		assert.True(t, state.HasEdge(0, 1))
		assert.False(t, derived.HasEdge(0, 1))
		assert.False(t, derived.HasEdge(1, 2))
		assert.False(t, derived.HasEdge(3, 4))
		assert.True(t, derived.HasEdge(0, 3))
		assert.Equal(t, []int{3, 4}, derived.Neighbors(0))
	})

	t.Run("Degrees shrink monotonically", func(t *testing.T) {
		state, err := New(4, nil)
		require.Nil(t, err)

		derived := state.WithGroupsRemoved([][]int{{0, 1}})

		assert.Equal(t, 2, derived.Degree(0))
		assert.Equal(t, 2, derived.Degree(1))
		assert.Equal(t, 3, derived.Degree(2))
		assert.Equal(t, 2, derived.MinDegree())
	})
}

func TestContractViolations(t *testing.T) {
	state, err := New(3, nil)
	require.Nil(t, err)

	assert.Panics(t, func() { state.HasEdge(0, 3) })
	assert.Panics(t, func() { state.Neighbors(-1) })
	assert.Panics(t, func() { state.Degree(5) })
	assert.Panics(t, func() { state.WithGroupsRemoved([][]int{{0, 7}}) })
}
