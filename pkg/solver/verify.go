package solver

import (
	"slices"

	"github.com/samber/lo"

	"github.com/limaJavier/regroup/pkg/graph"
)

// Verify replays every sequence of the result against the instance and
// checks the full set of invariants:
//   - every sequence has exactly result.Rounds rounds
//   - every group has at least MinGroupSize members, all pairwise groupable
//     in the state its round is applied to (which also guarantees no pair is
//     grouped together twice across the sequence)
//   - groups within a round are pairwise disjoint
//   - every round is maximal for its state (balanced shape: matches the
//     balanced size profile)
//   - the sequence is terminal: no further nonempty round exists
func (s *searchSolver) Verify(result Result, input Input) bool {
	if input.validate() != nil {
		return false
	}

	return lo.EveryBy(result.Sequences, func(sequence Sequence) bool {
		if len(sequence) != result.Rounds {
			return false
		}

		state, err := graph.New(input.Entities, input.Conflicts)
		if err != nil {
			return false
		}

		for _, round := range sequence {
			if !s.validRound(state, round, input.MinGroupSize) {
				return false
			}
			state = state.WithGroupsRemoved(round.groups())
		}

		//** Terminality: the final state must admit no further round
		extendable := false
		s.newEnumerator(input.MinGroupSize).EnumerateRounds(state, func(Round) bool {
			extendable = true
			return false
		})
		return !extendable
	})
}

func (s *searchSolver) validRound(state *graph.State, round Round, minGroupSize int) bool {
	if len(round) == 0 {
		return false
	}

	//** Size, range and clique invariants per group
	for _, group := range round {
		if len(group) < minGroupSize {
			return false
		}
		for i, u := range group {
			if u < 0 || u >= state.Vertices() {
				return false
			}
			for _, v := range group[i+1:] {
				if !state.HasEdge(u, v) {
					return false
				}
			}
		}
	}

	//** Disjointness across groups
	members := lo.Flatten(round.groups())
	if len(members) != len(lo.Uniq(members)) {
		return false
	}

	if s.balanced {
		return balancedShape(state.Vertices(), round, minGroupSize)
	}
	return maximalShape(state, round, minGroupSize)
}

// balancedShape checks that the round's group sizes are exactly the balanced
// profile and that every vertex is grouped.
func balancedShape(n int, round Round, minGroupSize int) bool {
	grouped := lo.SumBy([]Group(round), func(group Group) int { return len(group) })
	if grouped != n {
		return false
	}

	profile := balancedSizes(n, minGroupSize)
	sizes := lo.Map([]Group(round), func(group Group, _ int) int { return len(group) })
	slices.SortFunc(profile, descending)
	slices.SortFunc(sizes, descending)
	return slices.Equal(profile, sizes)
}

func descending(a, b int) int {
	return b - a
}

// maximalShape checks that no ungrouped vertex can extend a group and that
// no clique of qualifying size survives among the ungrouped vertices.
func maximalShape(state *graph.State, round Round, minGroupSize int) bool {
	ungrouped := []int{}
	for v := 0; v < state.Vertices(); v++ {
		inRound := lo.SomeBy([]Group(round), func(group Group) bool { return group.contains(v) })
		if !inRound {
			ungrouped = append(ungrouped, v)
		}
	}

	for _, v := range ungrouped {
		for _, group := range round {
			if extends(state, v, group) {
				return false
			}
		}
	}
	return !hasClique(state, ungrouped, minGroupSize)
}
