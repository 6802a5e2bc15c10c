package solver

import (
	"slices"

	"github.com/limaJavier/regroup/pkg/graph"
)

// balancedEnumerator yields every partition of the full vertex set whose
// group sizes follow the balanced profile: floor(n/k) groups of size k with
// the n mod k leftover vertices distributed evenly across them. Every vertex
// is grouped every round, so rounds are maximal by construction. This is the
// stricter round shape used when leftover entities must never sit out.
type balancedEnumerator struct {
	minGroupSize int
}

func newBalancedEnumerator(minGroupSize int) roundEnumerator {
	return &balancedEnumerator{minGroupSize: minGroupSize}
}

// balancedSizes returns the group size profile for n vertices and minimum
// group size k: floor(n/k) groups of size k, with the n mod k leftover
// vertices spread one by one across the groups.
func balancedSizes(n, minGroupSize int) []int {
	sizes := make([]int, n/minGroupSize)
	for i := range sizes {
		sizes[i] = minGroupSize
	}
	if len(sizes) == 0 {
		return sizes
	}
	for remaining := n % minGroupSize; remaining > 0; {
		for i := range sizes {
			if remaining == 0 {
				break
			}
			sizes[i]++
			remaining--
		}
	}
	return sizes
}

func (enumerator *balancedEnumerator) EnumerateRounds(state *graph.State, yield func(Round) bool) {
	sizes := balancedSizes(state.Vertices(), enumerator.minGroupSize)
	if len(sizes) == 0 {
		return
	}
	grouped := make([]bool, state.Vertices())
	enumerator.extend(state, grouped, sizes, Round{}, yield)
}

// extend anchors the lowest ungrouped vertex into a group of each size still
// unplaced in the profile. Anchoring on the lowest vertex makes every
// partition appear exactly once, regardless of the order groups were chosen
// in.
func (enumerator *balancedEnumerator) extend(
	state *graph.State,
	grouped []bool,
	remainingSizes []int,
	current Round,
	yield func(Round) bool,
) bool {
	anchor := -1
	for v := range grouped {
		if !grouped[v] {
			anchor = v
			break
		}
	}
	if anchor == -1 {
		return yield(slices.Clone(current))
	}

	tried := map[int]bool{}
	for sizeIndex, size := range remainingSizes {
		if tried[size] {
			continue
		}
		tried[size] = true

		nextSizes := slices.Concat(remainingSizes[:sizeIndex], remainingSizes[sizeIndex+1:])
		proceed := enumerator.groupsOfSize(state, grouped, anchor, size, func(members Group) bool {
			for _, u := range members {
				grouped[u] = true
			}
			inner := enumerator.extend(state, grouped, nextSizes, append(current, members), yield)
			for _, u := range members {
				grouped[u] = false
			}
			return inner
		})
		if !proceed {
			return false
		}
	}
	return true
}

// groupsOfSize emits every clique of exactly the given size containing the
// anchor, drawn from the ungrouped vertices, in ascending lexicographic
// order.
func (enumerator *balancedEnumerator) groupsOfSize(
	state *graph.State,
	grouped []bool,
	anchor, size int,
	emit func(Group) bool,
) bool {
	usable := []int{}
	for _, u := range state.Neighbors(anchor) {
		if !grouped[u] && u > anchor {
			usable = append(usable, u)
		}
	}

	members := Group{anchor}
	var grow func(from int) bool
	grow = func(from int) bool {
		if len(members) == size {
			return emit(slices.Clone(members))
		}
		for i := from; i < len(usable); i++ {
			candidate := usable[i]
			compatible := true
			for _, member := range members {
				if !state.HasEdge(member, candidate) {
					compatible = false
					break
				}
			}
			if !compatible {
				continue
			}
			members = append(members, candidate)
			proceed := grow(i + 1)
			members = members[:len(members)-1]
			if !proceed {
				return false
			}
		}
		return true
	}
	return grow(0)
}
