package solver

import (
	"slices"

	"github.com/limaJavier/regroup/pkg/graph"
)

// roundEnumerator lazily yields every candidate round for a state, in a
// deterministic order. The yield function returning false stops the
// enumeration; a stopped enumeration cannot be restarted.
type roundEnumerator interface {
	EnumerateRounds(state *graph.State, yield func(Round) bool)
}

// maximalEnumerator yields every maximal partition of the vertex set into
// disjoint cliques of size >= minGroupSize. A partition is maximal when no
// group can absorb another ungrouped vertex and no additional group can be
// formed from the ungrouped vertices. Vertices may be left ungrouped, which
// is how entities with too few remaining partners sit a round out.
type maximalEnumerator struct {
	minGroupSize int
}

func newMaximalEnumerator(minGroupSize int) roundEnumerator {
	return &maximalEnumerator{minGroupSize: minGroupSize}
}

func (enumerator *maximalEnumerator) EnumerateRounds(state *graph.State, yield func(Round) bool) {
	n := state.Vertices()
	grouped := make([]bool, n)  // vertices already placed in a group this round
	benched := make([]bool, n)  // vertices explicitly left out of this round
	enumerator.extend(state, grouped, benched, Round{}, yield)
}

// extend grows the partial round by deciding the fate of one vertex: either
// it anchors one of its candidate groups, or it is benched for the rest of
// the round. Returns false when the consumer stopped the enumeration.
func (enumerator *maximalEnumerator) extend(
	state *graph.State,
	grouped, benched []bool,
	current Round,
	yield func(Round) bool,
) bool {
	vertex, usable := mostConstrainedVertex(state, grouped, benched)
	if vertex == -1 {
		if len(current) == 0 || !enumerator.isMaximal(state, current, benched) {
			return true
		}
		return yield(slices.Clone(current))
	}

	//** Branch 1: every candidate group anchored at the chosen vertex
	for _, members := range enumerator.candidateGroups(state, vertex, usable) {
		for _, u := range members {
			grouped[u] = true
		}
		proceed := enumerator.extend(state, grouped, benched, append(current, members), yield)
		for _, u := range members {
			grouped[u] = false
		}
		if !proceed {
			return false
		}
	}

	//** Branch 2: the chosen vertex sits this round out
	benched[vertex] = true
	proceed := enumerator.extend(state, grouped, benched, current, yield)
	benched[vertex] = false
	return proceed
}

// mostConstrainedVertex picks the undecided vertex with the fewest usable
// partners, ties broken by lowest index for determinism. Returns -1 when
// every vertex is decided, along with the chosen vertex's usable partners in
// ascending order.
func mostConstrainedVertex(state *graph.State, grouped, benched []bool) (int, []int) {
	chosen, chosenCount := -1, -1
	for v := range grouped {
		if grouped[v] || benched[v] {
			continue
		}
		count := 0
		for _, u := range state.Neighbors(v) {
			if !grouped[u] && !benched[u] {
				count++
			}
		}
		if chosen == -1 || count < chosenCount {
			chosen, chosenCount = v, count
		}
	}
	if chosen == -1 {
		return -1, nil
	}

	usable := make([]int, 0, chosenCount)
	for _, u := range state.Neighbors(chosen) {
		if !grouped[u] && !benched[u] {
			usable = append(usable, u)
		}
	}
	return chosen, usable
}

// candidateGroups returns every clique {vertex} ∪ S with S drawn from the
// usable partners and |S| >= minGroupSize-1, in ascending lexicographic
// order of S. Supersets follow their subsets, so groups of size k come
// before their extensions.
func (enumerator *maximalEnumerator) candidateGroups(state *graph.State, vertex int, usable []int) []Group {
	groups := []Group{}
	members := Group{vertex}

	var grow func(from int)
	grow = func(from int) {
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
			if len(members) >= enumerator.minGroupSize {
				groups = append(groups, slices.Clone(members))
			}
			grow(i + 1)
			members = members[:len(members)-1]
		}
	}
	grow(0)

	return groups
}

// isMaximal checks that no benched vertex can extend one of the round's
// groups and that no clique of size >= minGroupSize survives among the
// benched vertices.
func (enumerator *maximalEnumerator) isMaximal(state *graph.State, round Round, benched []bool) bool {
	leftover := []int{}
	for v, out := range benched {
		if out {
			leftover = append(leftover, v)
		}
	}

	for _, v := range leftover {
		for _, group := range round {
			if extends(state, v, group) {
				return false
			}
		}
	}

	return !hasClique(state, leftover, enumerator.minGroupSize)
}

// extends reports whether vertex is still groupable with every member of
// group, i.e. whether group ∪ {vertex} would be a valid larger group.
func extends(state *graph.State, vertex int, group Group) bool {
	for _, member := range group {
		if !state.HasEdge(vertex, member) {
			return false
		}
	}
	return true
}

// hasClique reports whether any subset of vertices of the given size is a
// clique in the state.
func hasClique(state *graph.State, vertices []int, size int) bool {
	if size <= 0 {
		return true
	}

	var search func(members []int, from int) bool
	search = func(members []int, from int) bool {
		if len(members) == size {
			return true
		}
		for i := from; i < len(vertices); i++ {
			candidate := vertices[i]
			compatible := true
			for _, member := range members {
				if !state.HasEdge(member, candidate) {
					compatible = false
					break
				}
			}
			if compatible && search(append(members, candidate), i+1) {
				return true
			}
		}
		return false
	}
	return search([]int{}, 0)
}
