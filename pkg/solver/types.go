package solver

// Group is a set of entity indices grouped together within one round. Every
// member pair must still be groupable in the state the round is applied to.
type Group []int

// Round is a set of pairwise-disjoint groups applied at one step of a
// sequence.
type Round []Group

// Sequence is an ordered list of rounds, each built from the state left
// behind by its predecessor.
type Sequence []Round

// Result holds the outcome of a solve call: the best achievable round count
// and every sequence attaining it, in deterministic enumeration order.
type Result struct {
	Rounds    int
	Sequences []Sequence
	Stats     Stats
}

// Stats reports how much work the search performed.
type Stats struct {
	Nodes  uint64 // search nodes visited
	Pruned uint64 // branches abandoned by the bound check
}

func (g Group) contains(v int) bool {
	for _, u := range g {
		if u == v {
			return true
		}
	}
	return false
}

func (r Round) groups() [][]int {
	groups := make([][]int, len(r))
	for i, g := range r {
		groups[i] = g
	}
	return groups
}
