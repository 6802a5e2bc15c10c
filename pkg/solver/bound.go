package solver

import "github.com/limaJavier/regroup/pkg/graph"

// boundEstimator computes an upper bound on the rounds still achievable from
// a state. The bound must never underestimate the true ceiling, otherwise
// pruning would cut off optimal branches.
//
// Two quantities are combined:
//   - Edge budget: each nonempty round consumes at least perRoundEdges edges,
//     so at most EdgeCount/perRoundEdges rounds remain.
//   - Minimum degree: when every vertex is grouped every round (balanced
//     shape), each round removes at least perVertexEdges edges incident to
//     every vertex, so at most MinDegree/perVertexEdges rounds remain. Under
//     the maximal shape a low-degree vertex may simply sit out every round,
//     so its degree bounds nothing and only the edge budget applies.
type boundEstimator struct {
	perRoundEdges  int
	perVertexEdges int // 0 disables the degree bound
}

func newBoundEstimator(n, minGroupSize int, balanced bool) *boundEstimator {
	if !balanced {
		// Cheapest nonempty maximal round: a single clique of minimum size.
		return &boundEstimator{
			perRoundEdges: pairs(minGroupSize),
		}
	}

	sizes := balancedSizes(n, minGroupSize)
	perRound := 0
	smallest := sizes[0]
	for _, size := range sizes {
		perRound += pairs(size)
		if size < smallest {
			smallest = size
		}
	}
	return &boundEstimator{
		perRoundEdges:  perRound,
		perVertexEdges: smallest - 1,
	}
}

// Estimate returns the bound for the given state.
func (estimator *boundEstimator) Estimate(state *graph.State) int {
	bound := state.EdgeCount() / estimator.perRoundEdges
	if estimator.perVertexEdges > 0 {
		if degreeBound := state.MinDegree() / estimator.perVertexEdges; degreeBound < bound {
			bound = degreeBound
		}
	}
	return bound
}

// pairs returns the number of unordered pairs among n vertices.
func pairs(n int) int {
	return n * (n - 1) / 2
}
