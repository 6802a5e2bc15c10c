package solver

import (
	"context"
	"fmt"
	"testing"

	. "github.com/onsi/gomega"
)

// TestSolveProperties checks the structural invariants every result must
// satisfy, across a matrix of small instances and both round shapes.
func TestSolveProperties(t *testing.T) {
	instances := []Input{
		{Entities: 4, MinGroupSize: 2},
		{Entities: 5, MinGroupSize: 2},
		{Entities: 5, MinGroupSize: 3},
		{Entities: 6, MinGroupSize: 3},
		{Entities: 5, MinGroupSize: 2, Conflicts: [][2]int{{0, 1}, {1, 2}, {3, 4}}},
		{Entities: 6, MinGroupSize: 2, Conflicts: [][2]int{{0, 1}, {2, 3}, {4, 5}}},
		// Entity 5 keeps a single partner, so it anchors its group and the
		// group's members are not in ascending order.
		{Entities: 6, MinGroupSize: 2, Conflicts: [][2]int{{0, 5}, {1, 5}, {2, 5}, {3, 5}}},
	}

	for _, balanced := range []bool{false, true} {
		for _, input := range instances {
			name := fmt.Sprintf("n=%d k=%d conflicts=%d balanced=%v",
				input.Entities, input.MinGroupSize, len(input.Conflicts), balanced)

			t.Run(name, func(t *testing.T) {
				g := NewWithT(t)

				options := []Option{}
				if balanced {
					options = append(options, WithBalancedRounds())
				}
				s := NewSolver(options...)

				result, err := s.Solve(context.Background(), input)
				g.Expect(err).NotTo(HaveOccurred())

				//** Replay verification accepts its own output
				g.Expect(s.Verify(result, input)).To(BeTrue())

				//** At least one sequence is always reported, possibly empty
				g.Expect(result.Sequences).NotTo(BeEmpty())

				for _, sequence := range result.Sequences {
					//** Every sequence attains the reported best length
					g.Expect(sequence).To(HaveLen(result.Rounds))

					seen := map[[2]int]bool{}
					for _, round := range sequence {
						for _, group := range round {
							//** Groups never fall below the minimum size
							g.Expect(len(group)).To(BeNumerically(">=", input.MinGroupSize))

							//** No pair of entities is grouped twice, and no
							// conflicting pair is grouped at all. Groups are
							// anchored at the most-constrained entity, not
							// sorted, so pairs are normalized before lookup.
							for i, u := range group {
								for _, v := range group[i+1:] {
									pair := [2]int{min(u, v), max(u, v)}
									g.Expect(seen[pair]).To(BeFalse(), "pair %v grouped twice", pair)
									seen[pair] = true
								}
							}
						}
					}
					for _, conflict := range input.Conflicts {
						pair := [2]int{conflict[0], conflict[1]}
						if pair[0] > pair[1] {
							pair[0], pair[1] = pair[1], pair[0]
						}
						g.Expect(seen[pair]).To(BeFalse(), "conflicting pair %v was grouped", pair)
					}
				}

				//** Node accounting: the search visited at least one node
				g.Expect(result.Stats.Nodes).To(BeNumerically(">", 0))
			})
		}
	}
}
