package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/limaJavier/regroup/pkg/solver"
)

// renderText renders a result for a human reader: the best round count
// followed by every optimal sequence, one round per line, groups shown with
// entity labels when the input carries them.
func renderText(result solver.Result, input solver.Input) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Best achievable rounds: %d\n", result.Rounds)
	fmt.Fprintf(&builder, "Optimal sequences: %d\n", len(result.Sequences))

	for i, sequence := range result.Sequences {
		fmt.Fprintf(&builder, "\nSequence %d:\n", i+1)
		if len(sequence) == 0 {
			builder.WriteString("  (no round is possible)\n")
			continue
		}
		for r, round := range sequence {
			groups := lo.Map(round, func(group solver.Group, _ int) string {
				return formatGroup(input, group)
			})
			fmt.Fprintf(&builder, "  Round %d: %s\n", r+1, strings.Join(groups, " "))
		}
	}

	return builder.String()
}
