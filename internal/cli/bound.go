package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/limaJavier/regroup/pkg/solver"
)

func newBoundCmd() *cobra.Command {
	var (
		file     string
		balanced bool
	)

	cmd := &cobra.Command{
		Use:   "bound",
		Short: "Print the round-count upper bound for an instance without solving it",
		Long: `Bound computes the pruning estimate (edge budget and, for the balanced
shape, minimum degree) for the initial state of an instance. The true optimum
never exceeds this value, making it a cheap feasibility check before an
expensive solve.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := loadInput(solveOptions{file: file})
			if err != nil {
				return err
			}
			bound, err := solver.EstimateBound(input, balanced)
			if err != nil {
				return err
			}
			fmt.Printf("At most %d rounds\n", bound)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "instance file (.json or .toml)")
	cmd.Flags().BoolVar(&balanced, "balanced", false, "bound for the balanced round shape")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
