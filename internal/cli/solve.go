package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/limaJavier/regroup/pkg/cache"
	errs "github.com/limaJavier/regroup/pkg/errors"
	"github.com/limaJavier/regroup/pkg/solver"
)

type solveOptions struct {
	file      string
	entities  int
	groupSize int
	conflicts []string
	balanced  bool
	workers   int
	firstOnly bool
	format    string
	outFile   string
	cacheDir  string
	timeout   time.Duration
}

func newSolveCmd() *cobra.Command {
	opts := solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one instance and print every optimal sequence",
		Long: `Solve reads a problem instance from a JSON or TOML file (or from the
--entities/--group-size/--conflict flags) and runs the exact search. The
output lists the best achievable number of rounds and every sequence of
rounds attaining it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "instance file (.json or .toml)")
	cmd.Flags().IntVarP(&opts.entities, "entities", "n", 0, "number of entities (ignored when --file is set)")
	cmd.Flags().IntVarP(&opts.groupSize, "group-size", "k", 0, "minimum group size (ignored when --file is set)")
	cmd.Flags().StringArrayVar(&opts.conflicts, "conflict", nil, "pair that must not be grouped, as u-v (repeatable)")
	cmd.Flags().BoolVar(&opts.balanced, "balanced", false, "force every round onto the balanced size profile (no entity sits out)")
	cmd.Flags().IntVar(&opts.workers, "workers", 1, "parallel workers for the top search level")
	cmd.Flags().BoolVar(&opts.firstOnly, "first", false, "report a single optimal sequence instead of all ties")
	cmd.Flags().StringVar(&opts.format, "format", "text", "output format: text or json")
	cmd.Flags().StringVarP(&opts.outFile, "out", "o", "", "write output to a file instead of stdout")
	cmd.Flags().StringVar(&opts.cacheDir, "cache", "", "directory for the result cache (disabled when empty)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "abandon the search after this duration (0 disables)")

	return cmd
}

func runSolve(ctx context.Context, opts solveOptions) error {
	logger := loggerFromContext(ctx)

	input, err := loadInput(opts)
	if err != nil {
		return err
	}
	logger.Debugf("instance: %d entities, minimum group size %d, %d conflicts",
		input.Entities, input.MinGroupSize, len(input.Conflicts))

	store, err := openCache(opts.cacheDir)
	if err != nil {
		return err
	}
	key := cache.Key("solve", input, opts.balanced, opts.firstOnly)

	var result solver.Result
	if data, hit, err := store.Get(ctx, key); err != nil {
		return err
	} else if hit {
		if err := json.Unmarshal(data, &result); err == nil {
			logger.Debug("result served from cache")
			return writeResult(result, input, opts)
		}
		// A corrupt entry falls through to a fresh solve.
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	running := newProgress(logger)
	s := newSolver(opts)
	result, err = s.Solve(ctx, input)
	if err != nil {
		return err
	}
	running.done(fmt.Sprintf("explored %d nodes, pruned %d branches", result.Stats.Nodes, result.Stats.Pruned))

	if !s.Verify(result, input) {
		return errs.New(errs.ErrCodeInternal, "result failed verification")
	}

	if data, err := json.Marshal(result); err == nil {
		if err := store.Set(ctx, key, data); err != nil {
			logger.Warnf("cannot store result in cache: %v", err)
		}
	}

	return writeResult(result, input, opts)
}

func newSolver(opts solveOptions) solver.Solver {
	options := []solver.Option{solver.WithWorkers(opts.workers)}
	if opts.balanced {
		options = append(options, solver.WithBalancedRounds())
	}
	if opts.firstOnly {
		options = append(options, solver.WithFirstOnly())
	}
	return solver.NewSolver(options...)
}

func loadInput(opts solveOptions) (solver.Input, error) {
	if opts.file != "" {
		switch strings.ToLower(filepath.Ext(opts.file)) {
		case ".json":
			return solver.InputFromJSON(opts.file)
		case ".toml":
			return solver.InputFromTOML(opts.file)
		default:
			return solver.Input{}, errs.New(errs.ErrCodeInvalidInput, "unsupported instance file extension: %v", opts.file)
		}
	}

	conflicts, err := parseConflicts(opts.conflicts)
	if err != nil {
		return solver.Input{}, err
	}
	return solver.Input{
		Entities:     opts.entities,
		MinGroupSize: opts.groupSize,
		Conflicts:    conflicts,
	}, nil
}

// parseConflicts turns "u-v" flag values into vertex pairs.
func parseConflicts(raw []string) ([][2]int, error) {
	conflicts := make([][2]int, 0, len(raw))
	for _, pair := range raw {
		parts := strings.Split(pair, "-")
		if len(parts) != 2 {
			return nil, errs.New(errs.ErrCodeInvalidInput, "conflict %q is not of the form u-v", pair)
		}
		u, errU := strconv.Atoi(parts[0])
		v, errV := strconv.Atoi(parts[1])
		if errU != nil || errV != nil {
			return nil, errs.New(errs.ErrCodeInvalidInput, "conflict %q is not of the form u-v", pair)
		}
		conflicts = append(conflicts, [2]int{u, v})
	}
	return conflicts, nil
}

func openCache(dir string) (cache.Cache, error) {
	if dir == "" {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

func writeResult(result solver.Result, input solver.Input, opts solveOptions) error {
	var rendered string
	switch opts.format {
	case "text":
		rendered = renderText(result, input)
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		rendered = string(data) + "\n"
	default:
		return errs.New(errs.ErrCodeInvalidInput, "%v is not a valid format", opts.format)
	}

	if opts.outFile == "" {
		fmt.Print(rendered)
		return nil
	}
	return os.WriteFile(opts.outFile, []byte(rendered), 0o644)
}

// labelFor names an entity for rendering, falling back to its index.
func labelFor(input solver.Input, v int) string {
	if v < len(input.Labels) {
		return input.Labels[v]
	}
	return strconv.Itoa(v)
}

func formatGroup(input solver.Input, group solver.Group) string {
	names := lo.Map(group, func(v int, _ int) string { return labelFor(input, v) })
	return "{" + strings.Join(names, ", ") + "}"
}
