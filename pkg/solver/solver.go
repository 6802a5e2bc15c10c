// Package solver implements an exact solver for repeated unique group
// assignment: given n entities and a minimum group size k, it finds the
// longest possible sequence of rounds partitioning the entities into
// disjoint groups of size >= k such that no two entities are grouped
// together more than once, and reports every sequence attaining that length.
//
// The search is exact brute force with bound-based pruning, nested two
// levels deep: a round enumerator builds all candidate partitions of one
// round, and a sequence search recurses into each candidate with a freshly
// derived state. It is intended for small entity counts; the search space
// grows combinatorially and becomes impractical around n = 10.
package solver

import (
	"context"
	"runtime"

	"github.com/limaJavier/regroup/pkg/graph"
)

// Solver runs the search on one problem instance at a time. Solve is
// synchronous and runs to completion unless the context is cancelled; Verify
// replays a result against the instance and reports whether every invariant
// holds.
type Solver interface {
	Solve(ctx context.Context, input Input) (Result, error)
	Verify(result Result, input Input) bool
}

// Option configures a Solver.
type Option func(*searchSolver)

// WithBalancedRounds makes every round follow the balanced size profile
// (floor(n/k) groups, leftovers spread evenly, every entity grouped every
// round) instead of the default maximal-partition shape that lets entities
// sit rounds out.
func WithBalancedRounds() Option {
	return func(s *searchSolver) {
		s.balanced = true
	}
}

// WithWorkers distributes the depth-0 branches across the given number of
// workers. A value of 1 (the default) keeps the search single-threaded;
// values below 1 use one worker per CPU.
func WithWorkers(workers int) Option {
	return func(s *searchSolver) {
		s.workers = workers
	}
}

// WithFirstOnly keeps a single optimal sequence instead of every tied one,
// allowing the search to prune branches that could only tie the best length.
func WithFirstOnly() Option {
	return func(s *searchSolver) {
		s.firstOnly = true
	}
}

// NewSolver builds a solver with the default configuration: maximal rounds,
// single-threaded, collecting all tied optima.
func NewSolver(options ...Option) Solver {
	s := &searchSolver{workers: 1}
	for _, option := range options {
		option(s)
	}
	return s
}

type searchSolver struct {
	balanced  bool
	workers   int
	firstOnly bool
}

func (s *searchSolver) Solve(ctx context.Context, input Input) (Result, error) {
	if err := input.validate(); err != nil {
		return Result{}, err
	}
	state, err := graph.New(input.Entities, input.Conflicts)
	if err != nil {
		return Result{}, err
	}

	//** Initialize dependencies
	enumerator := s.newEnumerator(input.MinGroupSize)
	bound := newBoundEstimator(input.Entities, input.MinGroupSize, s.balanced)
	collected := newCollector(s.firstOnly)
	search := newSequenceSearch(enumerator, bound, collected, s.firstOnly)

	//** Run the search to exhaustion
	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > 1 {
		err = search.runParallel(ctx, state, workers)
	} else {
		err = search.run(ctx, state, Sequence{}, 0)
	}
	if err != nil {
		return Result{}, err
	}

	best, sequences := collected.Finalize()
	return Result{
		Rounds:    best,
		Sequences: sequences,
		Stats:     search.stats(),
	}, nil
}

func (s *searchSolver) newEnumerator(minGroupSize int) roundEnumerator {
	if s.balanced {
		return newBalancedEnumerator(minGroupSize)
	}
	return newMaximalEnumerator(minGroupSize)
}

// EstimateBound returns the upper bound on achievable rounds for the initial
// state of an instance, before any search work.
func EstimateBound(input Input, balanced bool) (int, error) {
	if err := input.validate(); err != nil {
		return 0, err
	}
	state, err := graph.New(input.Entities, input.Conflicts)
	if err != nil {
		return 0, err
	}
	return newBoundEstimator(input.Entities, input.MinGroupSize, balanced).Estimate(state), nil
}
