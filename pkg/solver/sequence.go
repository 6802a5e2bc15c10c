package solver

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/limaJavier/regroup/pkg/graph"
)

// sequenceSearch is the outer backtracking engine: it drives the round
// enumerator at every depth, derives a fresh state per candidate round and
// records terminal sequences in the collector.
//
// Pruning: a branch is abandoned when its depth plus the bound estimate
// cannot strictly beat the best known length. When only one optimal sequence
// is wanted the check tightens to "cannot beat or tie", which prunes harder
// but may drop tied optima.
type sequenceSearch struct {
	enumerator roundEnumerator
	bound      *boundEstimator
	collector  *collector
	firstOnly  bool

	nodes  *xsync.Counter
	pruned *xsync.Counter
}

func newSequenceSearch(enumerator roundEnumerator, bound *boundEstimator, collector *collector, firstOnly bool) *sequenceSearch {
	return &sequenceSearch{
		enumerator: enumerator,
		bound:      bound,
		collector:  collector,
		firstOnly:  firstOnly,
		nodes:      xsync.NewCounter(),
		pruned:     xsync.NewCounter(),
	}
}

// run explores the subtree rooted at state, with path holding the rounds
// applied so far. branch identifies the collector bucket terminal sequences
// are recorded into.
func (search *sequenceSearch) run(ctx context.Context, state *graph.State, path Sequence, branch int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	search.nodes.Inc()

	if search.prunable(len(path), state) {
		search.pruned.Inc()
		return nil
	}

	terminal := true
	var innerErr error
	search.enumerator.EnumerateRounds(state, func(round Round) bool {
		terminal = false
		successor := state.WithGroupsRemoved(round.groups())
		if err := search.run(ctx, successor, append(path, round), branch); err != nil {
			innerErr = err
			return false
		}
		return true
	})
	if innerErr != nil {
		return innerErr
	}

	if terminal {
		search.collector.Consider(branch, path)
	}
	return nil
}

// runParallel distributes the depth-0 candidate rounds across a bounded
// worker pool. Sibling branches are independent once each holds its own
// derived state; the collector is the only shared resource, and every branch
// re-checks the (possibly improved) best length through it at each node.
func (search *sequenceSearch) runParallel(ctx context.Context, state *graph.State, workers int) error {
	rounds := []Round{}
	search.enumerator.EnumerateRounds(state, func(round Round) bool {
		rounds = append(rounds, round)
		return true
	})
	search.nodes.Inc()

	if len(rounds) == 0 {
		search.collector.Consider(0, Sequence{})
		return nil
	}

	semaphore := make(chan struct{}, workers)
	errors := make([]error, len(rounds))
	var wg sync.WaitGroup

	for branch, round := range rounds {
		wg.Add(1)
		go func(branch int, round Round) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			successor := state.WithGroupsRemoved(round.groups())
			errors[branch] = search.run(ctx, successor, Sequence{round}, branch)
		}(branch, round)
	}
	wg.Wait()

	for _, err := range errors {
		if err != nil {
			return err
		}
	}
	return nil
}

// prunable reports whether the subtree at the given depth cannot contribute
// to the result set.
func (search *sequenceSearch) prunable(depth int, state *graph.State) bool {
	best := search.collector.Best()
	if best < 0 {
		return false
	}
	ceiling := depth + search.bound.Estimate(state)
	if search.firstOnly {
		return ceiling <= best
	}
	return ceiling < best
}

func (search *sequenceSearch) stats() Stats {
	return Stats{
		Nodes:  uint64(search.nodes.Value()),
		Pruned: uint64(search.pruned.Value()),
	}
}
