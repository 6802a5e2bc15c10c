package solver

import (
	"slices"
	"sync"
	"sync/atomic"
)

// collector holds the best length found so far and every terminal sequence
// attaining it. It is the single shared resource between parallel search
// branches: mutations go through one mutex, while the best length is
// mirrored in an atomic so branches can run their prune checks without
// taking the lock.
//
// Sequences are kept in per-branch buckets and merged in branch order at
// Finalize, so parallel runs report the same sequence order as serial runs.
type collector struct {
	mu        sync.Mutex
	best      atomic.Int64
	buckets   [][]Sequence
	firstOnly bool
}

func newCollector(firstOnly bool) *collector {
	c := &collector{
		firstOnly: firstOnly,
	}
	c.best.Store(-1)
	return c
}

// Best returns the best terminal length recorded so far, or -1 when no
// terminal sequence has been reached yet.
func (c *collector) Best() int {
	return int(c.best.Load())
}

// Consider applies the replace/append/discard rule to a terminal sequence
// found by the given branch: a strictly longer sequence replaces everything
// recorded so far, a tie is appended, anything shorter is discarded.
func (c *collector) Consider(branch int, sequence Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for branch >= len(c.buckets) {
		c.buckets = append(c.buckets, nil)
	}

	length := int64(len(sequence))
	best := c.best.Load()
	switch {
	case length > best:
		for i := range c.buckets {
			c.buckets[i] = nil
		}
		c.buckets[branch] = []Sequence{slices.Clone(sequence)}
		c.best.Store(length)
	case length == best && !c.firstOnly:
		c.buckets[branch] = append(c.buckets[branch], slices.Clone(sequence))
	}
}

// Finalize returns the best length and the recorded sequences in branch
// order. A search that never reached a terminal node reports zero rounds and
// the single empty sequence.
func (c *collector) Finalize() (int, []Sequence) {
	c.mu.Lock()
	defer c.mu.Unlock()

	best := c.best.Load()
	if best < 0 {
		return 0, []Sequence{{}}
	}

	sequences := []Sequence{}
	for _, bucket := range c.buckets {
		for _, sequence := range bucket {
			if int64(len(sequence)) == best {
				sequences = append(sequences, sequence)
			}
		}
	}
	return int(best), sequences
}
