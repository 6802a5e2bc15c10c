// Package graph holds the remaining-pairings state the solver searches over.
//
// A State is a symmetric relation over vertex pairs where an edge means the
// pair has NOT yet been grouped together. The solver never mutates a State in
// place: every applied round derives a fresh State via WithGroupsRemoved, so
// sibling search branches stay independent. Edges are only ever removed along
// a search path, never added.
package graph

import (
	"fmt"
	"math/bits"

	errs "github.com/limaJavier/regroup/pkg/errors"
)

// State is an immutable adjacency structure over vertices 0..n-1, backed by
// one bitset row per vertex.
type State struct {
	n    int
	rows []bitrow
}

type bitrow []uint64

func newBitrow(n int) bitrow {
	return make(bitrow, (n+63)/64)
}

func (r bitrow) set(i int)      { r[i/64] |= 1 << (uint(i) % 64) }
func (r bitrow) clear(i int)    { r[i/64] &^= 1 << (uint(i) % 64) }
func (r bitrow) has(i int) bool { return r[i/64]&(1<<(uint(i)%64)) != 0 }

func (r bitrow) count() int {
	total := 0
	for _, word := range r {
		total += bits.OnesCount64(word)
	}
	return total
}

func (r bitrow) clone() bitrow {
	c := make(bitrow, len(r))
	copy(c, r)
	return c
}

// New builds the initial state: the complete graph over n vertices minus the
// supplied conflict pairs. It rejects negative n, out-of-range indices,
// self-pairs and duplicate pairs.
func New(n int, conflicts [][2]int) (*State, error) {
	if n < 0 {
		return nil, errs.New(errs.ErrCodeInvalidParameter, "entity count must be non-negative, got %d", n)
	}

	state := &State{n: n, rows: make([]bitrow, n)}
	for v := range state.rows {
		state.rows[v] = newBitrow(n)
		for u := 0; u < n; u++ {
			if u != v {
				state.rows[v].set(u)
			}
		}
	}

	seen := make(map[[2]int]bool, len(conflicts))
	for _, pair := range conflicts {
		u, v := pair[0], pair[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, errs.New(errs.ErrCodeMalformedGraph, "conflict pair (%d, %d) references a vertex outside [0, %d)", u, v, n)
		}
		if u == v {
			return nil, errs.New(errs.ErrCodeMalformedGraph, "conflict pair (%d, %d) is a self-pair", u, v)
		}
		key := [2]int{min(u, v), max(u, v)}
		if seen[key] {
			return nil, errs.New(errs.ErrCodeMalformedGraph, "conflict pair (%d, %d) appears more than once", u, v)
		}
		seen[key] = true
		state.rows[u].clear(v)
		state.rows[v].clear(u)
	}

	return state, nil
}

// Vertices returns the number of vertices the state ranges over.
func (s *State) Vertices() int {
	return s.n
}

// HasEdge reports whether u and v may still be grouped together.
func (s *State) HasEdge(u, v int) bool {
	s.check(u)
	s.check(v)
	return s.rows[u].has(v)
}

// Neighbors returns, in ascending order, the vertices still groupable with v.
func (s *State) Neighbors(v int) []int {
	s.check(v)
	neighbors := make([]int, 0, s.rows[v].count())
	for u := 0; u < s.n; u++ {
		if s.rows[v].has(u) {
			neighbors = append(neighbors, u)
		}
	}
	return neighbors
}

// Degree returns the number of vertices still groupable with v.
func (s *State) Degree(v int) int {
	s.check(v)
	return s.rows[v].count()
}

// EdgeCount returns the number of remaining unordered pairs.
func (s *State) EdgeCount() int {
	total := 0
	for v := range s.rows {
		total += s.rows[v].count()
	}
	return total / 2
}

// MinDegree returns the smallest degree over all vertices, or 0 for an empty
// state.
func (s *State) MinDegree() int {
	if s.n == 0 {
		return 0
	}
	minimum := s.rows[0].count()
	for v := 1; v < s.n; v++ {
		if d := s.rows[v].count(); d < minimum {
			minimum = d
		}
	}
	return minimum
}

// WithGroupsRemoved returns a new state with, for every group, all pairwise
// edges among its members removed. The receiver is left untouched.
func (s *State) WithGroupsRemoved(groups [][]int) *State {
	derived := &State{n: s.n, rows: make([]bitrow, s.n)}
	for v := range s.rows {
		derived.rows[v] = s.rows[v].clone()
	}
	for _, group := range groups {
		for _, u := range group {
			derived.check(u)
			for _, v := range group {
				if u != v {
					derived.rows[u].clear(v)
				}
			}
		}
	}
	return derived
}

func (s *State) check(v int) {
	if v < 0 || v >= s.n {
		panic(fmt.Sprintf("vertex %d is outside [0, %d)", v, s.n))
	}
}
