package labels

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// spreadTolerance is the relative tolerance on gap comparisons, it absorbs rounding so that spreading spread positions again is a no-op.
const spreadTolerance = 1e-9

// chain is a run [start,end) of sorted items that move together.
type chain struct {
	start, end int
}

type spreader struct {
	pos     []float64 // sorted positions
	margins []float64 // half-margins in sorted order
	moves   []float64 // displacement after the rightward compaction
	tol     float64
}

// Spread moves the positions x apart so that neighbours are at least the sum of their half-margins apart, while keeping their order and moving them as little as possible. Margins either holds one value for all positions or one value per position. Positions that already satisfy the constraints are returned unchanged, and spreading the result again with the same margins returns it as is.
func Spread(x, margins []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	copy(out, x)
	if n <= 1 {
		return out
	}
	if len(margins) != 1 && len(margins) != n {
		panic(fmt.Sprintf("labels: Spread needs 1 or %d margins, got %d", n, len(margins)))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return x[order[i]] < x[order[j]]
	})

	s := &spreader{
		pos:     make([]float64, n),
		margins: make([]float64, n),
		moves:   make([]float64, n),
	}
	scale := 1.0
	for k, i := range order {
		s.pos[k] = x[i]
		if len(margins) == 1 {
			s.margins[k] = margins[0]
		} else {
			s.margins[k] = margins[i]
		}
		scale = math.Max(scale, math.Abs(x[i])+2.0*math.Abs(s.margins[k]))
	}
	s.tol = spreadTolerance * scale

	chains := s.compact()
	chains = s.merge(chains)
	chains = s.detach(chains)

	for _, c := range chains {
		offset := s.offset(c)
		for k := c.start; k < c.end; k++ {
			if s.moves[k] != 0.0 || offset != 0.0 {
				out[order[k]] = s.pos[k] + s.moves[k] + offset
			}
		}
	}
	return out
}

// compact moves every item rightwards as far as needed to clear its left neighbour and returns the initial chains. Items that are exactly at the minimum gap from their left neighbour, or had to move, continue the chain of that neighbour.
func (s *spreader) compact() []chain {
	chains := []chain{}
	start := 0
	prev := s.pos[0]
	for k := 1; k < len(s.pos); k++ {
		need := prev + s.margins[k-1] + s.margins[k]
		if s.pos[k] < need-s.tol {
			s.moves[k] = need - s.pos[k]
			prev = need
			continue
		} else if need+s.tol < s.pos[k] {
			chains = append(chains, chain{start, k})
			start = k
		}
		prev = s.pos[k]
	}
	return append(chains, chain{start, len(s.pos)})
}

// offset returns the common shift of a chain that centers its displacements around zero.
func (s *spreader) offset(c chain) float64 {
	sum := 0.0
	for k := c.start; k < c.end; k++ {
		sum += s.moves[k]
	}
	return -sum / float64(c.end-c.start)
}

// overlaps returns true if the last item of a and the first item of b are closer than their required gap once both chains are centered.
func (s *spreader) overlaps(a, b chain) bool {
	i, j := a.end-1, b.start
	left := s.pos[i] + s.moves[i] + s.offset(a)
	right := s.pos[j] + s.moves[j] + s.offset(b)
	return right-left < s.margins[i]+s.margins[j]-s.tol
}

// merge joins the first pair of overlapping adjacent chains, in ascending order, until no pair overlaps.
func (s *spreader) merge(chains []chain) []chain {
	for {
		merged := false
		for i := 0; i+1 < len(chains); i++ {
			if s.overlaps(chains[i], chains[i+1]) {
				chains[i].end = chains[i+1].end
				chains = slices.Delete(chains, i+1, i+2)
				merged = true
				break
			}
		}
		if !merged {
			return chains
		}
	}
}

// detach splits chains at the first boundary, in ascending order, where both halves can be centered independently without overlapping each other or their neighbours, until no such boundary is left.
func (s *spreader) detach(chains []chain) []chain {
	for {
		split := false
	Chains:
		for i, c := range chains {
			for k := c.start + 1; k < c.end; k++ {
				a, b := chain{c.start, k}, chain{k, c.end}
				if s.overlaps(a, b) {
					continue
				} else if 0 < i && s.overlaps(chains[i-1], a) {
					continue
				} else if i+1 < len(chains) && s.overlaps(b, chains[i+1]) {
					continue
				}

				chains[i] = a
				chains = slices.Insert(chains, i+1, b)
				split = true
				break Chains
			}
		}
		if !split {
			return chains
		}
	}
}
