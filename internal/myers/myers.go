// Copyright 2026 The editscript Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package myers

import (
	"cmp"
	"math"
	"slices"
)

// snake is a run of size diagonal edges adjoined by a single non-diagonal
// step. s, t is the start of the run in old and new coordinates (after the
// step for forward snakes, before it for reverse ones). removal reports
// whether the step consumes an element of the old sequence rather than the
// new one. reverse reports that the snake was found by the backward search,
// which places the step after the run instead of before it.
type snake struct {
	s, t    int
	size    int
	removal bool
	reverse bool
}

// span is a rectangle of the edit graph that still has to be solved.
// Invariant: smin <= smax and tmin <= tmax, except for spans that skip the
// non-diagonal step of a reverse snake, which may come out inverted and are
// discarded as degenerate by midSnake.
type span struct {
	smin, smax int
	tmin, tmax int
}

// solver holds the call-scoped state for one edit script computation. The
// frontier arrays vf and vb are shared between all sub-rectangle solves of
// the call; they must never be shared between concurrent calls.
type solver struct {
	n, m int // lengths of the old and new sequence
	eq   func(s, t int) bool

	// vf and vb store the furthest reaching endpoint of a d-path in diagonal
	// k at v[v0+k], for the forwards and backwards search respectively. The
	// endpoints only store the s-coordinate since t = s - k.
	vf, vb []int
	v0     int

	snakes []snake
	stack  []span
}

func newSolver(n, m int, eq func(s, t int) bool) *solver {
	// Every diagonal the search can touch fits into [-mx, mx]: subproblem
	// bands are shifted by their delta, but shrink by at least as much.
	mx := n + m + max(n, m) - min(n, m)
	buf := make([]int, 2*(2*mx+1)) // vf and vb with a single allocation
	return &solver{
		n:  n,
		m:  m,
		eq: eq,
		vf: buf[: 2*mx+1 : 2*mx+1],
		vb: buf[2*mx+1:],
		v0: mx,
	}
}

// solve finds all snakes of a shortest path through the edit graph. Instead
// of recursing into the two sub-rectangles a snake splits off, they are
// pushed onto an explicit worklist whose backing array is reused across
// splits, so neither the goroutine stack nor the heap grows with the edit
// distance.
func (v *solver) solve() {
	v.stack = append(v.stack, span{0, v.n, 0, v.m})
	for len(v.stack) > 0 {
		sp := v.stack[len(v.stack)-1]
		v.stack = v.stack[:len(v.stack)-1]

		// Strip matching elements from both ends of the rectangle and
		// record them as snakes. midSnake requires this: with a matching
		// border the d = 0 round could already hold the middle snake,
		// which the search there never checks for.
		p := 0
		for sp.smin+p < sp.smax && sp.tmin+p < sp.tmax && v.eq(sp.smin+p, sp.tmin+p) {
			p++
		}
		if p > 0 {
			v.snakes = append(v.snakes, snake{s: sp.smin, t: sp.tmin, size: p})
			sp.smin += p
			sp.tmin += p
		}
		q := 0
		for sp.smax-q > sp.smin && sp.tmax-q > sp.tmin && v.eq(sp.smax-q-1, sp.tmax-q-1) {
			q++
		}
		if q > 0 {
			sp.smax -= q
			sp.tmax -= q
			v.snakes = append(v.snakes, snake{s: sp.smax, t: sp.tmax, size: q})
		}

		sn, ok := v.midSnake(sp)
		if !ok {
			continue
		}

		// Translate from span-local to global coordinates.
		sn.s += sp.smin
		sn.t += sp.tmin
		if sn.size > 0 {
			v.snakes = append(v.snakes, sn)
		}

		// The rectangle before the snake. The element consumed by the
		// snake's non-diagonal step belongs to neither half: for a forward
		// snake the step precedes the run, so it is excluded here; for a
		// reverse snake it is excluded from the right half below.
		left := span{smin: sp.smin, tmin: sp.tmin}
		switch {
		case sn.reverse:
			left.smax = sn.s
			left.tmax = sn.t
		case sn.removal:
			left.smax = sn.s - 1
			left.tmax = sn.t
		default:
			left.smax = sn.s
			left.tmax = sn.t - 1
		}

		// The rectangle after the snake.
		right := span{smax: sp.smax, tmax: sp.tmax}
		switch {
		case !sn.reverse:
			right.smin = sn.s + sn.size
			right.tmin = sn.t + sn.size
		case sn.removal:
			right.smin = sn.s + sn.size + 1
			right.tmin = sn.t + sn.size
		default:
			right.smin = sn.s + sn.size
			right.tmin = sn.t + sn.size + 1
		}

		v.stack = append(v.stack, left, right)
	}
}

// midSnake finds a middle snake of sp, in span-local coordinates, by
// searching forward from the top left and backward from the bottom right
// corner until the two frontiers meet. It reports false if sp is degenerate,
// that is if either side of the rectangle is empty.
//
// The rectangle must not have a matching prefix or suffix: solve strips
// those before calling, which guarantees that the corner elements differ and
// lets the search start at d = 1 with trivial d = 0 frontiers.
func (v *solver) midSnake(sp span) (snake, bool) {
	n := sp.smax - sp.smin
	m := sp.tmax - sp.tmin
	if n < 1 || m < 1 {
		return snake{}, false
	}

	delta := n - m

	// From Corollary 1 of the paper: the searches can only meet after a
	// forward step when delta is odd and after a backward step when it is
	// even.
	odd := delta%2 != 0

	// Diagonals touching the rectangle; t = s - k gives k = s - t.
	kmin, kmax := -m, n

	// The forward search is centered on diagonal 0, the backward search on
	// diagonal delta. Each band grows by one diagonal per round until it
	// reaches the rectangle bounds. The sentinel written just outside a
	// growing edge loses every step choice against a real frontier value, so
	// the k-loops need no edge cases and no stored endpoint ever leaves the
	// rectangle.
	fmin, fmax := 0, 0
	bmin, bmax := delta, delta
	v.vf[v.v0] = 0
	v.vb[v.v0+delta] = n

	for d := 1; d <= (n+m+1)/2; d++ {
		// Forward search.
		if fmin > kmin {
			fmin--
			v.vf[v.v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			v.vf[v.v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := v.v0 + k

			// Extend the further reaching of the two neighboring d-1
			// endpoints onto diagonal k. The step from k-1 is a removal,
			// the step from k+1 an insertion; ties prefer the removal.
			var s int
			var removal bool
			if v.vf[k0-1] < v.vf[k0+1] {
				s = v.vf[k0+1]
				removal = false
			} else {
				s = v.vf[k0-1] + 1
				removal = true
			}
			t := s - k

			// Then follow the diagonal as far as it goes. The run from
			// (s0, t0) to the endpoint is matched element by element and is
			// the candidate middle snake.
			s0, t0 := s, t
			for s < n && t < m && v.eq(sp.smin+s, sp.tmin+t) {
				s++
				t++
			}
			v.vf[k0] = s

			// The backward frontier holds its d-1 round on [bmin, bmax].
			// When the endpoint reaches past it on the same diagonal, the
			// run walked above lies on a shortest path and splits it.
			if odd && bmin <= k && k <= bmax && s >= v.vb[k0] {
				return snake{s: s0, t: t0, size: s - s0, removal: removal, reverse: false}, true
			}
		}

		// Backward search, mirrored around the bottom right corner.
		if bmin > kmin {
			bmin--
			v.vb[v.v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			v.vb[v.v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := v.v0 + k

			var s int
			var removal bool
			if v.vb[k0-1] < v.vb[k0+1] {
				s = v.vb[k0-1]
				removal = false
			} else {
				s = v.vb[k0+1] - 1
				removal = true
			}
			t := s - k

			// The run is walked from s0 back toward the top left, so
			// the non-diagonal step follows it.
			s0 := s
			for s > 0 && t > 0 && v.eq(sp.smin+s-1, sp.tmin+t-1) {
				s--
				t--
			}
			v.vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= v.vf[k0] {
				return snake{s: s, t: t, size: s0 - s, removal: removal, reverse: true}, true
			}
		}
	}

	// Unreachable for stable inputs: Lemma 3 guarantees a meeting point
	// within the budget. Getting here means the sequences or the equality
	// function changed while the diff was being computed.
	panic("myers: no middle snake found; the sequences or the equality function must not change during the diff")
}

// script turns the snakes found by solve into an edit script. The snakes
// partition a shortest path; the gap between two consecutive snakes is
// emitted as at most one removal and one insertion. Emission walks from the
// tail of both sequences toward the head and the result is deliberately not
// reversed, see the package documentation.
func (v *solver) script() []Edit {
	snakes := v.snakes
	slices.SortFunc(snakes, func(a, b snake) int {
		if c := cmp.Compare(a.s, b.s); c != 0 {
			return c
		}
		return cmp.Compare(a.t, b.t)
	})

	// Anchor the walk with a zero-size snake at the origin so that it always
	// terminates cleanly at the start of both sequences.
	if len(snakes) == 0 || snakes[0].s != 0 || snakes[0].t != 0 {
		snakes = slices.Insert(snakes, 0, snake{})
	}

	var edits []Edit
	posS, posT := v.n, v.m
	for i := len(snakes) - 1; i >= 0; i-- {
		sn := snakes[i]
		endS := sn.s + sn.size
		endT := sn.t + sn.size
		if endS < posS {
			edits = append(edits, Edit{
				Index: endS,
				Size:  posS - endS,
			})
		}
		if endT < posT {
			// Insertions are placed at the old-sequence position where the
			// match resumes, not at their new-sequence position.
			edits = append(edits, Edit{
				Index:       endS,
				Size:        posT - endT,
				SourceStart: endT,
				Insert:      true,
			})
		}
		posS, posT = sn.s, sn.t
	}
	return edits
}
