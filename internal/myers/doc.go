// Copyright 2026 The editscript Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package myers implements Myers' algorithm with the linear space refinement
// from section 4b of the paper, restructured around an explicit work stack.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits
// that transform the old sequence x into the new sequence y. For x = "ABCA"
// and y = "CBA" the graph looks like this:
//
//	(0,0)   A   B   C   A
//	    ┌───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │
//	 C  ├───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │
//	 B  ├───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │
//	 A  └───┴───┴───┴───┘
//	    0   1   2   3     (4,3)
//
// A horizontal edge removes an element from x, a vertical edge inserts an
// element from y, and a diagonal edge is a match and costs nothing. A
// shortest edit script corresponds to a minimum cost path from the top left
// to the bottom right corner.
//
// We use s and t for the horizontal and vertical coordinates and k = s - t
// for diagonals. A path with d non-diagonal edges is a d-path. The furthest
// reaching d-path on diagonal k can be computed greedily from the furthest
// reaching (d-1)-paths on the diagonals k-1 and k+1 (Lemma 2 in the paper):
// take the neighbor that reaches further, take one non-diagonal step onto k,
// then slide along the diagonal as long as elements match. Storing only the
// frontier (the furthest reaching s per diagonal) needs O(n+m) space.
//
// # Middle snakes
//
// Running the frontier search simultaneously forwards from (0,0) and
// backwards from (n,m) until the two frontiers meet on some diagonal finds a
// middle snake: a run of diagonal edges, adjoined by the single non-diagonal
// step taken to reach it, that lies on a shortest path (Lemma 3). Matching
// elements at the rectangle's borders are stripped off and recorded before
// the search, so it always starts on differing corner elements. Because the
// optimal d is odd or even as delta = n - m is odd or even, the overlap check
// is only needed after forward steps when delta is odd and after backward
// steps when delta is even. The meeting point is guaranteed to exist within
// d <= ⌈(n+m)/2⌉; running past that budget means the inputs or the equality
// predicate changed mid-computation, which is a fatal error.
//
// The snake splits the problem into the rectangle before it and the
// rectangle after it, both strictly smaller and neither containing the
// elements consumed by the snake's run or its non-diagonal step. The original
// formulation recurses into both halves; to keep the stack depth independent
// of the edit distance, this implementation pushes the halves onto an
// explicit LIFO worklist instead and loops until it drains.
//
// Once no unresolved rectangle remains, the recorded snakes (sorted by
// position and anchored by a synthetic zero-size snake at (0,0)) partition
// a shortest path. Walking them from the end of both sequences toward the
// start turns the gap before each snake into one removal and/or one
// insertion operation. The resulting script is emitted tail to head on
// purpose: every operation's index is valid against the sequence as edited
// by the operations before it, without any index adjustment.
//
// # References
//
// Myers, E.W. An O(ND) difference algorithm and its variations.
// Algorithmica 1, 251-266 (1986). https://doi.org/10.1007/BF01840446
package myers
