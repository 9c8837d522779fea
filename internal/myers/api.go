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

// Edit is a single operation of an edit script.
//
// An edit either removes Size consecutive elements of the old sequence
// starting at Index, or, if Insert is set, inserts the Size elements of the
// new sequence starting at SourceStart into the old sequence at Index. The
// Index is relative to the old sequence as edited by the operations emitted
// before this one.
type Edit struct {
	Index       int
	Size        int
	SourceStart int
	Insert      bool
}

// Diff computes a shortest edit script that transforms an old sequence of n
// elements into a new sequence of m elements. Elements are only ever
// compared through eq, which is given an index into the old and an index
// into the new sequence.
//
// The script is ordered tail to head: applying the edits in the order
// returned keeps every Index valid without adjusting for earlier edits.
//
// eq must be consistent for the duration of the call. If it isn't, or if the
// sequences it closes over are mutated mid-computation, Diff panics.
func Diff(n, m int, eq func(s, t int) bool) []Edit {
	slv := newSolver(n, m, eq)
	slv.solve()
	return slv.script()
}
