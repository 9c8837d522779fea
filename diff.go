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

package editscript

import (
	"slices"

	"uidiff.dev/editscript/internal/myers"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Remove Op = iota // Remove elements from the old sequence
	Insert           // Insert elements taken from the new sequence
)

// Diff describes a single edit of a script.
//
//   - For Remove, the Size consecutive elements starting at Index are
//     removed. SourceStart is unset (zero value).
//   - For Insert, the Size consecutive elements of the new sequence starting
//     at SourceStart are inserted at Index.
//
// Size is always at least 1. Index is relative to the old sequence as edited
// by the operations of the script applied before this one.
type Diff struct {
	Op          Op
	Index       int
	Size        int
	SourceStart int
}

// Script is an ordered list of edits that transforms an old sequence into a
// new one.
//
// The order is load-bearing: the edits proceed from the tail of both
// sequences toward the head, so that applying them one by one to a
// progressively edited copy of the old sequence keeps every Index valid
// without adjusting for earlier edits. Applying them in any other order
// generally produces a different sequence.
type Script []Diff

// Diffs compares the contents of x and y and returns a shortest script of
// remove and insert operations that transforms x into y.
//
// If x and y are identical, the script has length zero. The output is
// deterministic: identical inputs always produce an identical script.
//
// The runtime is O((len(x)+len(y))·D) and the extra space O(len(x)+len(y)),
// where D is the number of differences between x and y. Callers that need
// bounded latency on adversarial inputs must cap the input size themselves.
func Diffs[T comparable](x, y []T) Script {
	return fromEdits(myers.Diff(len(x), len(y), func(s, t int) bool {
		return x[s] == y[t]
	}))
}

// DiffsFunc compares the contents of x and y using the provided equality
// comparison and returns a shortest script of remove and insert operations
// that transforms x into y.
//
// eq must be a pure, consistent predicate for the duration of the call: it
// is undefined behavior for eq to answer differently for the same index pair
// or for x and y to be mutated mid-call. Such misuse is detected only by its
// downstream symptom, a panic from the search running out of budget.
func DiffsFunc[T any](x, y []T, eq func(a, b T) bool) Script {
	return fromEdits(myers.Diff(len(x), len(y), func(s, t int) bool {
		return eq(x[s], y[t])
	}))
}

func fromEdits(edits []myers.Edit) Script {
	if len(edits) == 0 {
		return nil
	}
	script := make(Script, len(edits))
	for i, e := range edits {
		d := Diff{Op: Remove, Index: e.Index, Size: e.Size}
		if e.Insert {
			d.Op = Insert
			d.SourceStart = e.SourceStart
		}
		script[i] = d
	}
	return script
}

// Apply plays script against a copy of x, drawing inserted elements from y,
// and returns the result. For a script produced by [Diffs] or [DiffsFunc]
// with the same x and y, the result is equal to y.
//
// x and y are never modified.
func Apply[T any](x, y []T, script Script) []T {
	out := slices.Clone(x)
	for _, d := range script {
		switch d.Op {
		case Remove:
			out = slices.Delete(out, d.Index, d.Index+d.Size)
		case Insert:
			out = slices.Insert(out, d.Index, y[d.SourceStart:d.SourceStart+d.Size]...)
		default:
			panic("never reached")
		}
	}
	return out
}

// Callback receives the operations of a script, strictly in script order.
// It is the boundary for consumers that mirror the edits onto some other
// representation of the sequence, for example a rendered list that animates
// removals and insertions.
type Callback interface {
	// Removed is called for a Remove operation.
	Removed(index, size int)

	// Inserted is called for an Insert operation. sourceStart is the
	// position of the inserted run in the new sequence.
	Inserted(index, size, sourceStart int)
}

// Dispatch delivers the operations of the script to cb in script order.
func (s Script) Dispatch(cb Callback) {
	for _, d := range s {
		switch d.Op {
		case Remove:
			cb.Removed(d.Index, d.Size)
		case Insert:
			cb.Inserted(d.Index, d.Size, d.SourceStart)
		default:
			panic("never reached")
		}
	}
}
