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

// Package editscript computes shortest edit scripts between two slices: a
// minimal ordered list of remove and insert operations that transforms the
// old slice into the new one. It is aimed at callers that replay the script
// against another representation of the sequence, typically a rendered list
// whose updates are animated one operation at a time.
//
// The main functions are [Diffs], which compares elements with ==, and
// [DiffsFunc], which compares them with a caller-supplied predicate (for
// example, by identity key instead of full value equality). [Apply] replays
// a script against a slice, and [Script.Dispatch] hands the operations to a
// [Callback].
//
// Scripts are ordered from the tail of the sequences toward the head and
// must be applied in that order; see [Script].
//
// The computation is a pure function of its inputs: it performs no I/O,
// keeps no state between calls, and independent calls are safe to run
// concurrently. Complexity is O((len(x)+len(y))·D) time and
// O(len(x)+len(y)) space, where D is the number of differences.
package editscript
