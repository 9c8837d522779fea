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

// Package benchmarks compares editscript against other Go diff libraries.
//
// This is a separate module so that the comparison libraries don't become
// dependencies of the main module.
package benchmarks

import (
	"strings"

	udiff "github.com/aymanbagabas/go-udiff"
	godebug "github.com/kylelemons/godebug/diff"
	mb0 "github.com/mb0/diff"
	gointernal "github.com/rogpeppe/go-internal/diff"
	"github.com/sergi/go-diff/diffmatchpatch"
	"uidiff.dev/editscript"
)

// Impl is one diff implementation under comparison. Diff reports the number
// of changed lines, which gives the benchmark a value to sink and a crude
// consistency check between implementations. The counts are not expected to
// be identical across libraries, only in the same ballpark: some of them
// trade minimality for speed.
type Impl struct {
	Name string
	Diff func(x, y []string) int
}

var Impls = []Impl{
	{
		Name: "editscript",
		Diff: func(x, y []string) int {
			var n int
			for _, d := range editscript.Diffs(x, y) {
				n += d.Size
			}
			return n
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y []string) int {
			dmp := diffmatchpatch.New()
			rx, ry, _ := dmp.DiffLinesToRunes(join(x), join(y))
			var n int
			for _, d := range dmp.DiffMainRunes(rx, ry, false) {
				if d.Type != diffmatchpatch.DiffEqual {
					n += len([]rune(d.Text))
				}
			}
			return n
		},
	},
	{
		Name: "godebug",
		Diff: func(x, y []string) int {
			var n int
			for _, c := range godebug.DiffChunks(x, y) {
				n += len(c.Added) + len(c.Deleted)
			}
			return n
		},
	},
	{
		Name: "mb0",
		Diff: func(x, y []string) int {
			var n int
			for _, c := range mb0.Diff(len(x), len(y), &lines{x, y}) {
				n += c.Del + c.Ins
			}
			return n
		},
	},
	{
		Name: "go-internal",
		Diff: func(x, y []string) int {
			return countChanged(string(gointernal.Diff("x", []byte(join(x)), "y", []byte(join(y)))))
		},
	},
	{
		Name: "go-udiff",
		Diff: func(x, y []string) int {
			return countChanged(udiff.Unified("x", "y", join(x), join(y)))
		},
	},
}

// lines adapts two string slices to mb0/diff's index-based Data interface.
type lines struct{ x, y []string }

func (l *lines) Equal(i, j int) bool { return l.x[i] == l.y[j] }

func join(ls []string) string {
	if len(ls) == 0 {
		return ""
	}
	return strings.Join(ls, "\n") + "\n"
}

// countChanged counts the +/- lines of a unified diff, skipping the file
// header.
func countChanged(unified string) int {
	var n int
	for line := range strings.Lines(unified) {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-") {
			n++
		}
	}
	return n
}
