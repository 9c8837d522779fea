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

package benchmarks

import (
	"crypto/sha256"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

// corpus generates n lines plus a copy with d lines changed.
func corpus(name string, n, d int) (x, y []string) {
	rng := rand.New(rand.NewChaCha8(sha256.Sum256([]byte(name))))
	x = make([]string, n)
	for i := range x {
		x[i] = fmt.Sprintf("line %d content %d", i, rng.IntN(1000))
	}
	y = slices.Clone(x)
	for range d {
		y[rng.IntN(len(y))] = fmt.Sprintf("changed %d", rng.IntN(1000))
	}
	return x, y
}

func TestImpls(t *testing.T) {
	x, _ := corpus("TestImpls", 100, 0)
	for _, impl := range Impls {
		if got := impl.Diff(x, x); got != 0 {
			t.Errorf("%s: identical inputs reported %d changed lines, want 0", impl.Name, got)
		}
		if got := impl.Diff(x, nil); got == 0 {
			t.Errorf("%s: removing every line reported 0 changed lines", impl.Name)
		}
	}
}

var sink int

func BenchmarkImpls(b *testing.B) {
	params := []struct{ N, D int }{
		{100, 10},
		{1_000, 100},
		{10_000, 100},
	}
	for _, p := range params {
		name := fmt.Sprintf("N=%d_D=%d", p.N, p.D)
		x, y := corpus(name, p.N, p.D)
		for _, impl := range Impls {
			b.Run(fmt.Sprintf("impl=%s/%s", impl.Name, name), func(b *testing.B) {
				b.ReportAllocs()
				for b.Loop() {
					sink = impl.Diff(x, y)
				}
			})
		}
	}
}
