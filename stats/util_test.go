// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"math/rand/v2"
	"testing"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, out := range vals {
		got := f(in)
		if !(aeq(out, got) || (math.IsNaN(out) && math.IsNaN(got))) {
			t.Errorf("%s(%v) = %v; want %v", name, in, got, out)
		}
	}
}

// testSource returns a deterministic Source.
func testSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

// countingSource counts the values drawn from src.
type countingSource struct {
	src Source
	n   int
}

func (s *countingSource) Float64() float64 {
	s.n++
	return s.src.Float64()
}

// probePoints returns n points strictly inside d's bounds, offset
// from the evenly spaced grid so they avoid bin edges and end points.
func probePoints(d Dist, n int) []float64 {
	lo, hi := d.Bounds()
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*(float64(i)+0.37)/float64(n)
	}
	return xs
}

// recoverDomainError calls f and returns the *DomainError it panics
// with, or nil if it does not panic with one.
func recoverDomainError(f func()) (err *DomainError) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(*DomainError)
		}
	}()
	f()
	return nil
}
