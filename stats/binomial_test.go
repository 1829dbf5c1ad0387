// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"
)

func TestBinomialDist(t *testing.T) {
	dist := BinomialDist{N: 5, P: 0.2}
	testFunc(t, fmt.Sprintf("%+v.PMF", dist), dist.PMF,
		map[float64]float64{
			-1000: 0,
			-1:    0,
			0:     0.32768,
			1:     0.4096,
			2:     0.2048,
			2.5:   0.2048,
			3:     0.0512,
			4:     0.0064,
			5:     math.Pow(dist.P, 5),
			6:     0,
			1000:  0,
		})

	// The CDF must be the running sum of the PMF.
	sum := 0.0
	for k := -1; k <= dist.N+1; k++ {
		sum += dist.PMF(float64(k))
		if got := dist.CDF(float64(k)); !aeq(sum, got) {
			t.Errorf("%+v.CDF(%d) = %v; want %v", dist, k, got, sum)
		}
	}

	for _, p := range []float64{0, 1} {
		d := BinomialDist{N: 3, P: p}
		k := p * 3
		if got := d.PMF(k); got != 1 {
			t.Errorf("%+v.PMF(%v) = %v; want 1", d, k, got)
		}
	}

	dist = BinomialDist{N: 30, P: 0.5}
	norm := dist.NormalApprox()
	for k := 10; k <= 20; k++ {
		b := dist.PMF(float64(k))
		n := norm.CDF(float64(k)+0.5) - norm.CDF(float64(k)-0.5)
		// The approximation is loose even near the center.
		if err := math.Abs(b/n - 1); err > 0.01 {
			t.Errorf("want %v ≅ %v at %d", b, n, k)
		}
	}

	for _, d := range []BinomialDist{{N: -1, P: 0.5}, {N: 3, P: 1.5}, {N: 3, P: nan}} {
		if d.Validate() == nil {
			t.Errorf("%+v.Validate() = nil; want error", d)
		}
	}
}
