// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// A TDist is a Student's t-distribution with V degrees of freedom.
type TDist struct {
	V float64
}

func (t TDist) Validate() error {
	if !(t.V > 0) {
		return invalidf("TDist: V=%v must be positive", t.V)
	}
	return nil
}

func (t TDist) PDF(x float64) float64 {
	return math.Exp(mathx.Lgamma((t.V+1)/2)-mathx.Lgamma(t.V/2)) /
		math.Sqrt(t.V*math.Pi) * math.Pow(1+(x*x)/t.V, -(t.V+1)/2)
}

func (t TDist) CDF(x float64) float64 {
	if x == 0 {
		return 0.5
	} else if x > 0 {
		return 1 - 0.5*mathx.BetaInc(t.V/(t.V+x*x), t.V/2, 0.5)
	} else if x < 0 {
		return 1 - t.CDF(-x)
	} else {
		return math.NaN()
	}
}

func (t TDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("TDist", p); err != nil {
		return nan, err
	}
	if p == 0.5 {
		return 0, nil
	}
	// Invert the upper tail, which is symmetric with the lower.
	tail := p
	if p > 0.5 {
		tail = 1 - p
	}
	w := mathx.BetaIncInv(2*tail, t.V/2, 0.5)
	x := math.Sqrt(t.V * (1/w - 1))
	if p < 0.5 {
		x = -x
	}
	return x, nil
}

func (t TDist) Bounds() (float64, float64) {
	hi, _ := t.InvCDF(0.9999)
	return -hi, hi
}

// Compile returns a sampler implementing the polar method of R. W.
// Bailey (1994): Polar generation of random variates with the
// t-distribution, Mathematics of Computation 62, 779-781.
func (t TDist) Compile() Sampler {
	v := t.V
	return SamplerFunc(func(src Source) float64 {
		var u, w float64
		for {
			u = 2*raw(src) - 1
			x := 2*raw(src) - 1
			if w = u*u + x*x; w <= 1 {
				break
			}
		}
		return u * math.Sqrt(v*(math.Exp(-2/v*math.Log(w))-1)/w)
	})
}
