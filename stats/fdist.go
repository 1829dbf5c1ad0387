// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// FDist is Snedecor's F distribution with D1 and D2 degrees of
// freedom.
type FDist struct {
	D1, D2 float64
}

func (d FDist) Validate() error {
	if !(d.D1 > 0) || !(d.D2 > 0) {
		return invalidf("FDist: D1=%v and D2=%v must be positive", d.D1, d.D2)
	}
	return nil
}

func (d FDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x == 0 {
		switch {
		case d.D1 < 2:
			return inf
		case d.D1 == 2:
			return 1
		}
		return 0
	}
	h1, h2 := d.D1/2, d.D2/2
	return math.Exp(h1*math.Log(d.D1) + h2*math.Log(d.D2) + (h1-1)*math.Log(x) -
		(h1+h2)*math.Log(d.D2+d.D1*x) - mathx.Lbeta(h1, h2))
}

func (d FDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	return mathx.BetaInc(d.D1*x/(d.D1*x+d.D2), d.D1/2, d.D2/2)
}

func (d FDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("FDist", p); err != nil {
		return nan, err
	}
	y := mathx.BetaIncInv(p, d.D1/2, d.D2/2)
	if y == 1 {
		return inf, nil
	}
	return d.D2 * y / (d.D1 * (1 - y)), nil
}

func (d FDist) Bounds() (float64, float64) {
	hi, _ := d.InvCDF(0.999)
	return 0, hi
}

// Compile returns a sampler drawing the ratio of two independent
// chi-square variates, each scaled by its degrees of freedom.
func (d FDist) Compile() Sampler {
	g1, g2 := compileGamma(d.D1/2), compileGamma(d.D2/2)
	d1, d2 := d.D1, d.D2
	return SamplerFunc(func(src Source) float64 {
		// A chi-square variate with k degrees of freedom is
		// twice a gamma variate with shape k/2; the factors
		// of two cancel.
		return (g1.sample(src) / d1) / (g2.sample(src) / d2)
	})
}
