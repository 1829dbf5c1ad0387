// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// WeibullDist is a Weibull distribution with shape K and scale
// Lambda.
type WeibullDist struct {
	K, Lambda float64
}

func (d WeibullDist) Validate() error {
	if !(d.K > 0) || !(d.Lambda > 0) {
		return invalidf("WeibullDist: K=%v and Lambda=%v must be positive", d.K, d.Lambda)
	}
	return nil
}

func (d WeibullDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x == 0 {
		switch {
		case d.K < 1:
			return inf
		case d.K == 1:
			return 1 / d.Lambda
		}
		return 0
	}
	z := x / d.Lambda
	return d.K / d.Lambda * math.Pow(z, d.K-1) * math.Exp(-math.Pow(z, d.K))
}

func (d WeibullDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.Lambda, d.K))
}

func (d WeibullDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("WeibullDist", p); err != nil {
		return nan, err
	}
	return d.Lambda * math.Pow(-math.Log1p(-p), 1/d.K), nil
}

func (d WeibullDist) Bounds() (float64, float64) {
	hi, _ := d.InvCDF(0.9999)
	return 0, hi
}

func (d WeibullDist) Mean() float64 {
	return d.Lambda * mathx.Gamma(1+1/d.K)
}

func (d WeibullDist) Variance() float64 {
	g1 := mathx.Gamma(1 + 1/d.K)
	return d.Lambda * d.Lambda * (mathx.Gamma(1+2/d.K) - g1*g1)
}

func (d WeibullDist) Compile() Sampler {
	k, lambda := d.K, d.Lambda
	return SamplerFunc(func(src Source) float64 {
		return lambda * math.Pow(-math.Log(1-raw(src)), 1/k)
	})
}
