// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// ExponentialPowerDist is the exponential power distribution with
// density proportional to exp(-|x|^Tau). Tau must be at least 1.
type ExponentialPowerDist struct {
	Tau float64
}

func (d ExponentialPowerDist) Validate() error {
	if !(d.Tau >= 1) {
		return invalidf("ExponentialPowerDist: Tau=%v must be at least 1", d.Tau)
	}
	return nil
}

func (d ExponentialPowerDist) PDF(x float64) float64 {
	return d.Tau / (2 * mathx.Gamma(1/d.Tau)) * math.Exp(-math.Pow(math.Abs(x), d.Tau))
}

func (d ExponentialPowerDist) CDF(x float64) float64 {
	h := 0.5 * mathx.GammaInc(1/d.Tau, math.Pow(math.Abs(x), d.Tau))
	if x < 0 {
		return 0.5 - h
	}
	return 0.5 + h
}

func (d ExponentialPowerDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("ExponentialPowerDist", p); err != nil {
		return nan, err
	}
	if p < 0.5 {
		return -math.Pow(mathx.GammaIncInv(1/d.Tau, 1-2*p), 1/d.Tau), nil
	}
	return math.Pow(mathx.GammaIncInv(1/d.Tau, 2*p-1), 1/d.Tau), nil
}

func (d ExponentialPowerDist) Bounds() (float64, float64) {
	hi, _ := d.InvCDF(0.9999)
	return -hi, hi
}

// Compile returns a non-universal rejection sampler with a uniform
// hat on |x| <= 1 - 1/Tau and an exponential hat beyond. See L.
// Devroye (1986): Non-Uniform Random Variate Generation, Springer.
func (d ExponentialPowerDist) Compile() Sampler {
	tau := d.Tau
	s := 1 / tau
	sm1 := 1 - s
	return SamplerFunc(func(src Source) float64 {
		var u, x float64
		for {
			u = 2*raw(src) - 1
			u1 := math.Abs(u)
			v := raw(src)
			if u1 <= sm1 {
				// Uniform hat-function for x <= 1-1/tau.
				x = u1
			} else {
				// Exponential hat-function for x > 1-1/tau.
				y := tau * (1 - u1)
				x = sm1 - s*math.Log(y)
				v *= y
			}
			if math.Log(v) <= -math.Exp(math.Log(x)*tau) {
				break
			}
		}
		if u > 0 {
			return x
		}
		return -x
	})
}
