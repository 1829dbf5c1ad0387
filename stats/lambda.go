// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// LambdaDist is the generalized Tukey lambda distribution in the
// Ramberg-Schmeiser parameterization with location 0 and scale 1. Its
// quantile function is
//
//	Q(p) = sign·(p^L3 - (1-p)^L4)
//
// where sign is -1 if either L3 or L4 is negative and 1 otherwise.
// L3 and L4 must not have opposite signs and must not both be zero.
type LambdaDist struct {
	L3, L4 float64
}

func (d LambdaDist) Validate() error {
	if math.IsNaN(d.L3) || math.IsNaN(d.L4) || math.IsInf(d.L3, 0) || math.IsInf(d.L4, 0) {
		return invalidf("LambdaDist: L3=%v and L4=%v must be finite", d.L3, d.L4)
	}
	if d.L3*d.L4 < 0 {
		return invalidf("LambdaDist: L3=%v and L4=%v must not have opposite signs", d.L3, d.L4)
	}
	if d.L3 == 0 && d.L4 == 0 {
		return invalidf("LambdaDist: L3 and L4 must not both be zero")
	}
	return nil
}

func (d LambdaDist) sign() float64 {
	if d.L3 < 0 || d.L4 < 0 {
		return -1
	}
	return 1
}

// q is the quantile function.
func (d LambdaDist) q(p float64) float64 {
	return d.sign() * (math.Pow(p, d.L3) - math.Pow(1-p, d.L4))
}

// dq is the derivative of q, the reciprocal of the density.
func (d LambdaDist) dq(p float64) float64 {
	return d.sign() * (d.L3*math.Pow(p, d.L3-1) + d.L4*math.Pow(1-p, d.L4-1))
}

// support returns Q(0) and Q(1), which are infinite when the
// corresponding parameter is negative.
func (d LambdaDist) support() (float64, float64) {
	return d.q(0), d.q(1)
}

func (d LambdaDist) PDF(x float64) float64 {
	lo, hi := d.support()
	if x < lo || x > hi {
		return 0
	}
	dq := d.dq(d.CDF(x))
	if dq <= 0 || math.IsNaN(dq) {
		return 0
	}
	return 1 / dq
}

// CDF inverts the quantile function by bisection.
func (d LambdaDist) CDF(x float64) float64 {
	lo, hi := d.support()
	if x <= lo {
		return 0
	} else if x >= hi {
		return 1
	}
	pl, ph := 0.0, 1.0
	for i := 0; i < 100 && ph-pl > 1e-16; i++ {
		pm := (pl + ph) / 2
		if d.q(pm) < x {
			pl = pm
		} else {
			ph = pm
		}
	}
	return (pl + ph) / 2
}

func (d LambdaDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("LambdaDist", p); err != nil {
		return nan, err
	}
	return d.q(p), nil
}

func (d LambdaDist) Bounds() (float64, float64) {
	lo, hi := d.support()
	if math.IsInf(lo, -1) {
		lo = d.q(1e-4)
	}
	if math.IsInf(hi, 1) {
		hi = d.q(1 - 1e-4)
	}
	return lo, hi
}

// Compile returns a sampler by inversion of the quantile function.
func (d LambdaDist) Compile() Sampler {
	l3, l4, sign := d.L3, d.L4, d.sign()
	return SamplerFunc(func(src Source) float64 {
		u := raw(src)
		return sign * (math.Exp(math.Log(u)*l3) - math.Exp(math.Log(1-u)*l4))
	})
}
