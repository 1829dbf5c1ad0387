// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// ChiSquareDist is a chi-square distribution with V degrees of
// freedom. V must be at least 1.
type ChiSquareDist struct {
	V float64
}

func (d ChiSquareDist) Validate() error {
	if !(d.V >= 1) {
		return invalidf("ChiSquareDist: V=%v must be at least 1", d.V)
	}
	return nil
}

// PDF returns the density at x. The chi-square density is only
// defined here for x > 0; PDF panics with a *DomainError otherwise.
func (d ChiSquareDist) PDF(x float64) float64 {
	if !(x > 0) {
		panic(&DomainError{Op: "ChiSquareDist.PDF", X: x})
	}
	h := d.V / 2
	return math.Exp((h-1)*math.Log(x/2)-x/2-mathx.Lgamma(h)) / 2
}

func (d ChiSquareDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.GammaInc(d.V/2, x/2)
}

func (d ChiSquareDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("ChiSquareDist", p); err != nil {
		return nan, err
	}
	return 2 * mathx.GammaIncInv(d.V/2, p), nil
}

func (d ChiSquareDist) Bounds() (float64, float64) {
	hi, _ := d.InvCDF(0.9999)
	return 0, hi
}

func (d ChiSquareDist) Mean() float64 {
	return d.V
}

func (d ChiSquareDist) Variance() float64 {
	return 2 * d.V
}

// Compile returns a sampler implementing the ratio of uniforms method
// with shift of J. F. Monahan (1987): An algorithm for generating chi
// random variables, ACM Trans. Math. Software 13, 168-172.
func (d ChiSquareDist) Compile() Sampler {
	if d.V == 1 {
		return SamplerFunc(chi1)
	}
	s := &chiSampler{}
	s.b = math.Sqrt(d.V - 1)
	s.vm = -0.6065306597 * (1 - 0.25/(s.b*s.b+1))
	if -s.b > s.vm {
		s.vm = -s.b
	}
	s.vp = 0.6065306597 * (0.7071067812 + s.b) / (0.5 + s.b)
	s.vd = s.vp - s.vm
	return s
}

// chi1 samples the chi-square distribution with one degree of
// freedom.
func chi1(src Source) float64 {
	for {
		u := raw(src)
		v := raw(src) * 0.857763884960707
		z := v / u
		zz := z * z
		r := 2.5 - zz
		if u < r*0.3894003915 {
			return zz
		}
		if zz > 1.036961043/u+1.4 {
			continue
		}
		if 2*math.Log(u) < -zz*0.5 {
			return zz
		}
	}
}

type chiSampler struct {
	b, vm, vp, vd float64
}

func (s *chiSampler) Sample(src Source) float64 {
	b := s.b
	for {
		u := raw(src)
		v := raw(src)*s.vd + s.vm
		z := v / u
		if z < -b {
			continue
		}
		zz := z * z
		r := 2.5 - zz
		if z < 0 {
			r = r + zz*z/(3*(z+b))
		}
		if u < r*0.3894003915 {
			return (z + b) * (z + b)
		}
		if zz > 1.036961043/u+1.4 {
			continue
		}
		if 2*math.Log(u) < math.Log(1+z/b)*b*b-zz*0.5-z*b {
			return (z + b) * (z + b)
		}
	}
}
