// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// HyperbolicDist is the hyperbolic distribution with density
// proportional to exp(-Alpha·sqrt(1+x²) + Beta·x). Alpha must exceed
// |Beta|.
type HyperbolicDist struct {
	Alpha, Beta float64
}

func (d HyperbolicDist) Validate() error {
	if !(d.Alpha > math.Abs(d.Beta)) || math.IsInf(d.Alpha, 1) {
		return invalidf("HyperbolicDist: Alpha=%v must exceed |Beta|=%v", d.Alpha, math.Abs(d.Beta))
	}
	return nil
}

// h is the log of the unnormalized density.
func (d HyperbolicDist) h(x float64) float64 {
	return -d.Alpha*math.Sqrt(1+x*x) + d.Beta*x
}

// dh is the derivative of h.
func (d HyperbolicDist) dh(x float64) float64 {
	return -d.Alpha*x/math.Sqrt(1+x*x) + d.Beta
}

func (d HyperbolicDist) gamma() float64 {
	return math.Sqrt(d.Alpha*d.Alpha - d.Beta*d.Beta)
}

// Mode returns the mode of d, Beta/sqrt(Alpha²-Beta²).
func (d HyperbolicDist) Mode() float64 {
	return d.Beta / d.gamma()
}

// logNorm returns the log of the normalizing constant, shifted so that
// logNorm + h(x) is the log density. h(Mode) is -gamma.
func (d HyperbolicDist) logNorm() float64 {
	g := d.gamma()
	return math.Log(g/(2*d.Alpha*mathx.BesselK1e(g))) + g
}

func (d HyperbolicDist) PDF(x float64) float64 {
	return math.Exp(d.logNorm() + d.h(x))
}

// CDF integrates the density from the mode outward, so each side is
// the integral over a tail, which keeps the result monotone.
func (d HyperbolicDist) CDF(x float64) float64 {
	lo, hi := d.Bounds()
	if x <= lo {
		return 0
	} else if x >= hi {
		return 1
	}
	if x <= d.Mode() {
		return clamp01(integrate(d.PDF, lo, x))
	}
	return clamp01(1 - integrate(d.PDF, x, hi))
}

// InvCDF is not supported for HyperbolicDist.
func (d HyperbolicDist) InvCDF(p float64) (float64, error) {
	return nan, notSupported("HyperbolicDist.InvCDF")
}

// Bounds returns the range outside which the exponential tails of the
// rejection hat hold less than 1e-15 of the probability mass.
func (d HyperbolicDist) Bounds() (float64, float64) {
	const eps = 1e-15
	s := d.newSampler()
	// The density at the mode.
	fm := math.Exp(d.logNorm() - s.samb)
	// Beyond mpa, the log density lies below its tangent there,
	// -1 - (x-mpa)/hr relative to the mode, and likewise beyond mmb.
	hi := s.mpa + s.hr*(math.Log(fm*s.hr/eps)-1)
	lo := s.mmb - s.hl*(math.Log(fm*s.hl/eps)-1)
	return math.Min(lo, s.mmb), math.Max(hi, s.mpa)
}

// Compile returns a sampler implementing the non-universal rejection
// method for log-concave densities (hyplc) of the C-RAND library:
// a constant hat over the body of the density and exponential hats
// on either side.
func (d HyperbolicDist) Compile() Sampler {
	return d.newSampler()
}

type hyperbolicSampler struct {
	alpha, beta float64
	samb        float64 // sqrt(Alpha²-Beta²), -log of the unnormalized density at the mode
	mpa, mmb    float64 // right and left of the mode, where the density falls to exp(-samb-1)
	hr, hl      float64 // scales of the right and left exponential tails
	s           float64 // area of the hat
	pm, pr, pmr float64 // hat probabilities of the body, the right tail, and both
}

func (d HyperbolicDist) newSampler() *hyperbolicSampler {
	a, b := d.Alpha, d.Beta
	amb := a*a - b*b
	s := &hyperbolicSampler{alpha: a, beta: b, samb: math.Sqrt(amb)}

	// Roots of h(x) = -samb - 1.
	help1 := a * math.Sqrt(2*s.samb+1)
	help2 := b * (s.samb + 1)
	s.mpa = (help2 + help1) / amb
	s.mmb = (help2 - help1) / amb

	// Reciprocal slopes of h at mpa and mmb.
	s.hr = -1 / d.dh(s.mpa)
	s.hl = 1 / d.dh(s.mmb)

	pm := s.mpa - s.mmb
	s.s = pm + s.hr + s.hl
	s.pm = pm / s.s
	s.pr = s.hr / s.s
	s.pmr = s.pm + s.pr
	return s
}

func (s *hyperbolicSampler) Sample(src Source) float64 {
	for {
		u := raw(src)
		v := raw(src)
		switch {
		case u <= s.pm:
			// Uniform hat over the body.
			x := s.mmb + u*s.s
			if math.Log(v) <= s.logDensity(x) {
				return x
			}
		case u <= s.pmr:
			// Exponential hat right of mpa.
			e := -math.Log((u - s.pm) / s.pr)
			x := s.mpa + s.hr*e
			if math.Log(v)-e <= s.logDensity(x) {
				return x
			}
		default:
			// Exponential hat left of mmb.
			e := math.Log((u - s.pmr) / (1 - s.pmr))
			x := s.mmb + s.hl*e
			if math.Log(v)+e <= s.logDensity(x) {
				return x
			}
		}
	}
}

// logDensity returns the log of the density at x relative to the
// mode.
func (s *hyperbolicSampler) logDensity(x float64) float64 {
	return -s.alpha*math.Sqrt(1+x*x) + s.beta*x + s.samb
}
