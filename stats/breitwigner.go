// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// BreitWignerDist is the Breit-Wigner (non-relativistic resonance)
// distribution: a Cauchy distribution centered at Mean with full
// width at half maximum Gamma, truncated to [Mean-Cut, Mean+Cut].
//
// A Cut that is not positive, including -Inf, leaves the
// distribution untruncated. A Gamma of 0 is a point mass at Mean.
type BreitWignerDist struct {
	Mean, Gamma, Cut float64
}

func (d BreitWignerDist) Validate() error {
	if math.IsNaN(d.Mean) || math.IsInf(d.Mean, 0) {
		return invalidf("BreitWignerDist: Mean=%v must be finite", d.Mean)
	}
	if !(d.Gamma >= 0) || math.IsInf(d.Gamma, 1) {
		return invalidf("BreitWignerDist: Gamma=%v must be non-negative and finite", d.Gamma)
	}
	if math.IsNaN(d.Cut) {
		return invalidf("BreitWignerDist: Cut is NaN")
	}
	return nil
}

func (d BreitWignerDist) cut() bool {
	return d.Cut > 0 && !math.IsInf(d.Cut, 1)
}

// halfAngle returns the half range of the uniformly distributed angle
// that the sampler transforms through tan.
func (d BreitWignerDist) halfAngle() float64 {
	if !d.cut() {
		return math.Pi / 2
	}
	return math.Atan(2 * d.Cut / d.Gamma)
}

func (d BreitWignerDist) PDF(x float64) float64 {
	if d.Gamma == 0 {
		if x == d.Mean {
			return inf
		}
		return 0
	}
	if d.cut() && math.Abs(x-d.Mean) > d.Cut {
		return 0
	}
	hw := d.Gamma / 2
	z := x - d.Mean
	return hw / ((z*z + hw*hw) * 2 * d.halfAngle())
}

func (d BreitWignerDist) CDF(x float64) float64 {
	if d.Gamma == 0 {
		if x < d.Mean {
			return 0
		}
		return 1
	}
	val := d.halfAngle()
	return clamp01((math.Atan(2*(x-d.Mean)/d.Gamma) + val) / (2 * val))
}

// InvCDF is not supported for BreitWignerDist.
func (d BreitWignerDist) InvCDF(p float64) (float64, error) {
	return nan, notSupported("BreitWignerDist.InvCDF")
}

func (d BreitWignerDist) Bounds() (float64, float64) {
	if d.cut() {
		return d.Mean - d.Cut, d.Mean + d.Cut
	}
	return d.Mean - 25*d.Gamma, d.Mean + 25*d.Gamma
}

func (d BreitWignerDist) Compile() Sampler {
	mean, gamma := d.Mean, d.Gamma
	if gamma == 0 {
		return SamplerFunc(func(Source) float64 { return mean })
	}
	val := d.halfAngle()
	return SamplerFunc(func(src Source) float64 {
		rval := 2*raw(src) - 1
		return mean + 0.5*gamma*math.Tan(rval*val)
	})
}

// BreitWignerMeanSquaredDist is the Breit-Wigner distribution in the
// squared variable: X² follows a resonance centered at Mean² with
// width Mean·Gamma. X is restricted to [max(0, Mean-Cut), Mean+Cut],
// or to [0, ∞) when Cut is not positive.
type BreitWignerMeanSquaredDist struct {
	Mean, Gamma, Cut float64
}

func (d BreitWignerMeanSquaredDist) Validate() error {
	if !(d.Mean > 0) || math.IsInf(d.Mean, 1) {
		return invalidf("BreitWignerMeanSquaredDist: Mean=%v must be positive and finite", d.Mean)
	}
	if !(d.Gamma >= 0) || math.IsInf(d.Gamma, 1) {
		return invalidf("BreitWignerMeanSquaredDist: Gamma=%v must be non-negative and finite", d.Gamma)
	}
	if math.IsNaN(d.Cut) {
		return invalidf("BreitWignerMeanSquaredDist: Cut is NaN")
	}
	return nil
}

func (d BreitWignerMeanSquaredDist) cut() bool {
	return d.Cut > 0 && !math.IsInf(d.Cut, 1)
}

// support returns the range of X.
func (d BreitWignerMeanSquaredDist) support() (float64, float64) {
	if !d.cut() {
		return 0, inf
	}
	return math.Max(0, d.Mean-d.Cut), d.Mean + d.Cut
}

// angle maps x to the angle whose tangent gives x² relative to the
// resonance.
func (d BreitWignerMeanSquaredDist) angle(x float64) float64 {
	return math.Atan((x*x - d.Mean*d.Mean) / (d.Mean * d.Gamma))
}

// angles returns the range of the uniformly distributed angle.
func (d BreitWignerMeanSquaredDist) angles() (lower, upper float64) {
	lo, hi := d.support()
	if math.IsInf(hi, 1) {
		return math.Atan(-d.Mean / d.Gamma), math.Pi / 2
	}
	return d.angle(lo), d.angle(hi)
}

func (d BreitWignerMeanSquaredDist) PDF(x float64) float64 {
	if d.Gamma == 0 {
		if x == d.Mean {
			return inf
		}
		return 0
	}
	lo, hi := d.support()
	if x < lo || x > hi {
		return 0
	}
	lower, upper := d.angles()
	mg := d.Mean * d.Gamma
	t := (x*x - d.Mean*d.Mean) / mg
	return 2 * x / (mg * (1 + t*t) * (upper - lower))
}

func (d BreitWignerMeanSquaredDist) CDF(x float64) float64 {
	if d.Gamma == 0 {
		if x < d.Mean {
			return 0
		}
		return 1
	}
	lo, hi := d.support()
	if x <= lo {
		return 0
	} else if x >= hi {
		return 1
	}
	lower, upper := d.angles()
	return clamp01((d.angle(x) - lower) / (upper - lower))
}

// InvCDF is not supported for BreitWignerMeanSquaredDist.
func (d BreitWignerMeanSquaredDist) InvCDF(p float64) (float64, error) {
	return nan, notSupported("BreitWignerMeanSquaredDist.InvCDF")
}

func (d BreitWignerMeanSquaredDist) Bounds() (float64, float64) {
	lo, hi := d.support()
	if math.IsInf(hi, 1) {
		hi = math.Sqrt(d.Mean*d.Mean + 25*d.Mean*d.Gamma)
	}
	return lo, hi
}

func (d BreitWignerMeanSquaredDist) Compile() Sampler {
	mean, gamma := d.Mean, d.Gamma
	if gamma == 0 {
		return SamplerFunc(func(Source) float64 { return mean })
	}
	lower, upper := d.angles()
	return SamplerFunc(func(src Source) float64 {
		displ := gamma * math.Tan(UniformIn(src, lower, upper))
		return math.Sqrt(math.Max(0, mean*mean+mean*displ))
	})
}
