// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// Interpolation selects how an EmpiricalDist treats values within a
// histogram bin.
type Interpolation int

const (
	// NoInterpolation places each bin's mass at the bin's lower
	// edge, making the distribution discrete.
	NoInterpolation Interpolation = iota
	// LinearInterpolation spreads each bin's mass uniformly across
	// the bin, making the CDF piecewise linear.
	LinearInterpolation
)

func (i Interpolation) String() string {
	switch i {
	case NoInterpolation:
		return "none"
	case LinearInterpolation:
		return "linear"
	}
	return "Interpolation(?)"
}

// EmpiricalDist is a distribution on [0, 1] defined by a histogram of
// n equal-width bins. Construct one with NewEmpiricalDist.
type EmpiricalDist struct {
	interp Interpolation
	pdf    []float64 // normalized bin masses
	cdf    []float64 // cdf[i] = sum of pdf[:i]; len(pdf)+1 entries
}

// NewEmpiricalDist returns the empirical distribution with the given
// bin weights. Weights need not be normalized, but must be
// non-negative and finite, and at least one must be positive.
func NewEmpiricalDist(weights []float64, interp Interpolation) (EmpiricalDist, error) {
	if interp != NoInterpolation && interp != LinearInterpolation {
		return EmpiricalDist{}, invalidf("EmpiricalDist: unknown interpolation %d", int(interp))
	}
	if len(weights) == 0 {
		return EmpiricalDist{}, invalidf("EmpiricalDist: no weights")
	}
	cdf := make([]float64, len(weights)+1)
	for i, w := range weights {
		if !(w >= 0) || math.IsInf(w, 1) {
			return EmpiricalDist{}, invalidf("EmpiricalDist: weight %d is %v", i, w)
		}
		cdf[i+1] = cdf[i] + w
	}
	total := cdf[len(weights)]
	if !(total > 0) {
		return EmpiricalDist{}, invalidf("EmpiricalDist: weights sum to zero")
	}
	pdf := make([]float64, len(weights))
	for i, w := range weights {
		pdf[i] = w / total
		cdf[i] /= total
	}
	cdf[len(weights)] = 1
	return EmpiricalDist{interp, pdf, cdf}, nil
}

func (d EmpiricalDist) Validate() error {
	if len(d.pdf) == 0 {
		return invalidf("EmpiricalDist: not constructed by NewEmpiricalDist")
	}
	return nil
}

// Interpolation returns the interpolation mode of d.
func (d EmpiricalDist) Interpolation() Interpolation {
	return d.interp
}

// Bins returns the number of histogram bins.
func (d EmpiricalDist) Bins() int {
	return len(d.pdf)
}

// PDF returns the probability mass of x's bin under
// NoInterpolation, and the histogram density under
// LinearInterpolation. It panics with a *DomainError if x is outside
// [0, 1].
func (d EmpiricalDist) PDF(x float64) float64 {
	if !(x >= 0 && x <= 1) {
		panic(&DomainError{Op: "EmpiricalDist.PDF", X: x})
	}
	n := len(d.pdf)
	k := int(x * float64(n))
	if k >= n {
		k = n - 1
	}
	if d.interp == LinearInterpolation {
		return d.pdf[k] * float64(n)
	}
	return d.pdf[k]
}

func (d EmpiricalDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	n := len(d.pdf)
	pos := x * float64(n)
	k := int(pos)
	if d.interp == NoInterpolation {
		return d.cdf[k+1]
	}
	return d.cdf[k] + d.pdf[k]*(pos-float64(k))
}

func (d EmpiricalDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("EmpiricalDist", p); err != nil {
		return nan, err
	}
	n := len(d.pdf)
	// First bin whose upper cumulative reaches p.
	k := sort.Search(n, func(i int) bool { return d.cdf[i+1] >= p })
	if k == n {
		k = n - 1
	}
	if d.interp == NoInterpolation || d.pdf[k] == 0 {
		return float64(k) / float64(n), nil
	}
	frac := (p - d.cdf[k]) / d.pdf[k]
	return (float64(k) + frac) / float64(n), nil
}

func (d EmpiricalDist) Bounds() (float64, float64) {
	return 0, 1
}

// Compile returns a sampler that locates a uniform deviate in the
// cumulative bin masses by binary search.
func (d EmpiricalDist) Compile() Sampler {
	cdf, interp := d.cdf, d.interp
	n := len(d.pdf)
	return SamplerFunc(func(src Source) float64 {
		u := src.Float64()
		// The bin with cdf[k] <= u < cdf[k+1]. Such a bin has
		// positive mass.
		k := sort.Search(n, func(i int) bool { return cdf[i+1] > u })
		if k == n {
			k = n - 1
		}
		if interp == NoInterpolation {
			return float64(k) / float64(n)
		}
		frac := (u - cdf[k]) / (cdf[k+1] - cdf[k])
		return (float64(k) + frac) / float64(n)
	})
}
