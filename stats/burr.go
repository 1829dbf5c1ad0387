// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// BurrDist is one of the Burr family of distributions, selected by
// Nr. Types II, VII, VIII and X take only the shape R; types III, IV,
// V, VI, IX and XII also take K. An Nr that names no supported type
// selects type II.
//
// Each type is defined by its CDF:
//
//	II    (1 + exp(-x))^-R
//	III   (1 + x^-K)^-R                         x > 0
//	IV    (((K-x)/x)^(1/K) + 1)^-R              0 < x < K
//	V     (1 + K·exp(-tan x))^-R                |x| < π/2
//	VI    (1 + K·exp(-R·sinh x))^-R
//	VII   2^-R·(1 + tanh x)^R
//	VIII  (2/π·atan(exp x))^R
//	IX    1 - 2/(K·((1 + exp x)^R - 1) + 2)
//	X     (1 - exp(-x²))^R                      x > 0
//	XII   1 - (1 + x^K)^-R                      x > 0
type BurrDist struct {
	R, K float64
	Nr   int
}

// Type returns the Burr type d samples from.
func (d BurrDist) Type() int {
	switch d.Nr {
	case 2, 3, 4, 5, 6, 7, 8, 9, 10, 12:
		return d.Nr
	}
	return 2
}

func (d BurrDist) usesK() bool {
	switch d.Type() {
	case 3, 4, 5, 6, 9, 12:
		return true
	}
	return false
}

func (d BurrDist) Validate() error {
	if !(d.R > 0) || math.IsInf(d.R, 1) {
		return invalidf("BurrDist: R=%v must be positive and finite", d.R)
	}
	if d.usesK() && (!(d.K > 0) || math.IsInf(d.K, 1)) {
		return invalidf("BurrDist: K=%v must be positive and finite for type %d", d.K, d.Type())
	}
	return nil
}

// support returns the open interval outside which the density is 0.
func (d BurrDist) support() (float64, float64) {
	switch d.Type() {
	case 3, 10, 12:
		return 0, inf
	case 4:
		return 0, d.K
	case 5:
		return -math.Pi / 2, math.Pi / 2
	}
	return -inf, inf
}

// base returns G and G' at x for the types whose CDF is G^R.
func (d BurrDist) base(x float64) (g, dg float64) {
	k := d.K
	switch d.Type() {
	case 3:
		w := math.Pow(x, -k)
		return 1 / (1 + w), k * w / x / ((1 + w) * (1 + w))
	case 4:
		q := math.Pow((k-x)/x, 1/k)
		return 1 / (1 + q), q / (x * (k - x) * (1 + q) * (1 + q))
	case 5:
		w := k * math.Exp(-math.Tan(x))
		c := math.Cos(x)
		return 1 / (1 + w), w / (c * c) / ((1 + w) * (1 + w))
	case 6:
		w := k * math.Exp(-d.R*math.Sinh(x))
		return 1 / (1 + w), w * d.R * math.Cosh(x) / ((1 + w) * (1 + w))
	case 7:
		c := math.Cosh(x)
		return (1 + math.Tanh(x)) / 2, 1 / (2 * c * c)
	case 8:
		e := math.Exp(x)
		return 2 / math.Pi * math.Atan(e), 2 / math.Pi * e / (1 + e*e)
	case 10:
		e := math.Exp(-x * x)
		return 1 - e, 2 * x * e
	}
	e := math.Exp(-x)
	return 1 / (1 + e), e / ((1 + e) * (1 + e))
}

func (d BurrDist) PDF(x float64) float64 {
	lo, hi := d.support()
	if !(x > lo && x < hi) {
		return 0
	}
	r, k := d.R, d.K
	switch d.Type() {
	case 9:
		e := math.Exp(x)
		w := math.Pow(1+e, r)
		den := k*(w-1) + 2
		return 2 * k * r * w / (1 + e) * e / (den * den)
	case 12:
		return r * k * math.Pow(x, k-1) * math.Pow(1+math.Pow(x, k), -r-1)
	}
	g, dg := d.base(x)
	if g == 0 {
		return 0
	}
	return r * math.Pow(g, r-1) * dg
}

func (d BurrDist) CDF(x float64) float64 {
	lo, hi := d.support()
	if x <= lo {
		return 0
	} else if x >= hi {
		return 1
	}
	r, k := d.R, d.K
	switch d.Type() {
	case 9:
		return 1 - 2/(k*(math.Pow(1+math.Exp(x), r)-1)+2)
	case 12:
		return 1 - math.Pow(1+math.Pow(x, k), -r)
	}
	g, _ := d.base(x)
	return math.Pow(g, r)
}

// InvCDF is not supported for BurrDist.
func (d BurrDist) InvCDF(p float64) (float64, error) {
	return nan, notSupported("BurrDist.InvCDF")
}

func (d BurrDist) Bounds() (float64, float64) {
	s := d.Compile().(SamplerFunc)
	// The sampler is an inversion of the CDF, decreasing in u for
	// type XII.
	lo, hi := s(constSource(1e-4)), s(constSource(1-1e-4))
	return math.Min(lo, hi), math.Max(lo, hi)
}

// Compile returns a sampler by inversion: with y = u^(1/R), each type
// solves G(x) = y, or F(x) = u for type IX and F(x) = 1-u for type XII.
func (d BurrDist) Compile() Sampler {
	r, k := d.R, d.K
	switch d.Type() {
	case 3:
		return SamplerFunc(func(src Source) float64 {
			y := math.Exp(math.Log(raw(src)) / r)
			return math.Exp(-math.Log(1/y-1) / k)
		})
	case 4:
		return SamplerFunc(func(src Source) float64 {
			y := math.Exp(math.Log(raw(src)) / r)
			return k / (math.Exp(k*math.Log(1/y-1)) + 1)
		})
	case 5:
		return SamplerFunc(func(src Source) float64 {
			y := math.Exp(math.Log(raw(src)) / r)
			return math.Atan(-math.Log((1/y - 1) / k))
		})
	case 6:
		return SamplerFunc(func(src Source) float64 {
			y := math.Exp(math.Log(raw(src)) / r)
			return math.Asinh(-math.Log((1/y-1)/k) / r)
		})
	case 7:
		return SamplerFunc(func(src Source) float64 {
			y := math.Exp(math.Log(raw(src)) / r)
			return math.Log(2*y/(2-2*y)) / 2
		})
	case 8:
		return SamplerFunc(func(src Source) float64 {
			y := math.Exp(math.Log(raw(src)) / r)
			return math.Log(math.Tan(y * math.Pi / 2))
		})
	case 9:
		return SamplerFunc(func(src Source) float64 {
			u := raw(src)
			y := 1 + 2*u/(k*(1-u))
			return math.Log(math.Exp(math.Log(y)/r) - 1)
		})
	case 10:
		return SamplerFunc(func(src Source) float64 {
			y := math.Exp(math.Log(raw(src)) / r)
			return math.Sqrt(-math.Log(1 - y))
		})
	case 12:
		return SamplerFunc(func(src Source) float64 {
			u := raw(src)
			return math.Exp(math.Log(math.Exp(-math.Log(u)/r)-1) / k)
		})
	}
	return SamplerFunc(func(src Source) float64 {
		y := math.Exp(math.Log(raw(src)) / r)
		return -math.Log(1/y - 1)
	})
}

// constSource is a Source that always returns the same value.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
