// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// TriangularDist is a triangular distribution on [Min, Max] with its
// peak at Mode. TriangularDist{-1, 0, 1} is the standard triangular
// distribution.
type TriangularDist struct {
	Min, Mode, Max float64
}

func (d TriangularDist) Validate() error {
	if !(d.Min < d.Max) || !(d.Min <= d.Mode && d.Mode <= d.Max) {
		return invalidf("TriangularDist: need Min=%v <= Mode=%v <= Max=%v and Min < Max", d.Min, d.Mode, d.Max)
	}
	return nil
}

func (d TriangularDist) PDF(x float64) float64 {
	a, c, b := d.Min, d.Mode, d.Max
	switch {
	case x < a || x > b:
		return 0
	case x < c:
		return 2 * (x - a) / ((b - a) * (c - a))
	case x == c:
		return 2 / (b - a)
	}
	return 2 * (b - x) / ((b - a) * (b - c))
}

func (d TriangularDist) CDF(x float64) float64 {
	a, c, b := d.Min, d.Mode, d.Max
	switch {
	case x <= a:
		return 0
	case x >= b:
		return 1
	case x <= c:
		return (x - a) * (x - a) / ((b - a) * (c - a))
	}
	return 1 - (b-x)*(b-x)/((b-a)*(b-c))
}

func (d TriangularDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("TriangularDist", p); err != nil {
		return nan, err
	}
	return d.quantile(p), nil
}

func (d TriangularDist) quantile(u float64) float64 {
	a, c, b := d.Min, d.Mode, d.Max
	if u <= (c-a)/(b-a) {
		return a + math.Sqrt(u*(b-a)*(c-a))
	}
	return b - math.Sqrt((1-u)*(b-a)*(b-c))
}

func (d TriangularDist) Bounds() (float64, float64) {
	return d.Min, d.Max
}

func (d TriangularDist) Mean() float64 {
	return (d.Min + d.Mode + d.Max) / 3
}

func (d TriangularDist) Compile() Sampler {
	return SamplerFunc(func(src Source) float64 {
		return d.quantile(raw(src))
	})
}
