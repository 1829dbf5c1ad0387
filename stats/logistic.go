// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// LogisticDist is a logistic distribution with location Mu and scale
// S.
type LogisticDist struct {
	Mu, S float64
}

func (d LogisticDist) Validate() error {
	if !(d.S > 0) || math.IsNaN(d.Mu) {
		return invalidf("LogisticDist: S=%v must be positive", d.S)
	}
	return nil
}

func (d LogisticDist) PDF(x float64) float64 {
	// Symmetric in z, so evaluate with a non-positive exponent.
	e := math.Exp(-math.Abs(x-d.Mu) / d.S)
	return e / (d.S * (1 + e) * (1 + e))
}

func (d LogisticDist) CDF(x float64) float64 {
	return 1 / (1 + math.Exp(-(x-d.Mu)/d.S))
}

func (d LogisticDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("LogisticDist", p); err != nil {
		return nan, err
	}
	return d.Mu + d.S*math.Log(p/(1-p)), nil
}

func (d LogisticDist) Bounds() (float64, float64) {
	return d.Mu - 20*d.S, d.Mu + 20*d.S
}

func (d LogisticDist) Mean() float64 {
	return d.Mu
}

func (d LogisticDist) Variance() float64 {
	return d.S * d.S * math.Pi * math.Pi / 3
}

func (d LogisticDist) Compile() Sampler {
	mu, s := d.Mu, d.S
	return SamplerFunc(func(src Source) float64 {
		u := raw(src)
		return mu - s*math.Log(1/u-1)
	})
}
