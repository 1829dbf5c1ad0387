// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ExponentialDist is an exponential distribution with rate Lambda.
type ExponentialDist struct {
	Lambda float64
}

func (d ExponentialDist) Validate() error {
	if !(d.Lambda > 0) {
		return invalidf("ExponentialDist: Lambda=%v must be positive", d.Lambda)
	}
	return nil
}

func (d ExponentialDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.Lambda * math.Exp(-d.Lambda*x)
}

func (d ExponentialDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 - math.Exp(-d.Lambda*x)
}

func (d ExponentialDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("ExponentialDist", p); err != nil {
		return nan, err
	}
	return -math.Log1p(-p) / d.Lambda, nil
}

func (d ExponentialDist) Bounds() (float64, float64) {
	return 0, 37 / d.Lambda
}

func (d ExponentialDist) Mean() float64 {
	return 1 / d.Lambda
}

func (d ExponentialDist) Variance() float64 {
	return 1 / (d.Lambda * d.Lambda)
}

func (d ExponentialDist) Compile() Sampler {
	lambda := d.Lambda
	return SamplerFunc(func(src Source) float64 {
		return -math.Log(raw(src)) / lambda
	})
}
