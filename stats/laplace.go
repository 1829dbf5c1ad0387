// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// LaplaceDist is a Laplace (double exponential) distribution with
// location Mu and scale B.
type LaplaceDist struct {
	Mu, B float64
}

func (d LaplaceDist) Validate() error {
	if !(d.B > 0) || math.IsNaN(d.Mu) {
		return invalidf("LaplaceDist: B=%v must be positive", d.B)
	}
	return nil
}

func (d LaplaceDist) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-d.Mu)/d.B) / (2 * d.B)
}

func (d LaplaceDist) CDF(x float64) float64 {
	z := (x - d.Mu) / d.B
	if z < 0 {
		return math.Exp(z) / 2
	}
	return 1 - math.Exp(-z)/2
}

func (d LaplaceDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("LaplaceDist", p); err != nil {
		return nan, err
	}
	if p < 0.5 {
		return d.Mu + d.B*math.Log(2*p), nil
	}
	return d.Mu - d.B*math.Log(2-2*p), nil
}

func (d LaplaceDist) Bounds() (float64, float64) {
	return d.Mu - 20*d.B, d.Mu + 20*d.B
}

func (d LaplaceDist) Mean() float64 {
	return d.Mu
}

func (d LaplaceDist) Variance() float64 {
	return 2 * d.B * d.B
}

func (d LaplaceDist) Compile() Sampler {
	mu, b := d.Mu, d.B
	return SamplerFunc(func(src Source) float64 {
		u := raw(src)
		u = u + u - 1
		if u > 0 {
			return mu - b*math.Log(1-u)
		}
		return mu + b*math.Log(1+u)
	})
}
