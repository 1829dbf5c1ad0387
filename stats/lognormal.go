// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// LogNormalDist is the distribution of exp(X) where X is normally
// distributed with mean Mu and standard deviation Sigma.
type LogNormalDist struct {
	Mu, Sigma float64
}

func (d LogNormalDist) Validate() error {
	if !(d.Sigma > 0) || math.IsNaN(d.Mu) {
		return invalidf("LogNormalDist: Sigma=%v must be positive", d.Sigma)
	}
	return nil
}

func (d LogNormalDist) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	z := (math.Log(x) - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / (x * d.Sigma)
}

func (d LogNormalDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Erfc(-(math.Log(x)-d.Mu)/(d.Sigma*math.Sqrt2)) / 2
}

func (d LogNormalDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("LogNormalDist", p); err != nil {
		return nan, err
	}
	return math.Exp(d.Mu - d.Sigma*math.Sqrt2*math.Erfcinv(2*p)), nil
}

func (d LogNormalDist) Bounds() (float64, float64) {
	return 0, math.Exp(d.Mu + 4*d.Sigma)
}

func (d LogNormalDist) Mean() float64 {
	return math.Exp(d.Mu + d.Sigma*d.Sigma/2)
}

func (d LogNormalDist) Variance() float64 {
	s2 := d.Sigma * d.Sigma
	return math.Expm1(s2) * math.Exp(2*d.Mu+s2)
}

func (d LogNormalDist) Compile() Sampler {
	n := &normalSampler{mu: d.Mu, sigma: d.Sigma}
	return SamplerFunc(func(src Source) float64 {
		return math.Exp(n.Sample(src))
	})
}
