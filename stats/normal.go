// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// NormalDist is a normal (Gaussian) distribution with mean Mu and
// standard deviation Sigma.
type NormalDist struct {
	Mu, Sigma float64
}

// StdNormal is the standard normal distribution (Mu = 0, Sigma = 1).
var StdNormal = NormalDist{0, 1}

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.398942280401432677939946059934381868475858631164934657665925

func (d NormalDist) Validate() error {
	if !(d.Sigma > 0) || math.IsNaN(d.Mu) {
		return invalidf("NormalDist: Sigma=%v must be positive", d.Sigma)
	}
	return nil
}

func (d NormalDist) PDF(x float64) float64 {
	z := (x - d.Mu) / d.Sigma
	return math.Exp(-z*z/2) * invSqrt2Pi / d.Sigma
}

func (d NormalDist) CDF(x float64) float64 {
	return math.Erfc(-(x-d.Mu)/(d.Sigma*math.Sqrt2)) / 2
}

func (d NormalDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("NormalDist", p); err != nil {
		return nan, err
	}
	return d.Mu - d.Sigma*math.Sqrt2*math.Erfcinv(2*p), nil
}

func (d NormalDist) Bounds() (float64, float64) {
	const stddevs = 3
	return d.Mu - stddevs*d.Sigma, d.Mu + stddevs*d.Sigma
}

func (d NormalDist) Mean() float64 {
	return d.Mu
}

func (d NormalDist) Variance() float64 {
	return d.Sigma * d.Sigma
}

func (d NormalDist) Compile() Sampler {
	return &normalSampler{mu: d.Mu, sigma: d.Sigma}
}

// normalSampler implements the polar form of the Box-Muller
// transformation. Each rejection loop yields two independent
// deviates; the second is kept for the next call.
type normalSampler struct {
	mu, sigma float64
	next      float64
	cached    bool
}

func (s *normalSampler) Sample(src Source) float64 {
	return s.mu + s.sigma*s.std(src)
}

// std returns a standard normal deviate.
func (s *normalSampler) std(src Source) float64 {
	if s.cached {
		s.cached = false
		return s.next
	}
	var x, y, r float64
	for {
		x = 2*src.Float64() - 1
		y = 2*src.Float64() - 1
		r = x*x + y*y
		if r < 1 && r != 0 {
			break
		}
	}
	z := math.Sqrt(-2 * math.Log(r) / r)
	s.next, s.cached = x*z, true
	return y * z
}
