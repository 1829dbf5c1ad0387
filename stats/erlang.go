// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// ErlangDist is an Erlang distribution described by its Variance and
// Mean. The integer shape k is round(Mean²/Variance), at least 1, and
// the rate is k/Mean.
type ErlangDist struct {
	Variance, Mean float64
}

func (d ErlangDist) Validate() error {
	if !(d.Variance > 0) || !(d.Mean > 0) {
		return invalidf("ErlangDist: Variance=%v and Mean=%v must be positive", d.Variance, d.Mean)
	}
	return nil
}

// Shape returns the integer shape k and the rate of d.
func (d ErlangDist) Shape() (k int, rate float64) {
	k = int(d.Mean*d.Mean/d.Variance + 0.5)
	if k < 1 {
		k = 1
	}
	return k, float64(k) / d.Mean
}

func (d ErlangDist) gamma() GammaDist {
	k, rate := d.Shape()
	return GammaDist{Alpha: float64(k), Beta: rate}
}

func (d ErlangDist) PDF(x float64) float64 { return d.gamma().PDF(x) }

func (d ErlangDist) CDF(x float64) float64 { return d.gamma().CDF(x) }

func (d ErlangDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("ErlangDist", p); err != nil {
		return nan, err
	}
	return d.gamma().InvCDF(p)
}

func (d ErlangDist) Bounds() (float64, float64) { return d.gamma().Bounds() }

// Compile returns a sampler that sums k exponential variates. The sum
// is taken over logarithms, which is -log of the product of k
// uniforms without its underflow for large k.
func (d ErlangDist) Compile() Sampler {
	k, rate := d.Shape()
	return SamplerFunc(func(src Source) float64 {
		sum := 0.0
		for i := 0; i < k; i++ {
			sum += math.Log(raw(src))
		}
		return -sum / rate
	})
}
