// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// UniformDist is a continuous uniform distribution on [A, B].
type UniformDist struct {
	A, B float64
}

func (d UniformDist) Validate() error {
	if !(d.A < d.B) {
		return invalidf("UniformDist: A=%v must be less than B=%v", d.A, d.B)
	}
	return nil
}

func (d UniformDist) PDF(x float64) float64 {
	if x < d.A || x > d.B {
		return 0
	}
	return 1 / (d.B - d.A)
}

func (d UniformDist) CDF(x float64) float64 {
	if x <= d.A {
		return 0
	} else if x >= d.B {
		return 1
	}
	return (x - d.A) / (d.B - d.A)
}

func (d UniformDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("UniformDist", p); err != nil {
		return nan, err
	}
	return d.A + p*(d.B-d.A), nil
}

func (d UniformDist) Bounds() (float64, float64) {
	return d.A, d.B
}

func (d UniformDist) Mean() float64 {
	return (d.A + d.B) / 2
}

func (d UniformDist) Variance() float64 {
	w := d.B - d.A
	return w * w / 12
}

func (d UniformDist) Compile() Sampler {
	a, b := d.A, d.B
	return SamplerFunc(func(src Source) float64 {
		return UniformIn(src, a, b)
	})
}
