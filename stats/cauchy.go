// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// CauchyDist is a Cauchy distribution with the given Location and
// Scale (half width at half maximum).
type CauchyDist struct {
	Location, Scale float64
}

func (d CauchyDist) Validate() error {
	if !(d.Scale > 0) || math.IsNaN(d.Location) {
		return invalidf("CauchyDist: Scale=%v must be positive", d.Scale)
	}
	return nil
}

func (d CauchyDist) PDF(x float64) float64 {
	z := (x - d.Location) / d.Scale
	return 1 / (math.Pi * d.Scale * (1 + z*z))
}

func (d CauchyDist) CDF(x float64) float64 {
	return 0.5 + math.Atan((x-d.Location)/d.Scale)/math.Pi
}

// InvCDF is not supported for CauchyDist.
func (d CauchyDist) InvCDF(p float64) (float64, error) {
	return nan, notSupported("CauchyDist.InvCDF")
}

func (d CauchyDist) Bounds() (float64, float64) {
	return d.Location - 50*d.Scale, d.Location + 50*d.Scale
}

func (d CauchyDist) Compile() Sampler {
	loc, scale := d.Location, d.Scale
	return SamplerFunc(func(src Source) float64 {
		return loc + scale*math.Tan(math.Pi*raw(src))
	})
}
