// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "math"

// PowerLawDist is a power-law distribution on [0, Cut] with density
// proportional to x^Alpha.
type PowerLawDist struct {
	Alpha, Cut float64
}

func (d PowerLawDist) Validate() error {
	if !(d.Alpha > -1) {
		return invalidf("PowerLawDist: Alpha=%v must exceed -1", d.Alpha)
	}
	if !(d.Cut > 0) {
		return invalidf("PowerLawDist: Cut=%v must be positive", d.Cut)
	}
	return nil
}

func (d PowerLawDist) PDF(x float64) float64 {
	if x < 0 || x > d.Cut {
		return 0
	}
	return (d.Alpha + 1) / d.Cut * math.Pow(x/d.Cut, d.Alpha)
}

func (d PowerLawDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	} else if x >= d.Cut {
		return 1
	}
	return math.Pow(x/d.Cut, d.Alpha+1)
}

func (d PowerLawDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("PowerLawDist", p); err != nil {
		return nan, err
	}
	return d.Cut * math.Pow(p, 1/(d.Alpha+1)), nil
}

func (d PowerLawDist) Bounds() (float64, float64) {
	return 0, d.Cut
}

func (d PowerLawDist) Compile() Sampler {
	cut, e := d.Cut, 1/(d.Alpha+1)
	return SamplerFunc(func(src Source) float64 {
		return cut * math.Pow(raw(src), e)
	})
}
