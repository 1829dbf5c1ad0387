// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// VonMisesDist is the von Mises distribution on [-π, π] with mean 0
// and concentration K.
type VonMisesDist struct {
	K float64
}

func (d VonMisesDist) Validate() error {
	if !(d.K > 0) || math.IsInf(d.K, 1) {
		return invalidf("VonMisesDist: K=%v must be positive and finite", d.K)
	}
	return nil
}

func (d VonMisesDist) PDF(x float64) float64 {
	if x < -math.Pi || x > math.Pi {
		return 0
	}
	// Scaled by exp(-K) in both numerator and denominator.
	return math.Exp(d.K*(math.Cos(x)-1)) / (2 * math.Pi * mathx.BesselI0e(d.K))
}

// CDF integrates the density from the nearer end of [-π, π].
func (d VonMisesDist) CDF(x float64) float64 {
	if x <= -math.Pi {
		return 0
	} else if x >= math.Pi {
		return 1
	}
	if x <= 0 {
		return clamp01(integrate(d.PDF, -math.Pi, x))
	}
	return clamp01(1 - integrate(d.PDF, x, math.Pi))
}

// InvCDF is not supported for VonMisesDist.
func (d VonMisesDist) InvCDF(p float64) (float64, error) {
	return nan, notSupported("VonMisesDist.InvCDF")
}

func (d VonMisesDist) Bounds() (float64, float64) {
	return -math.Pi, math.Pi
}

// Compile returns a sampler implementing the wrapped Cauchy rejection
// method of D. J. Best, N. I. Fisher (1979): Efficient simulation of
// the von Mises distribution, Appl. Statist. 28, 152-157.
func (d VonMisesDist) Compile() Sampler {
	k := d.K
	tau := 1 + math.Sqrt(1+4*k*k)
	rho := (tau - math.Sqrt(2*tau)) / (2 * k)
	r := (1 + rho*rho) / (2 * rho)
	return SamplerFunc(func(src Source) float64 {
		var w float64
		for {
			u := raw(src)
			v := raw(src)
			z := math.Cos(math.Pi * u)
			w = (1 + r*z) / (r + z)
			c := k * (r - w)
			if c*(2-c) >= v || math.Log(c/v)+1 >= c {
				break
			}
		}
		if raw(src) > 0.5 {
			return math.Acos(w)
		}
		return -math.Acos(w)
	})
}
