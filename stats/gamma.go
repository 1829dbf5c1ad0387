// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// GammaDist is a gamma distribution with shape Alpha and rate Beta.
type GammaDist struct {
	Alpha, Beta float64
}

func (d GammaDist) Validate() error {
	if !(d.Alpha > 0) || !(d.Beta > 0) {
		return invalidf("GammaDist: Alpha=%v and Beta=%v must be positive", d.Alpha, d.Beta)
	}
	return nil
}

func (d GammaDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x == 0 {
		switch {
		case d.Alpha < 1:
			return inf
		case d.Alpha == 1:
			return d.Beta
		}
		return 0
	}
	return math.Exp((d.Alpha-1)*math.Log(x) - d.Beta*x + d.Alpha*math.Log(d.Beta) - mathx.Lgamma(d.Alpha))
}

func (d GammaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return mathx.GammaInc(d.Alpha, d.Beta*x)
}

func (d GammaDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("GammaDist", p); err != nil {
		return nan, err
	}
	return mathx.GammaIncInv(d.Alpha, p) / d.Beta, nil
}

func (d GammaDist) Bounds() (float64, float64) {
	hi, _ := d.InvCDF(0.9999)
	return 0, hi
}

func (d GammaDist) Mean() float64 {
	return d.Alpha / d.Beta
}

func (d GammaDist) Variance() float64 {
	return d.Alpha / (d.Beta * d.Beta)
}

func (d GammaDist) Compile() Sampler {
	return &gammaSampler{compileGamma(d.Alpha), d.Beta}
}

type gammaSampler struct {
	g      stdGamma
	lambda float64
}

func (s *gammaSampler) Sample(src Source) float64 {
	return s.g.sample(src) / s.lambda
}

// Coefficients of the polynomial approximations used by the
// acceptance complement algorithm gd.
const (
	gq1 = 0.0416666664
	gq2 = 0.0208333723
	gq3 = 0.0079849875
	gq4 = 0.0015746717
	gq5 = -0.0003349403
	gq6 = 0.0003340332
	gq7 = 0.0006053049
	gq8 = -0.0004701849
	gq9 = 0.0001710320

	ga1 = 0.333333333
	ga2 = -0.249999949
	ga3 = 0.199999867
	ga4 = -0.166677482
	ga5 = 0.142873973
	ga6 = -0.124385581
	ga7 = 0.110368310
	ga8 = -0.112750886
	ga9 = 0.104089866

	ge1 = 1.000000000
	ge2 = 0.499999994
	ge3 = 0.166666848
	ge4 = 0.041664508
	ge5 = 0.008345522
	ge6 = 0.001353826
	ge7 = 0.000247453
)

// stdGamma draws from the gamma distribution with shape a and unit
// rate.
//
// For a < 1 it uses the acceptance rejection algorithm gs and for
// a >= 1 the acceptance complement algorithm gd of
// J. H. Ahrens, U. Dieter (1974): Computer methods for sampling from
// gamma, beta, Poisson and binomial distributions, Computing 12,
// 223-246, and J. H. Ahrens, U. Dieter (1982): Generating gamma
// variates by a modified rejection technique, Communications of the
// ACM 25, 47-54.
type stdGamma struct {
	a float64

	// gs
	b float64

	// gd, step 1.
	s, ss, d float64
	// gd, step 4 (hat case).
	q0, bh, si, c float64
}

func compileGamma(a float64) stdGamma {
	g := stdGamma{a: a}
	if a < 1 {
		g.b = 1 + 0.36788794412*a
		return g
	}

	g.ss = a - 0.5
	g.s = math.Sqrt(g.ss)
	g.d = 5.656854249 - 12*g.s

	r := 1 / a
	g.q0 = ((((((((gq9*r+gq8)*r+gq7)*r+gq6)*r+gq5)*r+gq4)*r+gq3)*r+gq2)*r + gq1) * r
	switch {
	case a > 13.022:
		g.bh = 1.77
		g.si = 0.75
		g.c = 0.1515 / g.s
	case a > 3.686:
		g.bh = 1.654 + 0.0076*g.ss
		g.si = 1.68/g.s + 0.275
		g.c = 0.062/g.s + 0.024
	default:
		g.bh = 0.463 + g.s - 0.178*g.ss
		g.si = 1.235
		g.c = 0.195/g.s - 0.079 + 0.016*g.s
	}
	return g
}

func (g *stdGamma) sample(src Source) float64 {
	if g.a < 1 {
		return g.gs(src)
	}
	return g.gd(src)
}

func (g *stdGamma) gs(src Source) float64 {
	a := g.a
	for {
		p := g.b * raw(src)
		if p <= 1 {
			// Step 2. Case gds <= 1.
			gds := math.Exp(math.Log(p) / a)
			if math.Log(raw(src)) <= -gds {
				return gds
			}
		} else {
			// Step 3. Case gds > 1.
			gds := -math.Log((g.b - p) / a)
			if math.Log(raw(src)) <= (a-1)*math.Log(gds) {
				return gds
			}
		}
	}
}

// q returns the hat-case q(t) of gd (steps 6 and 10).
func (g *stdGamma) q(t float64) float64 {
	v := t / (g.s + g.s)
	if math.Abs(v) > 0.25 {
		return g.q0 - g.s*t + 0.25*t*t + (g.ss+g.ss)*math.Log(1+v)
	}
	return g.q0 + 0.5*t*t*((((((((ga9*v+ga8)*v+ga7)*v+ga6)*v+ga5)*v+ga4)*v+ga3)*v+ga2)*v+ga1)*v
}

func (g *stdGamma) gd(src Source) float64 {
	// Step 2. Normal deviate by the polar method.
	var v1, v2, v12 float64
	for {
		v1 = 2*raw(src) - 1
		v2 = 2*raw(src) - 1
		v12 = v1*v1 + v2*v2
		if v12 <= 1 && v12 != 0 {
			break
		}
	}
	t := v1 * math.Sqrt(-2*math.Log(v12)/v12)
	x := g.s + 0.5*t
	gds := x * x
	if t >= 0 {
		// Immediate acceptance.
		return gds
	}

	// Step 3. Squeeze acceptance.
	u := raw(src)
	if g.d*u <= t*t*t {
		return gds
	}

	// Steps 5-7. Quotient acceptance.
	if x > 0 {
		if math.Log(1-u) <= g.q(t) {
			return gds
		}
	}

	for {
		// Step 8. Double exponential deviate t.
		var e, signU float64
		for {
			e = -math.Log(raw(src))
			u = raw(src)
			u = u + u - 1
			signU = 1
			if u <= 0 {
				signU = -1
			}
			t = g.bh + e*g.si*signU
			// Step 9. Rejection of t.
			if t > -0.71874483771719 {
				break
			}
		}

		// Step 10. New q(t).
		q := g.q(t)
		// Step 11.
		if q <= 0 {
			continue
		}
		var w float64
		if q > 0.5 {
			w = math.Exp(q) - 1
		} else {
			w = ((((((ge7*q+ge6)*q+ge5)*q+ge4)*q+ge3)*q+ge2)*q + ge1) * q
		}
		// Step 12. Hat acceptance.
		if g.c*u*signU <= w*math.Exp(e-0.5*t*t) {
			x = g.s + 0.5*t
			return x * x
		}
	}
}
