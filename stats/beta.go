// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
)

// BetaDist is a beta distribution with shape parameters Alpha and
// Beta on [0, 1].
type BetaDist struct {
	Alpha, Beta float64
}

func (d BetaDist) Validate() error {
	if !(d.Alpha > 0) {
		return invalidf("BetaDist: Alpha=%v must be positive", d.Alpha)
	}
	if !(d.Beta > 0) {
		return invalidf("BetaDist: Beta=%v must be positive", d.Beta)
	}
	return nil
}

func (d BetaDist) PDF(x float64) float64 {
	if x < 0 || x > 1 {
		return 0
	}
	a, b := d.Alpha, d.Beta
	// The density is unbounded at an end point with a shape
	// parameter below 1.
	if x == 0 {
		switch {
		case a < 1:
			return inf
		case a == 1:
			return b
		}
		return 0
	}
	if x == 1 {
		switch {
		case b < 1:
			return inf
		case b == 1:
			return a
		}
		return 0
	}
	return math.Exp((a-1)*math.Log(x) + (b-1)*math.Log1p(-x) - mathx.Lbeta(a, b))
}

func (d BetaDist) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	return mathx.BetaInc(x, d.Alpha, d.Beta)
}

func (d BetaDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("BetaDist", p); err != nil {
		return nan, err
	}
	return mathx.BetaIncInv(p, d.Alpha, d.Beta), nil
}

func (d BetaDist) Bounds() (float64, float64) {
	return 0, 1
}

// Mean returns the mean of d.
func (d BetaDist) Mean() (float64, error) {
	return BetaMean(d.Alpha, d.Beta)
}

// Mode returns the mode of d.
func (d BetaDist) Mode() (float64, error) {
	return BetaMode(d.Alpha, d.Beta)
}

// StdDev returns the standard deviation of d.
func (d BetaDist) StdDev() (float64, error) {
	return BetaStdDev(d.Alpha, d.Beta)
}

func checkBetaShape(op string, alpha, beta float64) error {
	if !(alpha > 0) {
		return invalidf("%s: the shape parameter alpha, %v, must be greater than zero", op, alpha)
	}
	if !(beta > 0) {
		return invalidf("%s: the shape parameter beta, %v, must be greater than zero", op, beta)
	}
	return nil
}

// BetaMean returns the mean of the beta distribution with shape
// parameters alpha and beta.
func BetaMean(alpha, beta float64) (float64, error) {
	if err := checkBetaShape("BetaMean", alpha, beta); err != nil {
		return nan, err
	}
	return alpha / (alpha + beta), nil
}

// BetaMode returns the mode of the beta distribution with shape
// parameters alpha and beta.
//
// For alpha, beta > 1 this is the interior maximum. Otherwise the
// density is maximal (possibly unbounded) at an end point: 0 if
// alpha < beta, 1 if alpha > beta and, for alpha == beta <= 1, the
// midpoint 0.5 is returned by convention.
func BetaMode(alpha, beta float64) (float64, error) {
	if err := checkBetaShape("BetaMode", alpha, beta); err != nil {
		return nan, err
	}
	switch {
	case alpha > 1 && beta > 1:
		return (alpha - 1) / (alpha + beta - 2), nil
	case alpha < beta:
		return 0, nil
	case alpha > beta:
		return 1, nil
	}
	return 0.5, nil
}

// BetaStdDev returns the standard deviation of the beta distribution
// with shape parameters alpha and beta.
func BetaStdDev(alpha, beta float64) (float64, error) {
	if err := checkBetaShape("BetaStdDev", alpha, beta); err != nil {
		return nan, err
	}
	s := alpha + beta
	return math.Sqrt(alpha * beta / (s * s * (s + 1))), nil
}

// Compile selects one of three sampling regimes by comparing each
// shape parameter with 1:
//
//   - both < 1: stratified rejection, b00;
//   - one < 1 < other: patchwork rejection with a Newton-adjusted
//     split point, b01;
//   - both > 1: patchwork rejection with a five-region hat, b1prs.
//
// A parameter equal to 1 reduces to inversion.
//
// The algorithms are from H. Sakasegawa (1983): Stratified rejection
// and squeeze method for generating beta random numbers, Ann. Inst.
// Statist. Math. 35 B, 291-302, and E. Stadlober, H. Zechner (1993):
// Generating beta variates via patchwork rejection, Computing 50,
// 1-18.
func (d BetaDist) Compile() Sampler {
	a, b := d.Alpha, d.Beta
	switch {
	case a > 1 && b > 1:
		return SamplerFunc(compileB1prs(a, b).sample)
	case a > 1 && b < 1:
		s := compileB01(b, a)
		return SamplerFunc(func(src Source) float64 {
			return 1 - s.b01(src)
		})
	case a < 1 && b > 1:
		return SamplerFunc(compileB01(a, b).b01)
	case a < 1 && b < 1:
		return SamplerFunc(compileB00(a, b).b00)
	case a == 1 && b == 1:
		return SamplerFunc(raw)
	case a == 1:
		return SamplerFunc(func(src Source) float64 {
			return 1 - math.Exp(math.Log(raw(src))/b)
		})
	}
	// b == 1
	return SamplerFunc(func(src Source) float64 {
		return math.Exp(math.Log(raw(src)) / a)
	})
}

// betaPatch holds the setup of b00 and b01: the split point t, the
// density factors fa = t^(a-1) and fb = (1-t)^(b-1) at t, and the
// cumulative hat areas p1 (X < t) and p2 (all).
type betaPatch struct {
	a, b, a_, b_ float64
	t, fa, fb    float64
	p1, p2       float64
	// b01 squeeze slopes.
	ml, mu float64
}

// compileB00 sets up b00 for a < 1 and b < 1.
func compileB00(a, b float64) *betaPatch {
	s := &betaPatch{a: a, b: b, a_: a - 1, b_: b - 1}
	c := (b * s.b_) / (a * s.a_) // b(1-b) / a(1-a)
	if c == 1 {
		s.t = 0.5
	} else {
		s.t = (1 - math.Sqrt(c)) / (1 - c) // t_opt
	}
	s.fa = math.Exp(s.a_ * math.Log(s.t))
	s.fb = math.Exp(s.b_ * math.Log(1-s.t))

	s.p1 = s.t / a          // 0 < X < t
	s.p2 = (1-s.t)/b + s.p1 // t < X < 1
	return s
}

func (s *betaPatch) b00(src Source) float64 {
	for {
		if u := raw(src) * s.p2; u <= s.p1 {
			// X < t
			z := math.Exp(math.Log(u/s.p1) / s.a)
			x := s.t * z
			// Squeeze accept: L(x) = 1 + (1 - b)x.
			v := raw(src) * s.fb
			if v <= 1-s.b_*x {
				return x
			}
			// Squeeze reject: U(x) = 1 + ((1 - t)^(b-1) - 1)/t * x.
			if v <= 1+(s.fb-1)*z {
				// Quotient accept: q(x) = (1 - x)^(b-1) / fb.
				if math.Log(v) <= s.b_*math.Log(1-x) {
					return x
				}
			}
		} else {
			// X > t
			z := math.Exp(math.Log((u-s.p1)/(s.p2-s.p1)) / s.b)
			x := 1 - (1-s.t)*z
			// Squeeze accept: L(x) = 1 + (1 - a)(1 - x).
			v := raw(src) * s.fa
			if v <= 1-s.a_*(1-x) {
				return x
			}
			// Squeeze reject: U(x) = 1 + (t^(a-1) - 1)/(1 - t) * (1 - x).
			if v <= 1+(s.fa-1)*z {
				// Quotient accept: q(x) = x^(a-1) / fa.
				if math.Log(v) <= s.a_*math.Log(x) {
					return x
				}
			}
		}
	}
}

// compileB01 sets up b01 for a < 1 < b.
func compileB01(a, b float64) *betaPatch {
	s := &betaPatch{a: a, b: b, a_: a - 1, b_: b - 1}
	// One Newton step from the start value t.
	t := s.a_ / (a - b)
	fb := math.Exp((s.b_ - 1) * math.Log(1-t))
	fa := a - (a+s.b_)*t
	t -= (t - (1-fa)*(1-t)*fb/b) / (1 - fa*fb)
	s.t = t
	s.fa = math.Exp(s.a_ * math.Log(t))
	s.fb = math.Exp(s.b_ * math.Log(1-t))
	if s.b_ <= 1 {
		s.ml = (1 - s.fb) / t // ml = -m1
		s.mu = s.b_ * t       // mu = -m2 * t
	} else {
		s.ml = s.b_
		s.mu = 1 - s.fb
	}
	s.p1 = t / a               // 0 < X < t
	s.p2 = s.fb*(1-t)/b + s.p1 // t < X < 1
	return s
}

func (s *betaPatch) b01(src Source) float64 {
	for {
		if u := raw(src) * s.p2; u <= s.p1 {
			// X < t
			z := math.Exp(math.Log(u/s.p1) / s.a)
			x := s.t * z
			// Squeeze accept: L(x) = 1 + m1*x, ml = -m1.
			v := raw(src)
			if v <= 1-s.ml*x {
				return x
			}
			// Squeeze reject: U(x) = 1 + m2*x, mu = -m2 * t.
			if v <= 1-s.mu*z {
				// Quotient accept: q(x) = (1 - x)^(b-1).
				if math.Log(v) <= s.b_*math.Log(1-x) {
					return x
				}
			}
		} else {
			// X > t
			z := math.Exp(math.Log((u-s.p1)/(s.p2-s.p1)) / s.b)
			x := 1 - (1-s.t)*z
			// Squeeze accept: L(x) = 1 + (1 - a)(1 - x).
			v := raw(src) * s.fa
			if v <= 1-s.a_*(1-x) {
				return x
			}
			// Squeeze reject: U(x) = 1 + (t^(a-1) - 1)/(1 - t) * (1 - x).
			if v <= 1+(s.fa-1)*z {
				// Quotient accept: q(x) = x^(a-1) / fa.
				if math.Log(v) <= s.a_*math.Log(x) {
					return x
				}
			}
		}
	}
}

// betaPRS holds the setup of b1prs. The hat consists of two uniform
// regions on either side of the mode m, split at x2 and x4, two
// triangular regions out to x1 and x5, and exponential tails beyond.
type betaPRS struct {
	a, b, s, m     float64
	dl, dr         float64
	x1, x2, x4, x5 float64
	z2, z4         float64
	f1, f2, f4, f5 float64
	ll, lr         float64
	p1, p2, p3, p4 float64
}

// f returns the beta density relative to its value at the mode,
// (x/m)^a ((1 - x)/(1 - m))^b.
func (s *betaPRS) f(x float64) float64 {
	return math.Exp(s.a*math.Log(x/s.m) + s.b*math.Log((1-x)/(1-s.m)))
}

// compileB1prs sets up b1prs for p > 1 and q > 1.
func compileB1prs(p, q float64) *betaPRS {
	s := &betaPRS{a: p - 1, b: q - 1}
	s.s = s.a + s.b
	s.m = s.a / s.s
	var D float64
	if s.a > 1 || s.b > 1 {
		D = math.Sqrt(s.m * (1 - s.m) / (s.s - 1))
	}

	if s.a <= 1 {
		s.dl = s.m * 0.5
		s.x2 = s.dl
		s.x1, s.z2, s.f1, s.ll = 0, 0, 0, 0
	} else {
		s.x2 = s.m - D
		s.x1 = s.x2 - D
		s.z2 = s.x2 * (1 - (1-s.x2)/(s.s*D))
		if s.x1 <= 0 || (s.s-6)*s.x2-s.a+3 > 0 {
			s.x1 = s.z2
			s.x2 = (s.x1 + s.m) * 0.5
			s.dl = s.m - s.x2
		} else {
			s.dl = D
		}
		s.f1 = s.f(s.x1)
		s.ll = s.x1 * (1 - s.x1) / (s.s * (s.m - s.x1)) // z1 = x1 - ll
	}
	s.f2 = s.f(s.x2)

	if s.b <= 1 {
		s.dr = (1 - s.m) * 0.5
		s.x4 = 1 - s.dr
		s.x5, s.z4, s.f5, s.lr = 1, 1, 0, 0
	} else {
		s.dr = D
		s.x4 = s.m + D
		s.x5 = s.x4 + D
		s.z4 = s.x4 * (1 + (1-s.x4)/(s.s*D))
		if s.x5 >= 1 || (s.s-6)*s.x4-s.a+3 < 0 {
			s.x5 = s.z4
			s.x4 = (s.m + s.x5) * 0.5
			s.dr = s.x4 - s.m
		}
		s.f5 = s.f(s.x5)
		s.lr = s.x5 * (1 - s.x5) / (s.s * (s.x5 - s.m)) // z5 = x5 + lr
	}
	s.f4 = s.f(s.x4)

	s.p1 = s.f2 * (s.dl + s.dl)    // x1 < X < m
	s.p2 = s.f4*(s.dr+s.dr) + s.p1 // m < X < x5
	s.p3 = s.f1*s.ll + s.p2        // X < x1
	s.p4 = s.f5*s.lr + s.p3        // x5 < X
	return s
}

func (s *betaPRS) sample(src Source) float64 {
	for {
		var x, w float64
		u := raw(src) * s.p4
		switch {
		case u <= s.p1:
			// Immediate accept: x2 < X < m, -f(x2) < W < 0.
			if w = u/s.dl - s.f2; w <= 0 {
				return s.m - u/s.f2
			}
			// Immediate accept: x1 < X < x2, 0 < W < f(x1).
			if w <= s.f1 {
				return s.x2 - w/s.f1*s.dl
			}
			// Candidates for the acceptance-rejection test.
			u = raw(src)
			v := s.dl * u
			x = s.x2 - v
			y := s.x2 + v
			// Squeeze accept: L(x) = f(x2) (x - z2) / (x2 - z2).
			if w*(s.x2-s.z2) <= s.f2*(x-s.z2) {
				return x
			}
			if v = s.f2 + s.f2 - w; v < 1 {
				// Squeeze accept: L(x) = f(x2) + (1 - f(x2))(x - x2)/(m - x2).
				if v <= s.f2+(1-s.f2)*u {
					return y
				}
				// Quotient accept: x2 < Y < m, W >= 2f2 - f(Y).
				if v <= s.f(y) {
					return y
				}
			}

		case u <= s.p2:
			u -= s.p1
			// Immediate accept: m < X < x4, -f(x4) < W < 0.
			if w = u/s.dr - s.f4; w <= 0 {
				return s.m + u/s.f4
			}
			// Immediate accept: x4 < X < x5, 0 < W < f(x5).
			if w <= s.f5 {
				return s.x4 + w/s.f5*s.dr
			}
			// Candidates for the acceptance-rejection test.
			u = raw(src)
			v := s.dr * u
			x = s.x4 + v
			y := s.x4 - v
			// Squeeze accept: L(x) = f(x4) (z4 - x) / (z4 - x4).
			if w*(s.z4-s.x4) <= s.f4*(s.z4-x) {
				return x
			}
			if v = s.f4 + s.f4 - w; v < 1 {
				// Squeeze accept: L(x) = f(x4) + (1 - f(x4))(x4 - x)/(x4 - m).
				if v <= s.f4+(1-s.f4)*u {
					return y
				}
				// Quotient accept: m < Y < x4, W >= 2f4 - f(Y).
				if v <= s.f(y) {
					return y
				}
			}

		case u <= s.p3:
			// X < x1
			u = (u - s.p2) / (s.p3 - s.p2)
			y := math.Log(u)
			if x = s.x1 + s.ll*y; x <= 0 {
				continue
			}
			w = u * raw(src)
			// Squeeze accept: L(x) = f(x1) (x - z1) / (x1 - z1),
			// z1 = x1 - ll, W <= 1 + (X - x1)/ll.
			if w <= 1+y {
				return x
			}
			w *= s.f1

		default:
			// x5 < X
			u = (u - s.p3) / (s.p4 - s.p3)
			y := math.Log(u)
			if x = s.x5 - s.lr*y; x >= 1 {
				continue
			}
			w = u * raw(src)
			// Squeeze accept: L(x) = f(x5) (z5 - x) / (z5 - x5),
			// z5 = x5 + lr, W <= 1 + (x5 - X)/lr.
			if w <= 1+y {
				return x
			}
			w *= s.f5
		}

		// Density f(X) = (X/m)^a ((1 - X)/(1 - m))^b.
		if math.Log(w) <= s.a*math.Log(x/s.m)+s.b*math.Log((1-x)/(1-s.m)) {
			return x
		}
	}
}
