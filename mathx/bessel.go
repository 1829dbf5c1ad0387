// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// The modified Bessel functions below are accurate to a few ulps.
// I₀ and I₁ sum their power series for small arguments and their
// asymptotic expansions for large ones, stopping once a term no longer
// changes the sum. K₁ applies the trapezoidal rule to its integral
// representation, which converges geometrically in the step size.

// besselAsymptotic is the argument above which I₀ and I₁ use their
// asymptotic expansions. The smallest term there is below e^-50.
const besselAsymptotic = 25

// BesselI0 returns the modified Bessel function of the first kind of
// order zero, I₀(x).
func BesselI0(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	ax := math.Abs(x)
	if ax < besselAsymptotic {
		return besselISeries(0, ax)
	}
	return math.Exp(ax) * besselIAsymptotic(0, ax)
}

// BesselI0e returns the exponentially scaled I₀(x)·exp(-|x|). It
// stays finite for arguments where BesselI0 overflows.
func BesselI0e(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	ax := math.Abs(x)
	if ax < besselAsymptotic {
		return besselISeries(0, ax) * math.Exp(-ax)
	}
	return besselIAsymptotic(0, ax)
}

// BesselI1 returns the modified Bessel function of the first kind of
// order one, I₁(x).
func BesselI1(x float64) float64 {
	if math.IsNaN(x) {
		return nan
	}
	ax := math.Abs(x)
	var ans float64
	if ax < besselAsymptotic {
		ans = besselISeries(1, ax)
	} else {
		ans = math.Exp(ax) * besselIAsymptotic(1, ax)
	}
	if x < 0 {
		return -ans
	}
	return ans
}

// besselISeries sums I_n(x) = Σ (x/2)^(2k+n) / (k! (k+n)!) for x >= 0.
// Every term is positive.
func besselISeries(n int, x float64) float64 {
	term := 1.0
	if n == 1 {
		term = x / 2
	}
	sum := term
	y := x * x / 4
	for k := 1; ; k++ {
		term *= y / float64(k*(k+n))
		if sum+term == sum {
			return sum
		}
		sum += term
	}
}

// besselIAsymptotic returns I_n(x)·exp(-x) from the expansion
//
//	I_n(x) ~ e^x / sqrt(2πx) · Σ (-1)^k a_k(n) / x^k
//
// truncated before its terms start to grow.
func besselIAsymptotic(n int, x float64) float64 {
	mu := float64(4 * n * n)
	term, sum := 1.0, 1.0
	for k := 1; ; k++ {
		odd := float64(2*k - 1)
		next := -term * (mu - odd*odd) / (8 * float64(k) * x)
		if math.Abs(next) >= math.Abs(term) || sum+next == sum {
			break
		}
		sum += next
		term = next
	}
	return sum / math.Sqrt(2*math.Pi*x)
}

// BesselK1 returns the modified Bessel function of the second kind of
// order one, K₁(x). If x <= 0, it returns NaN.
func BesselK1(x float64) float64 {
	if x <= 0 || math.IsNaN(x) {
		return nan
	}
	return besselK1Scaled(x) * math.Exp(-x)
}

// BesselK1e returns the exponentially scaled K₁(x)·exp(x). It stays
// non-zero for arguments where BesselK1 underflows.
func BesselK1e(x float64) float64 {
	if x <= 0 || math.IsNaN(x) {
		return nan
	}
	return besselK1Scaled(x)
}

// besselK1Scaled integrates
//
//	K₁(x)·eˣ = ∫₀^∞ exp(-x(cosh t - 1)) cosh t dt
//
// with the trapezoidal rule. The integrand is analytic in a strip
// about the real axis, so the error falls like exp(-π²/h). For large
// x the integrand narrows like 1/sqrt(x), and so does the step.
func besselK1Scaled(x float64) float64 {
	if math.IsInf(x, 1) {
		return 0
	}
	h := math.Min(0.25, 0.5/math.Sqrt(x))
	sum := 0.5
	for k := 1; ; k++ {
		t := float64(k) * h
		// cosh t - 1 without cancellation.
		s := math.Sinh(t / 2)
		term := math.Exp(-2*x*s*s) * math.Cosh(t)
		sum += term
		if term < 1e-17*sum {
			break
		}
	}
	return h * sum
}
