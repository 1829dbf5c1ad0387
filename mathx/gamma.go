// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Lgamma returns the natural logarithm of |Γ(x)|.
func Lgamma(x float64) float64 {
	y, _ := math.Lgamma(x)
	return y
}

// Gamma returns Γ(x).
func Gamma(x float64) float64 {
	return math.Gamma(x)
}

// GammaInc returns the value of the incomplete gamma function (also
// known as the regularized gamma function):
//
//	P(a, x) = 1 / Γ(a) * ∫₀ˣ exp(-t) t**(a-1) dt
//
// If a <= 0 or x < 0, it returns NaN.
func GammaInc(a, x float64) float64 {
	if a <= 0 || x < 0 || math.IsNaN(a) || math.IsNaN(x) {
		return nan
	}
	if x == 0 {
		return 0
	}
	if math.IsInf(x, 1) {
		return 1
	}
	return mathext.GammaIncReg(a, x)
}

// GammaIncComp returns the complement of the incomplete gamma
// function 1 - GammaInc(a, x). This is more numerically stable for
// values near 0.
func GammaIncComp(a, x float64) float64 {
	if a <= 0 || x < 0 || math.IsNaN(a) || math.IsNaN(x) {
		return nan
	}
	if x == 0 {
		return 1
	}
	if math.IsInf(x, 1) {
		return 0
	}
	return mathext.GammaIncRegComp(a, x)
}

// GammaIncInv returns x such that GammaInc(a, x) = y.
//
// If a <= 0 or y is outside [0, 1], it returns NaN.
func GammaIncInv(a, y float64) float64 {
	if a <= 0 || y < 0 || y > 1 || math.IsNaN(a) || math.IsNaN(y) {
		return nan
	}
	switch y {
	case 0:
		return 0
	case 1:
		return inf
	}
	return mathext.GammaIncRegInv(a, y)
}
