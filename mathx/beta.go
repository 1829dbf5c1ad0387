// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// Beta returns the value of the complete beta function B(a, b).
func Beta(a, b float64) float64 {
	// B(x,y) = Γ(x)Γ(y) / Γ(x+y)
	return math.Exp(Lbeta(a, b))
}

// Lbeta returns the natural logarithm of B(a, b).
func Lbeta(a, b float64) float64 {
	if a <= 0 || b <= 0 {
		return nan
	}
	return mathext.Lbeta(a, b)
}

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
//
// This is not to be confused with the "incomplete beta function",
// which can be computed as BetaInc(x, a, b)*Beta(a, b).
//
// If x < 0 or x > 1, returns NaN.
func BetaInc(x, a, b float64) float64 {
	if x < 0 || x > 1 || a <= 0 || b <= 0 || math.IsNaN(x) {
		return nan
	}
	switch x {
	case 0:
		return 0
	case 1:
		return 1
	}
	return mathext.RegIncBeta(a, b, x)
}

// BetaIncInv returns x such that BetaInc(x, a, b) = y.
//
// If y < 0 or y > 1, returns NaN.
func BetaIncInv(y, a, b float64) float64 {
	if y < 0 || y > 1 || a <= 0 || b <= 0 || math.IsNaN(y) {
		return nan
	}
	switch y {
	case 0:
		return 0
	case 1:
		return 1
	}
	return mathext.InvRegIncBeta(a, b, y)
}
