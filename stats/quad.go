// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/integrate/quad"

const (
	quadPanels = 32
	quadPoints = 20
)

// integrate returns ∫ f over [lo, hi] using composite Gauss-Legendre
// quadrature. The integrand is never evaluated at the end points.
func integrate(f func(float64) float64, lo, hi float64) float64 {
	if !(hi > lo) {
		return 0
	}
	width := (hi - lo) / quadPanels
	sum := 0.0
	for i := 0; i < quadPanels; i++ {
		a := lo + float64(i)*width
		b := a + width
		if i == quadPanels-1 {
			b = hi
		}
		sum += quad.Fixed(f, a, b, quadPoints, quad.Legendre{}, 0)
	}
	return sum
}

// clamp01 limits a numerically computed probability to [0, 1].
func clamp01(p float64) float64 {
	if p < 0 {
		return 0
	} else if p > 1 {
		return 1
	}
	return p
}
