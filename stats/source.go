// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Source produces uniformly distributed deviates in [0, 1).
//
// *math/rand.Rand and *math/rand/v2.Rand both implement Source.
type Source interface {
	Float64() float64
}

// UniformIn returns a uniform deviate in [low, high) drawn from src.
func UniformIn(src Source, low, high float64) float64 {
	return low + (high-low)*src.Float64()
}

// raw returns a uniform deviate in the open interval (0, 1). Many of
// the sampling algorithms take logarithms of their deviates, so an
// exact 0 is redrawn.
func raw(src Source) float64 {
	for {
		if u := src.Float64(); u != 0 {
			return u
		}
	}
}
