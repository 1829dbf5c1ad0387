// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/mat"

// A Generator draws variates from a distribution.
//
// A Generator owns its distribution's compiled Sampler, so it must not
// be used from multiple goroutines at once. Use one Generator per
// goroutine, each with its own Source.
type Generator struct {
	dist    Dist
	src     Source
	sampler Sampler
}

// NewGenerator returns a Generator that draws from d using uniform
// deviates from src.
func NewGenerator(d Dist, src Source) (*Generator, error) {
	if src == nil {
		return nil, invalidf("NewGenerator: nil Source")
	}
	g := &Generator{src: src}
	if err := g.SetDist(d); err != nil {
		return nil, err
	}
	return g, nil
}

// SetDist replaces the distribution of g. The new parameters are
// validated and the sampler is recompiled before SetDist returns, so
// every subsequent call to Next observes d. If d is invalid, g is left
// unchanged.
func (g *Generator) SetDist(d Dist) error {
	if d == nil {
		return invalidf("SetDist: nil Dist")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	g.dist, g.sampler = d, d.Compile()
	return nil
}

// Dist returns the distribution g draws from.
func (g *Generator) Dist() Dist {
	return g.dist
}

// Next draws one variate.
func (g *Generator) Next() float64 {
	return g.sampler.Sample(g.src)
}

// NextN draws n independent variates. If n <= 0, it returns an empty
// slice.
func (g *Generator) NextN(n int) []float64 {
	if n < 0 {
		n = 0
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = g.Next()
	}
	return xs
}

// NextVec draws n independent variates into a vector. It returns nil
// if n <= 0, since gonum vectors cannot be empty.
func (g *Generator) NextVec(n int) *mat.VecDense {
	if n <= 0 {
		return nil
	}
	return mat.NewVecDense(n, g.NextN(n))
}

func (g *Generator) PDF(x float64) float64 { return g.dist.PDF(x) }

func (g *Generator) CDF(x float64) float64 { return g.dist.CDF(x) }

func (g *Generator) InvCDF(p float64) (float64, error) { return g.dist.InvCDF(p) }

// CDFBetween returns CDF(high) - CDF(low).
func (g *Generator) CDFBetween(low, high float64) float64 {
	return CDFBetween(g.dist, low, high)
}
