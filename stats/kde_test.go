// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestKDEUnbounded(t *testing.T) {
	// One point is just the kernel.
	d, err := KDE{Bandwidth: 2}.From([]float64{3}, nil)
	require.NoError(t, err)
	norm := NormalDist{3, 2}
	for _, x := range []float64{-5, 0, 3, 4.5, 10} {
		assert.InDelta(t, norm.PDF(x), d.PDF(x), 1e-12, "PDF(%v)", x)
		assert.InDelta(t, norm.CDF(x), d.CDF(x), 1e-12, "CDF(%v)", x)
	}
	x, err := d.InvCDF(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3, x, 1e-9)

	// Weights are relative.
	d1, err := KDE{Bandwidth: 1}.From([]float64{0, 4}, []float64{1, 3})
	require.NoError(t, err)
	d2, err := KDE{Bandwidth: 1}.From([]float64{0, 4, 4, 4}, nil)
	require.NoError(t, err)
	for _, x := range []float64{-1, 0, 2, 4, 5} {
		assert.InDelta(t, d2.PDF(x), d1.PDF(x), 1e-12, "PDF(%v)", x)
	}
}

func TestKDEReflect(t *testing.T) {
	norm := NormalDist{0, 1}

	// Reflection at 0 folds the kernel onto [0, inf).
	d, err := KDE{Bandwidth: 1, BoundaryMax: math.Inf(1)}.From([]float64{0}, nil)
	require.NoError(t, err)
	assert.Zero(t, d.PDF(-0.5))
	assert.Zero(t, d.CDF(-0.5))
	for _, x := range []float64{0, 0.5, 2} {
		assert.InDelta(t, 2*norm.PDF(x), d.PDF(x), 1e-12, "PDF(%v)", x)
		assert.InDelta(t, 2*norm.CDF(x)-1, d.CDF(x), 1e-12, "CDF(%v)", x)
	}

	// Mirror image at an upper bound.
	d, err = KDE{Bandwidth: 1, BoundaryMin: math.Inf(-1)}.From([]float64{0}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2*norm.PDF(-1), d.PDF(-1), 1e-12)
	assert.InDelta(t, 2*norm.CDF(-1), d.CDF(-1), 1e-12)
	assert.Equal(t, 1.0, d.CDF(0))

	// Both bounds: all weight stays in [0, 1).
	d, err = KDE{Bandwidth: 0.4, BoundaryMax: 1}.From([]float64{0.3, 0.7}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, integrate(d.PDF, 0, 1), 1e-6)
	assert.InDelta(t, 0.5, d.CDF(0.5), 1e-9)
	lo, hi := d.Bounds()
	assert.GreaterOrEqual(t, lo, 0.0)
	assert.LessOrEqual(t, hi, 1.0)

	g, err := NewGenerator(d, testSource(5))
	require.NoError(t, err)
	for _, x := range g.NextN(5000) {
		if x < 0 || x > 1 {
			t.Fatalf("sample %v outside [0, 1]", x)
		}
	}
}

func TestKDEReflectPDFMatchesCDF(t *testing.T) {
	// Asymmetric data near both bounds exercises every mirror image.
	d, err := KDE{Bandwidth: 0.3, BoundaryMax: 1}.From([]float64{0.05, 0.5, 0.9}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, integrate(d.PDF, 0, 1), 1e-6)
	assert.InDelta(t, 1, d.CDF(math.Nextafter(1, 0)), 1e-6)

	const h = 1e-5
	for _, x := range []float64{0.01, 0.1, 0.25, 0.5, 0.75, 0.9, 0.99} {
		deriv := (d.CDF(x+h) - d.CDF(x-h)) / (2 * h)
		assert.InDelta(t, deriv, d.PDF(x), 1e-5, "PDF(%v)", x)
		assert.InDelta(t, integrate(d.PDF, 0, x), d.CDF(x), 1e-6, "CDF(%v)", x)
	}
}

func TestKDEBandwidth(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	sd := stat.StdDev(xs, nil)
	assert.InDelta(t, 1.06*sd*math.Pow(5, -0.2), BandwidthSilverman(xs, nil), 1e-12)

	// An outlier inflates the standard deviation but not the IQR.
	ys := []float64{1, 2, 3, 4, 5, 6, 7, 1000}
	sx := append([]float64(nil), ys...)
	iqr := stat.Quantile(0.75, stat.Empirical, sx, nil) - stat.Quantile(0.25, stat.Empirical, sx, nil)
	assert.InDelta(t, 1.06*math.Pow(8, -0.2)*iqr/1.349, BandwidthScott(ys, nil), 1e-12)
	assert.Less(t, BandwidthScott(ys, nil), BandwidthSilverman(ys, nil))

	// Constant IQR falls back to Silverman's rule.
	d, err := KDE{}.From([]float64{1, 1, 1, 1, 1, 1, 9}, nil)
	require.NoError(t, err)
	lo, hi := d.Bounds()
	assert.Less(t, lo, 1.0)
	assert.Greater(t, hi, 9.0)
}

func TestKDEInvalid(t *testing.T) {
	for _, test := range []struct {
		k       KDE
		xs, wts []float64
	}{
		{KDE{}, nil, nil},
		{KDE{}, []float64{1, 2}, []float64{1}},
		{KDE{}, []float64{1, 2}, []float64{1, -1}},
		{KDE{}, []float64{1, 2}, []float64{0, 0}},
		{KDE{}, []float64{4}, nil},
		{KDE{Bandwidth: -1}, []float64{1, 2}, nil},
		{KDE{Bandwidth: 1, BoundaryMin: 2, BoundaryMax: 1}, []float64{1, 2}, nil},
	} {
		_, err := test.k.From(test.xs, test.wts)
		assert.ErrorIs(t, err, ErrInvalidArgument, "%+v.From(%v, %v)", test.k, test.xs, test.wts)
	}
}
