// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestUniformDist(t *testing.T) {
	d := UniformDist{0, 10}
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF,
		map[float64]float64{
			-1: 0,
			0:  0,
			5:  0.5,
			10: 1,
			20: 1,
		})
	testFunc(t, fmt.Sprintf("%+v.PDF", d), d.PDF,
		map[float64]float64{
			-1: 0,
			5:  0.1,
			11: 0,
		})
	_, err := d.InvCDF(1.5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestExponentialDist(t *testing.T) {
	d := ExponentialDist{2}
	testFunc(t, fmt.Sprintf("%+v.CDF", d), d.CDF,
		map[float64]float64{
			-1: 0,
			0:  0,
			1:  1 - math.Exp(-2),
		})
	testFunc(t, fmt.Sprintf("%+v.PDF", d), d.PDF,
		map[float64]float64{
			-1: 0,
			0:  2,
			1:  2 * math.Exp(-2),
		})
	assert.InDelta(t, 0.8647, d.CDF(1), 1e-4)
}

func TestIntegratesToOne(t *testing.T) {
	for _, test := range []struct {
		d      Dist
		lo, hi float64
	}{
		{UniformDist{0, 10}, 0, 10},
		{ExponentialDist{1}, 0, 60},
		{GammaDist{2.5, 1}, 0, 80},
		{BetaDist{2, 3}, 0, 1},
		{NormalDist{0, 1}, -20, 20},
		{HyperbolicDist{2, 0.5}, -40, 40},
		{VonMisesDist{2}, -math.Pi, math.Pi},
	} {
		got := integrate(test.d.PDF, test.lo, test.hi)
		assert.InDelta(t, 1, got, 1e-5, "%T%+v", test.d, test.d)
	}
}

func TestSampleMean(t *testing.T) {
	g, err := NewGenerator(UniformDist{0, 1}, testSource(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.5, stat.Mean(g.NextN(100000), nil), 0.01)

	require.NoError(t, g.SetDist(ExponentialDist{1}))
	assert.InDelta(t, 1, stat.Mean(g.NextN(100000), nil), 0.05)
}

// TestSampleMoments checks sample moments of the rejection samplers
// in each of their regimes.
func TestSampleMoments(t *testing.T) {
	const n = 200000
	for _, test := range []struct {
		d          Dist
		mean, vari float64
	}{
		{GammaDist{0.3, 1}, 0.3, 0.3},
		{GammaDist{2, 3}, 2.0 / 3, 2.0 / 9},
		{GammaDist{8, 1}, 8, 8},
		{GammaDist{50, 2}, 25, 12.5},
		{BetaDist{0.3, 0.6}, 1.0 / 3, 0.3 * 0.6 / (0.81 * 1.9)},
		{BetaDist{0.5, 4}, 0.5 / 4.5, 2 / (4.5 * 4.5 * 5.5)},
		{BetaDist{4, 0.5}, 4 / 4.5, 2 / (4.5 * 4.5 * 5.5)},
		{BetaDist{2, 5}, 2.0 / 7, 10 / (49.0 * 8)},
		{ChiSquareDist{1}, 1, 2},
		{ChiSquareDist{7}, 7, 14},
		{TDist{6}, 0, 1.5},
		{ErlangDist{Variance: 3, Mean: 6}, 6, 3},
		{ExponentialPowerDist{2}, 0, 0.5},
		{LaplaceDist{1, 2}, 1, 8},
		{LogNormalDist{0, 0.5}, math.Exp(0.125), (math.Exp(0.25) - 1) * math.Exp(0.25)},
	} {
		g, err := NewGenerator(test.d, testSource(7))
		require.NoError(t, err)
		xs := g.NextN(n)
		mean, vari := stat.MeanVariance(xs, nil)
		sd := math.Sqrt(test.vari)
		assert.InDelta(t, test.mean, mean, 5*sd/math.Sqrt(n), "%T%+v mean", test.d, test.d)
		assert.InEpsilon(t, test.vari, vari, 0.05, "%T%+v variance", test.d, test.d)
	}
}

func TestAgainstGonum(t *testing.T) {
	type gonumDist interface {
		Prob(x float64) float64
		CDF(x float64) float64
	}
	for _, test := range []struct {
		d  Dist
		gd gonumDist
		xs []float64
	}{
		{BetaDist{2, 3}, distuv.Beta{Alpha: 2, Beta: 3}, []float64{0.1, 0.4, 0.9}},
		{BetaDist{0.5, 0.7}, distuv.Beta{Alpha: 0.5, Beta: 0.7}, []float64{0.01, 0.5, 0.99}},
		{GammaDist{2.5, 2}, distuv.Gamma{Alpha: 2.5, Beta: 2}, []float64{0.1, 1, 4}},
		{ChiSquareDist{3}, distuv.ChiSquared{K: 3}, []float64{0.5, 2, 9}},
		{FDist{4, 9}, distuv.F{D1: 4, D2: 9}, []float64{0.2, 1, 5}},
		{TDist{3}, distuv.StudentsT{Mu: 0, Sigma: 1, Nu: 3}, []float64{-4, -0.5, 0, 2}},
		{WeibullDist{1.5, 2}, distuv.Weibull{K: 1.5, Lambda: 2}, []float64{0.3, 2, 6}},
		{LogNormalDist{0.2, 0.7}, distuv.LogNormal{Mu: 0.2, Sigma: 0.7}, []float64{0.5, 1, 4}},
		{LaplaceDist{1, 2}, distuv.Laplace{Mu: 1, Scale: 2}, []float64{-3, 1, 4}},
		{ExponentialDist{3}, distuv.Exponential{Rate: 3}, []float64{0.01, 0.5, 2}},
		{UniformDist{-1, 3}, distuv.Uniform{Min: -1, Max: 3}, []float64{-0.5, 0, 2.9}},
		{NormalDist{1, 2}, distuv.Normal{Mu: 1, Sigma: 2}, []float64{-3, 1, 4}},
	} {
		name := fmt.Sprintf("%T%+v", test.d, test.d)
		for _, x := range test.xs {
			if got, want := test.d.PDF(x), test.gd.Prob(x); !scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-6) {
				t.Errorf("%s.PDF(%v) = %v; gonum %v", name, x, got, want)
			}
			if got, want := test.d.CDF(x), test.gd.CDF(x); !scalar.EqualWithinAbsOrRel(got, want, 1e-10, 1e-6) {
				t.Errorf("%s.CDF(%v) = %v; gonum %v", name, x, got, want)
			}
		}
		q, ok := test.gd.(interface{ Quantile(p float64) float64 })
		if !ok {
			continue
		}
		for _, p := range []float64{0.05, 0.5, 0.95} {
			got, err := test.d.InvCDF(p)
			require.NoError(t, err)
			if want := q.Quantile(p); !scalar.EqualWithinAbsOrRel(got, want, 1e-8, 1e-6) {
				t.Errorf("%s.InvCDF(%v) = %v; gonum %v", name, p, got, want)
			}
		}
	}
}

func TestDomainErrors(t *testing.T) {
	err := ChiSquareDist{0.5}.Validate()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewGenerator(ChiSquareDist{0.5}, testSource(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewGenerator(GammaDist{-1, 1}, testSource(1))
	assert.ErrorIs(t, err, ErrInvalidArgument)

	derr := recoverDomainError(func() { ChiSquareDist{3}.PDF(0) })
	require.NotNil(t, derr, "ChiSquareDist.PDF(0) did not panic with a DomainError")
	assert.ErrorIs(t, derr, ErrInvalidArgument)
	assert.Equal(t, 0.0, derr.X)

	emp := mustEmpirical([]float64{1, 1}, LinearInterpolation)
	derr = recoverDomainError(func() { emp.PDF(1.5) })
	require.NotNil(t, derr, "EmpiricalDist.PDF(1.5) did not panic with a DomainError")
	assert.Equal(t, "EmpiricalDist.PDF", derr.Op)
	assert.NotPanics(t, func() { emp.PDF(1) })
}

func TestBetaHelpers(t *testing.T) {
	m, err := BetaMean(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, m, 1e-12)

	m, err = BetaMode(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3, m, 1e-12)

	s, err := BetaStdDev(2, 3)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, s, 1e-12)

	for _, test := range []struct {
		alpha, beta, mode float64
	}{
		{0.5, 2, 0},
		{2, 0.5, 1},
		{1, 1, 0.5},
	} {
		m, err := BetaMode(test.alpha, test.beta)
		require.NoError(t, err)
		assert.Equal(t, test.mode, m, "BetaMode(%v, %v)", test.alpha, test.beta)
	}

	_, err = BetaMean(-1, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "alpha")
	_, err = BetaStdDev(1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "beta")

	m, err = BetaDist{2, 3}.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 0.4, m, 1e-12)
}

func TestEmpiricalDist(t *testing.T) {
	_, err := NewEmpiricalDist(nil, LinearInterpolation)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewEmpiricalDist([]float64{0, 0}, LinearInterpolation)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewEmpiricalDist([]float64{1, -1}, NoInterpolation)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	lin := mustEmpirical([]float64{1, 3}, LinearInterpolation)
	testFunc(t, "linear.CDF", lin.CDF,
		map[float64]float64{
			-1:   0,
			0:    0,
			0.25: 0.125,
			0.5:  0.25,
			0.75: 0.625,
			1:    1,
		})
	testFunc(t, "linear.PDF", lin.PDF,
		map[float64]float64{
			0.25: 0.5,
			0.75: 1.5,
		})

	step := mustEmpirical([]float64{1, 3}, NoInterpolation)
	testFunc(t, "step.CDF", step.CDF,
		map[float64]float64{
			-1:   0,
			0:    0.25,
			0.25: 0.25,
			0.5:  1,
			1:    1,
		})
	x, err := step.InvCDF(0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.5, x)
	x, err = lin.InvCDF(0.625)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, x, 1e-12)
}

func TestPointMass(t *testing.T) {
	for _, d := range []Dist{
		BreitWignerDist{Mean: 3},
		BreitWignerMeanSquaredDist{Mean: 3},
	} {
		g, err := NewGenerator(d, testSource(3))
		require.NoError(t, err)
		for _, x := range g.NextN(10) {
			assert.Equal(t, 3.0, x)
		}
		assert.Equal(t, 0.0, d.CDF(2.9))
		assert.Equal(t, 1.0, d.CDF(3))
	}
}

func TestBreitWignerCut(t *testing.T) {
	d := BreitWignerDist{Mean: 1, Gamma: 2, Cut: 0.5}
	g, err := NewGenerator(d, testSource(4))
	require.NoError(t, err)
	for _, x := range g.NextN(1000) {
		if x < 0.5 || x > 1.5 {
			t.Fatalf("sample %v outside [0.5, 1.5]", x)
		}
	}
	assert.InDelta(t, 0.5, d.CDF(1), 1e-12)
	assert.Equal(t, 0.0, d.PDF(2))

	// -Inf and non-positive cuts leave the distribution uncut.
	uncut := BreitWignerDist{Mean: 1, Gamma: 2, Cut: math.Inf(-1)}
	assert.InDelta(t, CauchyDist{1, 1}.CDF(3), uncut.CDF(3), 1e-12)
	for _, cut := range []float64{0, -2} {
		d := BreitWignerDist{Mean: 1, Gamma: 2, Cut: cut}
		assert.Equal(t, uncut.CDF(3), d.CDF(3), "Cut=%v", cut)
		assert.Equal(t, uncut.PDF(40), d.PDF(40), "Cut=%v", cut)
	}
}

func TestBurrFallback(t *testing.T) {
	d := BurrDist{R: 2, Nr: 11}
	assert.Equal(t, 2, d.Type())
	assert.Equal(t, BurrDist{R: 2, Nr: 2}.CDF(0.7), d.CDF(0.7))
}

func TestBurrXIIInversion(t *testing.T) {
	d := BurrDist{R: 2, K: 3, Nr: 12}
	s := d.Compile()
	for _, u := range []float64{0.1, 0.25, 0.5, 0.9} {
		x := s.Sample(constSource(u))
		assert.InDelta(t, math.Exp(math.Log(math.Pow(u, -1/d.R)-1)/d.K), x, 1e-12, "u=%v", u)
		assert.InDelta(t, 1-u, d.CDF(x), 1e-12, "u=%v", u)
	}
	lo, hi := d.Bounds()
	assert.Less(t, lo, hi)
	assert.InDelta(t, 1e-4, d.CDF(lo), 1e-9)
	assert.InDelta(t, 1-1e-4, d.CDF(hi), 1e-9)
}

func TestLambdaSign(t *testing.T) {
	d := LambdaDist{-0.2, -0.2}
	x, err := d.InvCDF(0.9)
	require.NoError(t, err)
	assert.Greater(t, x, 0.0)
	x, err = d.InvCDF(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0, x, 1e-12)
}

func TestVonMisesSupport(t *testing.T) {
	g, err := NewGenerator(VonMisesDist{0.1}, testSource(5))
	require.NoError(t, err)
	for _, x := range g.NextN(1000) {
		if x < -math.Pi || x > math.Pi {
			t.Fatalf("sample %v outside [-π, π]", x)
		}
	}
	assert.InDelta(t, 0.5, VonMisesDist{3}.CDF(0), 1e-9)
}

func TestVonMisesNormalization(t *testing.T) {
	for _, k := range []float64{0.5, 3, 20, 200} {
		d := VonMisesDist{k}
		assert.InDelta(t, 1, integrate(d.PDF, -math.Pi, math.Pi), 1e-12, "K=%v", k)
		assert.InDelta(t, 0.5, d.CDF(0), 1e-12, "K=%v CDF(0)", k)
		for _, x := range []float64{0.1, 0.5, 2} {
			assert.InDelta(t, 1, d.CDF(x)+d.CDF(-x), 1e-12, "K=%v CDF(%v)+CDF(-%v)", k, x, x)
		}
	}
}

func TestHyperbolicCDF(t *testing.T) {
	for _, d := range []HyperbolicDist{{1, -0.3}, {2, 0.5}, {5, 4.9}} {
		lo, hi := d.Bounds()
		assert.InDelta(t, 1, integrate(d.PDF, lo, d.Mode())+integrate(d.PDF, d.Mode(), hi), 1e-12, "%+v", d)

		prev := 0.0
		for i := 0; i <= 2000; i++ {
			x := lo + (hi-lo)*float64(i)/2000
			c := d.CDF(x)
			if c < prev {
				t.Fatalf("%+v: CDF(%v) = %v; less than previous %v", d, x, c, prev)
			}
			prev = c
		}
		assert.InDelta(t, 1, d.CDF(math.Nextafter(hi, lo)), 1e-12, "%+v", d)
	}
}

func TestHyperbolicSampler(t *testing.T) {
	d := HyperbolicDist{2, 0.5}
	s := d.Compile().(*hyperbolicSampler)
	// The body spans the points where the density falls by e.
	assert.InDelta(t, -s.samb-1, d.h(s.mpa), 1e-12)
	assert.InDelta(t, -s.samb-1, d.h(s.mmb), 1e-12)
	assert.Less(t, s.mmb, d.Mode())
	assert.Greater(t, s.mpa, d.Mode())
	assert.InDelta(t, 1, s.pmr+(s.hl/s.s), 1e-12)

	// Each iteration draws exactly two uniforms.
	src := &countingSource{src: testSource(9)}
	const n = 2000
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = s.Sample(src)
	}
	assert.Zero(t, src.n%2)
	assert.Less(t, src.n, 2*n*2)

	below := 0
	for _, x := range xs {
		if x <= 0 {
			below++
		}
	}
	assert.InDelta(t, d.CDF(0), float64(below)/n, 0.04)
}
