// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/moremath/distrib/mathx"
	"gonum.org/v1/gonum/stat/combin"
)

// BinomialDist is the distribution of the number of successes in N
// independent trials that each succeed with probability P.
//
// BinomialDist is discrete, so it has a PMF rather than a PDF and does
// not implement Dist. It is the sampling distribution of order
// statistics used by QuantileCI.
type BinomialDist struct {
	// N is the number of trials. N >= 0.
	N int

	// P is the success probability of each trial. 0 <= P <= 1.
	P float64
}

func (d BinomialDist) Validate() error {
	if d.N < 0 || !(d.P >= 0 && d.P <= 1) {
		return invalidf("BinomialDist: N=%d, P=%v", d.N, d.P)
	}
	return nil
}

// maxExactBinomialN is the largest N whose binomial coefficients fit
// exactly in an int.
const maxExactBinomialN = 60

// PMF returns the probability of exactly floor(k) successes.
func (d BinomialDist) PMF(k float64) float64 {
	k = math.Floor(k)
	n := float64(d.N)
	if k < 0 || k > n {
		return 0
	}
	ki := int(k)
	if d.N <= maxExactBinomialN {
		return float64(combin.Binomial(d.N, ki)) * math.Pow(d.P, k) * math.Pow(1-d.P, n-k)
	}
	switch d.P {
	case 0, 1:
		// The log form is 0 * -Inf here.
		if (d.P == 0 && ki == 0) || (d.P == 1 && ki == d.N) {
			return 1
		}
		return 0
	}
	return math.Exp(combin.LogGeneralizedBinomial(n, k) + k*math.Log(d.P) + (n-k)*math.Log1p(-d.P))
}

// CDF returns the probability of floor(k) or fewer successes.
func (d BinomialDist) CDF(k float64) float64 {
	k = math.Floor(k)
	if k < 0 {
		return 0
	} else if k >= float64(d.N) {
		return 1
	}
	return mathx.BetaInc(1-d.P, float64(d.N)-k, k+1)
}

func (d BinomialDist) Bounds() (float64, float64) {
	return 0, float64(d.N)
}

func (d BinomialDist) Mean() float64 {
	return float64(d.N) * d.P
}

func (d BinomialDist) Variance() float64 {
	return float64(d.N) * d.P * (1 - d.P)
}

// NormalApprox returns the normal approximation of d.
//
// The caller must apply a continuity correction: b.PMF(k) maps to
// n.CDF(k+0.5) - n.CDF(k-0.5) and b.CDF(k) maps to n.CDF(k+0.5).
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{Mu: d.Mean(), Sigma: math.Sqrt(d.Variance())}
}
