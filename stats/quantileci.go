// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// QuantileCIResult is a confidence interval for a quantile expressed
// in terms of order statistics.
type QuantileCIResult struct {
	// Quantile is the quantile argument to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of the interval,
	// which is at least the requested level.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics that
	// bound the interval. They may fall outside [1, N], in which
	// case that bound is infinite.
	LoOrder, HiOrder int

	// Ambiguous reports that the interval shifted right by one
	// order statistic has the same confidence.
	Ambiguous bool
}

// Interval returns the bounds of the confidence interval in terms of
// the values in xs, which must have length q.N. xs is sorted if it is
// not already.
func (q QuantileCIResult) Interval(xs []float64) (lo, hi float64, err error) {
	if len(xs) != q.N {
		return nan, nan, invalidf("QuantileCIResult.Interval: sample size %d, want %d", len(xs), q.N)
	}
	if !sort.Float64sAreSorted(xs) {
		xs = append([]float64(nil), xs...)
		sort.Float64s(xs)
	}
	lo, hi = math.Inf(-1), math.Inf(1)
	if q.LoOrder >= 1 {
		lo = xs[q.LoOrder-1]
	}
	if q.HiOrder <= len(xs) {
		hi = xs[q.HiOrder-1]
	}
	return lo, hi, nil
}

// quantileCIApproxThreshold is the sample size above which QuantileCI
// uses the normal approximation. It is a variable for testing.
var quantileCIApproxThreshold = 30

// QuantileCI returns the confidence interval of the q'th quantile of
// a sample of size n at the given confidence level.
//
// The number of sample values below the population quantile follows
// BinomialDist{n, q}, so the interval is the narrowest band of that
// distribution holding at least the requested confidence. Ties are
// broken toward the left.
func QuantileCI(n int, q, confidence float64) (QuantileCIResult, error) {
	if err := (BinomialDist{N: n, P: q}).Validate(); err != nil {
		return QuantileCIResult{}, err
	}
	if !(confidence > 0) {
		return QuantileCIResult{}, invalidf("QuantileCI: confidence %v", confidence)
	}

	res := QuantileCIResult{Quantile: q, N: n}
	var l, r int
	switch {
	case confidence >= 1:
		res.Confidence, l, r = 1, 0, n+1
	case n <= quantileCIApproxThreshold:
		l, r = res.exact(confidence)
	default:
		l, r = res.approx(confidence)
	}
	res.LoOrder, res.HiOrder = max(l, 0), min(r, n+1)
	return res, nil
}

// exact grows the band [l, r) outward from the mode of the binomial
// distribution, taking the larger neighbor each step, which works
// because the PMF decreases monotonically away from the mode.
func (res *QuantileCIResult) exact(confidence float64) (l, r int) {
	samp := BinomialDist{N: res.N, P: res.Quantile}

	// Of two equal modes, start with the lower one.
	x := int(math.Ceil(float64(samp.N+1)*samp.P) - 1)
	if samp.P == 0 {
		x = 0
	}
	accum := samp.PMF(float64(x))
	l, r = x, x+1
	lp, rp := samp.PMF(float64(l-1)), samp.PMF(float64(r))
	res.Ambiguous = rp == accum

	// Stop if there is nothing left to accumulate, which guards
	// against rounding in accum.
	for accum < confidence && (lp > 0 || rp > 0) {
		res.Ambiguous = lp == rp
		if lp >= rp {
			accum += lp
			l--
			lp = samp.PMF(float64(l - 1))
		} else {
			accum += rp
			r++
			rp = samp.PMF(float64(r))
		}
	}
	res.Confidence = accum
	return l, r
}

// approx finds the band using the normal approximation of the
// binomial distribution with a continuity correction.
func (res *QuantileCIResult) approx(confidence float64) (l, r int) {
	norm := BinomialDist{N: res.N, P: res.Quantile}.NormalApprox()
	// The argument lies in [0, 0.5), so InvCDF cannot fail.
	l1, _ := norm.InvCDF((1 - confidence) / 2)
	r1 := 2*norm.Mu - l1

	// Point k of the binomial covers [k-0.5, k+0.5] of the normal,
	// so round [l1, r1] out to half-integers and recover k.
	floorInt := func(x float64) int { return int(math.Floor(x)) }
	l = floorInt(math.Floor(l1-0.5)+0.5) + 1
	r = floorInt(math.Ceil(r1-0.5)+0.5) + 1

	// Pr[l <= X < r] under the continuity correction.
	band := func(l, r int) float64 {
		return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
	}
	res.Confidence = band(l, r)

	// The band is symmetric. Drop its right end if that still
	// meets the confidence level.
	if biased := band(l, r-1); biased >= confidence && biased < res.Confidence {
		res.Confidence, res.Ambiguous = biased, true
		r--
	}

	// The normal has infinite support, so a band covering every
	// order statistic falls short of 1 by rounding.
	if l <= 0 && r >= res.N+1 {
		res.Confidence, res.Ambiguous = 1, false
	}
	return l, r
}
