// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// A Dist is a continuous statistical distribution.
type Dist interface {
	// PDF returns the value of the probability density function
	// of this distribution at x. It returns 0 outside the
	// support of the distribution unless documented otherwise.
	PDF(x float64) float64

	// CDF returns the value of the cumulative distribution
	// function for this distribution at x. This is the integral
	// of the PDF from -inf to x. CDF is monotonically
	// non-decreasing, CDF(-inf) == 0 and CDF(inf) == 1.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// CDF(InvCDF(p)) = p. The value of p must be in [0, 1];
	// otherwise InvCDF returns an error wrapping
	// ErrInvalidArgument. Distributions without a quantile
	// function return ErrNotSupported.
	InvCDF(p float64) (float64, error)

	// Bounds returns reasonable bounds for this distribution's
	// PDF and CDF. The total weight outside of these bounds
	// should be approximately 0.
	Bounds() (float64, float64)

	// Validate returns an error wrapping ErrInvalidArgument if
	// the parameters are outside the domain of the distribution.
	Validate() error

	// Compile precomputes the setup constants of the sampling
	// algorithm for the current parameters. The parameters must
	// be valid.
	Compile() Sampler
}

// A Sampler draws variates for a fixed set of distribution
// parameters. A Sampler may carry mutable state between calls and is
// not safe for concurrent use.
type Sampler interface {
	// Sample draws one variate, consuming one or more uniform
	// deviates from src.
	Sample(src Source) float64
}

// SamplerFunc adapts an ordinary function to the Sampler interface.
type SamplerFunc func(src Source) float64

func (f SamplerFunc) Sample(src Source) float64 {
	return f(src)
}

// CDFBetween returns the probability that a variate of d lies in
// (low, high]. That is, d.CDF(high) - d.CDF(low).
func CDFBetween(d Dist, low, high float64) float64 {
	return d.CDF(high) - d.CDF(low)
}

// PDFEach returns d.PDF(xs[i]) for each i.
func PDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.PDF(x)
	}
	return res
}

// CDFEach returns d.CDF(xs[i]) for each i.
func CDFEach(d Dist, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.CDF(x)
	}
	return res
}

// InvCDFEach returns d.InvCDF(ps[i]) for each i. It stops at the
// first error.
func InvCDFEach(d Dist, ps []float64) ([]float64, error) {
	res := make([]float64, len(ps))
	for i, p := range ps {
		x, err := d.InvCDF(p)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// checkProb returns an error if p is not a probability. op names the
// distribution for the error message.
func checkProb(op string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return invalidf("%s.InvCDF: probability %v not in [0, 1]", op, p)
	}
	return nil
}
