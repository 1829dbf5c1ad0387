// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KDE represents options for constructing a Gaussian kernel density
// estimate.
//
// Kernel density estimation constructs a smooth estimate ƒ̂(x) of an
// unknown distribution ƒ(x) from a sample of it. Unlike a histogram,
// it needs no bin size, but the result depends deeply on the
// bandwidth.
//
// The zero value of KDE is a reasonable default configuration.
type KDE struct {
	// Bandwidth is the standard deviation of the kernel. If it is
	// zero, it is estimated from the data with BandwidthScott.
	Bandwidth float64

	// [BoundaryMin, BoundaryMax) is the support of the estimate.
	// The density is reflected at finite boundaries. If both are
	// 0, the support is unbounded. For a half-bounded support, set
	// BoundaryMin to -Inf or BoundaryMax to +Inf.
	BoundaryMin, BoundaryMax float64
}

// BandwidthSilverman implements Silverman's rule of thumb. It is fast
// but assumes the data is roughly normal. weights may be nil.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(xs, weights []float64) float64 {
	return 1.06 * stat.StdDev(xs, weights) * math.Pow(totalWeight(xs, weights), -1.0/5)
}

// BandwidthScott implements Scott's rule, which is robust to outliers:
// it uses the smaller of the standard deviation and IQR/1.349, a robust
// estimate of a Gaussian's standard deviation. weights may be nil.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(xs, weights []float64) float64 {
	sx := append([]float64(nil), xs...)
	var sw []float64
	if weights != nil {
		sw = append([]float64(nil), weights...)
	}
	stat.SortWeighted(sx, sw)
	iqr := stat.Quantile(0.75, stat.Empirical, sx, sw) - stat.Quantile(0.25, stat.Empirical, sx, sw)
	hScale := 1.06 * math.Pow(totalWeight(xs, weights), -1.0/5)
	return hScale * math.Min(stat.StdDev(xs, weights), iqr/1.349)
}

func totalWeight(xs, weights []float64) float64 {
	if weights == nil {
		return float64(len(xs))
	}
	return floats.Sum(weights)
}

// From returns the kernel density estimate of the sample xs with
// optional weights.
func (k KDE) From(xs, weights []float64) (Dist, error) {
	if len(xs) == 0 {
		return nil, invalidf("KDE: empty sample")
	}
	if weights != nil {
		if len(weights) != len(xs) {
			return nil, invalidf("KDE: %d weights for %d values", len(weights), len(xs))
		}
		if floats.Min(weights) < 0 {
			return nil, invalidf("KDE: negative weight")
		}
	}
	total := totalWeight(xs, weights)
	if !(total > 0) {
		return nil, invalidf("KDE: total weight %v", total)
	}

	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(xs, weights)
		if !(h > 0) {
			h = BandwidthSilverman(xs, weights)
		}
	}

	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	d := &kdeDist{
		kernel:  NormalDist{0, h},
		xs:      xs,
		weights: weights,
		total:   total,
		min:     min,
		max:     max,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

type kdeDist struct {
	kernel      NormalDist
	xs, weights []float64
	total       float64
	min, max    float64 // support
}

func (kde *kdeDist) Validate() error {
	if !(kde.kernel.Sigma > 0) || math.IsInf(kde.kernel.Sigma, 0) {
		return invalidf("KDE: bandwidth %v", kde.kernel.Sigma)
	}
	if !(kde.total > 0) {
		return invalidf("KDE: total weight %v", kde.total)
	}
	if !(kde.min < kde.max) {
		return invalidf("KDE: empty support [%v, %v)", kde.min, kde.max)
	}
	return nil
}

// eval evaluates kernel function f shifted to each sample point at x
// and returns their weighted mean.
func (kde *kdeDist) eval(f func(float64) float64, x float64) float64 {
	ys := make([]float64, len(kde.xs))
	for i, xi := range kde.xs {
		ys[i] = f(x - xi)
	}
	if kde.weights == nil {
		return floats.Sum(ys) / kde.total
	}
	return floats.Dot(ys, kde.weights) / kde.total
}

func (kde *kdeDist) PDF(x float64) float64 {
	if x < kde.min || x >= kde.max {
		return 0
	}
	y := func(x float64) float64 { return kde.eval(kde.kernel.PDF, x) }
	switch {
	case math.IsInf(kde.min, -1) && math.IsInf(kde.max, 1):
		return y(x)
	case math.IsInf(kde.max, 1):
		return y(x) + y(2*kde.min-x)
	case math.IsInf(kde.min, -1):
		return y(x) + y(2*kde.max-x)
	}
	d := 2 * (kde.max - kde.min)
	w := 2 * (x - kde.min)
	return series(func(n float64) float64 {
		// Images at or above x.
		return y(x+n*d) + y(x+n*d-w)
	}) + series(func(n float64) float64 {
		// Images below x.
		return y(x-(n+1)*d) + y(x-(n+1)*d-w)
	})
}

func (kde *kdeDist) CDF(x float64) float64 {
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}
	y := func(x float64) float64 { return kde.eval(kde.kernel.CDF, x) }
	switch {
	case math.IsInf(kde.min, -1) && math.IsInf(kde.max, 1):
		return y(x)
	case math.IsInf(kde.max, 1):
		return y(x) - y(2*kde.min-x)
	case math.IsInf(kde.min, -1):
		return y(x) + (1 - y(2*kde.max-x))
	}
	d := 2 * (kde.max - kde.min)
	w := 2 * (x - kde.min)
	return clamp01(series(func(n float64) float64 {
		// Windows at or above x-w.
		return y(x+n*d) - y(x+n*d-w)
	}) + series(func(n float64) float64 {
		// Windows below x-w.
		return y(x-(n+1)*d) - y(x-(n+1)*d-w)
	}))
}

// InvCDF inverts the CDF by bisection.
func (kde *kdeDist) InvCDF(p float64) (float64, error) {
	if err := checkProb("KDE", p); err != nil {
		return nan, err
	}
	switch p {
	case 0:
		return kde.min, nil
	case 1:
		return kde.max, nil
	}
	lo, hi := kde.bracket(p, p)
	return bisect(func(x float64) float64 { return kde.CDF(x) - p }, lo, hi, 0), nil
}

// bracket returns an interval within the support whose CDF spans
// [lowY, highY].
func (kde *kdeDist) bracket(lowY, highY float64) (lo, hi float64) {
	lo, hi = floats.Min(kde.xs), floats.Max(kde.xs)
	lo, hi = lo-kde.kernel.Sigma, hi+kde.kernel.Sigma
	for lo > kde.min && kde.CDF(lo) > lowY {
		lo -= hi - lo
	}
	for hi < kde.max && kde.CDF(hi) < highY {
		hi += hi - lo
	}
	return math.Max(lo, kde.min), math.Min(hi, kde.max)
}

func (kde *kdeDist) Bounds() (low, high float64) {
	// Find the points holding the middle 99% of the weight.
	const lowY, highY, tolerance = 0.005, 0.995, 0.001
	lo, hi := kde.bracket(lowY, highY)
	tol := tolerance * (hi - lo)
	low = bisect(func(x float64) float64 { return kde.CDF(x) - lowY }, lo, hi, tol)
	high = bisect(func(x float64) float64 { return kde.CDF(x) - highY }, lo, hi, tol)

	// Add 10% margins on each side.
	width := high - low
	low, high = low-0.1*width, high+0.1*width
	return math.Max(low, kde.min), math.Min(high, kde.max)
}

// Compile returns a smoothed bootstrap sampler: it picks a sample
// point by weight, adds kernel noise, and folds the result back into
// the support.
func (kde *kdeDist) Compile() Sampler {
	s := &kdeSampler{
		xs:    kde.xs,
		noise: kde.kernel.Compile().(*normalSampler),
		min:   kde.min,
		max:   kde.max,
	}
	if kde.weights != nil {
		s.cum = make([]float64, len(kde.weights))
		floats.CumSum(s.cum, kde.weights)
	}
	return s
}

type kdeSampler struct {
	xs    []float64
	cum   []float64 // cumulative weights; nil if unweighted
	noise *normalSampler
	min   float64
	max   float64
}

func (s *kdeSampler) Sample(src Source) float64 {
	n := len(s.xs)
	var i int
	if s.cum == nil {
		i = int(src.Float64() * float64(n))
	} else {
		u := src.Float64() * s.cum[n-1]
		i = sort.Search(n, func(j int) bool { return s.cum[j] > u })
	}
	if i >= n {
		i = n - 1
	}
	x := s.xs[i] + s.noise.Sample(src)
	for x < s.min || x > s.max {
		if x < s.min {
			x = 2*s.min - x
		} else {
			x = 2*s.max - x
		}
	}
	return x
}

// series returns the sum of f(n) for n = 0, 1, 2, ..., stopping once a
// term no longer changes the sum.
func series(f func(float64) float64) float64 {
	y, yp := 0.0, 1.0
	for n := 0.0; y != yp; n++ {
		yp = y
		y += f(n)
	}
	return y
}

// bisect returns a root of f bracketed by [lo, hi] to within tol. If
// tol is 0, it bisects to full precision. f may be discontinuous.
func bisect(f func(float64) float64, lo, hi, tol float64) float64 {
	flo := f(lo)
	for hi-lo > tol {
		mid := lo + (hi-lo)/2
		if mid == lo || mid == hi {
			break
		}
		if fm := f(mid); (fm < 0) == (flo < 0) {
			lo, flo = mid, fm
		} else {
			hi = mid
		}
	}
	return lo + (hi-lo)/2
}
