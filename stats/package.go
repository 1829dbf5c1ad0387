// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements continuous probability distributions with
// density, cumulative distribution, quantile and sampling operations.
//
// Distributions are small immutable values with exported parameters,
// such as GammaDist{Alpha: 2, Beta: 1}. Their PDF, CDF and InvCDF
// methods are pure functions of the parameters and may be used from
// any number of goroutines.
//
// Sampling is split into two steps. Compile computes the per-parameter
// setup constants of a distribution's sampling algorithm and returns a
// Sampler that is only valid for those parameters. A Generator ties a
// distribution, its compiled Sampler and a Source of uniform deviates
// together, and recompiles whenever the distribution is replaced.
//
// The package also estimates distributions from data: KDE builds a
// kernel density estimate and QuantileCI bounds a sample quantile
// using the binomial distribution of order statistics.
package stats // import "github.com/moremath/distrib/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
