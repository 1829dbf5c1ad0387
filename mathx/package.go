// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special mathematical functions that are
// not implemented by the standard math package.
//
// The regularized incomplete beta and gamma functions and their
// inverses are thin, domain-checked wrappers around
// gonum.org/v1/gonum/mathext. Where mathext panics on out-of-domain
// input, the functions here return NaN instead so that callers can
// treat them as ordinary numeric dependencies.
package mathx // import "github.com/moremath/distrib/mathx"

import "math"

var nan = math.NaN()
var inf = math.Inf(1)
