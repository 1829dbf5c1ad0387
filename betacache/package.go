// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package betacache answers Beta CDF queries from a precomputed table
// with local linear interpolation.
//
// The table covers shape parameters on a fine grid up to an upper
// bound and on integers beyond it, and loss values on a uniform grid
// over [0, 1]. Queries the table cannot answer accurately fall back to
// the exact regularized incomplete beta function, so callers always
// receive a probability within a fixed tolerance of the exact value.
//
// A Cache builds its table lazily on first use, in the background, and
// persists it for later processes. Until the table is ready, queries
// are answered exactly.
package betacache
