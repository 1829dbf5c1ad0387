// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package betacache

import "sync"

var defaultCache = sync.OnceValue(func() *Cache {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
})

// Default returns the process-wide Cache for DefaultConfig.
func Default() *Cache {
	return defaultCache()
}

// DistributionFunction returns the CDF of Beta(alpha, beta) at loss
// using the default Cache.
func DistributionFunction(alpha, beta, loss float64) (float64, error) {
	return Default().DistributionFunction(alpha, beta, loss)
}
