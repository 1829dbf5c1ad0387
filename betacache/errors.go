// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package betacache

import "github.com/pkg/errors"

var (
	// ErrCorruptCacheData indicates a table holding an entry that is
	// not a probability.
	ErrCorruptCacheData = errors.New("betacache: corrupt cache data")
	// ErrInvalidConfig indicates a Config that cannot describe a
	// table.
	ErrInvalidConfig = errors.New("betacache: invalid config")
)
