// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package betacache

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Config describes the table of a Cache.
type Config struct {
	// UpperBound is the largest shape parameter on the fine grid.
	// It must be a whole number and a multiple of Delta.
	UpperBound float64
	// Delta is the fine grid step.
	Delta float64
	// IntegerUpperBound is the largest shape parameter in the
	// table. Shape parameters between UpperBound and
	// IntegerUpperBound are tabulated at integers.
	IntegerUpperBound float64
	// LossDelta is the step of the loss grid over [0, 1].
	LossDelta float64
	// Tolerance bounds each interpolation step. A step that would
	// move the result by more than Tolerance is abandoned for the
	// exact computation.
	Tolerance float64
	// Dir is the directory the table is persisted in. If empty, the
	// table is never persisted or loaded.
	Dir string
	// ForceExact disables the table entirely.
	ForceExact bool
}

// DefaultConfig returns the configuration of the default cache.
func DefaultConfig() Config {
	dir := ""
	if d, err := os.UserCacheDir(); err == nil {
		dir = filepath.Join(d, "distrib")
	}
	return Config{
		UpperBound:        5,
		Delta:             0.1,
		IntegerUpperBound: 50,
		LossDelta:         0.01,
		Tolerance:         0.01,
		Dir:               dir,
	}
}

// isMultiple reports whether x is a whole multiple of step.
func isMultiple(x, step float64) bool {
	n := x / step
	return math.Abs(n-math.Round(n)) < 1e-9*math.Max(1, n)
}

// Validate returns an error wrapping ErrInvalidConfig if c cannot
// describe a table.
func (c Config) Validate() error {
	switch {
	case !(c.Delta > 0):
		return errors.Wrapf(ErrInvalidConfig, "Delta=%v must be positive", c.Delta)
	case !(c.UpperBound >= c.Delta) || !isMultiple(c.UpperBound, 1) || !isMultiple(c.UpperBound, c.Delta):
		return errors.Wrapf(ErrInvalidConfig, "UpperBound=%v must be a whole multiple of Delta=%v", c.UpperBound, c.Delta)
	case !(c.IntegerUpperBound >= c.UpperBound) || !isMultiple(c.IntegerUpperBound, 1) || math.IsInf(c.IntegerUpperBound, 1):
		return errors.Wrapf(ErrInvalidConfig, "IntegerUpperBound=%v must be a whole number at least UpperBound=%v", c.IntegerUpperBound, c.UpperBound)
	case !(c.LossDelta > 0 && c.LossDelta <= 0.5) || !isMultiple(1, c.LossDelta):
		return errors.Wrapf(ErrInvalidConfig, "LossDelta=%v must divide 1", c.LossDelta)
	case !(c.Tolerance > 0):
		return errors.Wrapf(ErrInvalidConfig, "Tolerance=%v must be positive", c.Tolerance)
	}
	return nil
}

// FileName returns the name of the persisted table for c. It encodes
// every parameter that determines the table's contents.
func (c Config) FileName() string {
	return fmt.Sprintf("betacdf-ub%g-d%g-iub%g-ld%g.msgpack.zst",
		c.UpperBound, c.Delta, c.IntegerUpperBound, c.LossDelta)
}

// Path returns the full path of the persisted table, or "" if c has
// no Dir.
func (c Config) Path() string {
	if c.Dir == "" {
		return ""
	}
	return filepath.Join(c.Dir, c.FileName())
}
