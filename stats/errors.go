// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument indicates a parameter or argument outside
	// the domain of a distribution.
	ErrInvalidArgument = errors.New("stats: invalid argument")
	// ErrNotSupported indicates an operation that a distribution
	// deliberately does not implement, such as a quantile function
	// with no coded closed form.
	ErrNotSupported = errors.New("stats: operation not supported")
)

// invalidf returns an error wrapping ErrInvalidArgument.
func invalidf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

// notSupported returns an error wrapping ErrNotSupported for the
// named operation.
func notSupported(op string) error {
	return errors.Wrap(ErrNotSupported, op)
}

// A DomainError is the panic value raised by a density function whose
// argument lies outside the domain the distribution accepts.
type DomainError struct {
	Op string
	X  float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("stats: %s: argument %v outside domain", e.Op, e.X)
}

func (e *DomainError) Unwrap() error {
	return ErrInvalidArgument
}
