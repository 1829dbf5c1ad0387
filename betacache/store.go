// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package betacache

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Encode writes t to w as zstd-compressed msgpack.
func (t *Table) Encode(w io.Writer) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return errors.Wrap(err, "creating zstd writer")
	}
	if err := msgpack.NewEncoder(zw).Encode(t); err != nil {
		zw.Close()
		return errors.Wrap(err, "encoding table")
	}
	return errors.Wrap(zw.Close(), "flushing zstd writer")
}

// DecodeTable reads a table written by Encode.
func DecodeTable(r io.Reader) (*Table, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "creating zstd reader")
	}
	defer zr.Close()
	t := new(Table)
	if err := msgpack.NewDecoder(zr).Decode(t); err != nil {
		return nil, errors.Wrap(err, "decoding table")
	}
	return t, nil
}

// Save writes t to path. The file is written under a temporary name
// and renamed into place, so concurrent readers never see a partial
// table.
func (t *Table) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating cache directory")
	}
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.Wrap(err, "creating temporary table file")
	}
	if err := t.Encode(f); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return errors.Wrap(err, "closing table file")
	}
	if err := os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		return errors.Wrap(err, "renaming table file")
	}
	return nil
}

// LoadTable reads the table at path and checks that it was generated
// for c and holds only probabilities.
func LoadTable(path string, c Config) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening table file")
	}
	defer f.Close()
	t, err := DecodeTable(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if err := t.check(c); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return t, nil
}
