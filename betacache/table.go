// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package betacache

import (
	"context"
	"math"
	"runtime"

	"github.com/moremath/distrib/stats"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// layout maps shape parameters and losses to table indexes.
//
// Both shape parameters share one axis: fine nodes Delta, 2·Delta,
// ..., UpperBound, followed by integer nodes UpperBound+1, ...,
// IntegerUpperBound. The loss axis has nodes 0, LossDelta, ..., 1.
type layout struct {
	ub, delta, iub, lossDelta float64
	nFine                     int // fine nodes
	n                         int // all shape nodes
	nLoss                     int // loss nodes
}

func newLayout(c Config) layout {
	l := layout{ub: c.UpperBound, delta: c.Delta, iub: c.IntegerUpperBound, lossDelta: c.LossDelta}
	l.nFine = int(math.Round(c.UpperBound / c.Delta))
	l.n = l.nFine + int(math.Round(c.IntegerUpperBound-c.UpperBound))
	l.nLoss = int(math.Round(1/c.LossDelta)) + 1
	return l
}

// node returns the shape parameter at index i.
func (l layout) node(i int) float64 {
	if i < l.nFine {
		return float64(i+1) * l.delta
	}
	return l.ub + float64(i-l.nFine+1)
}

// index returns the index of the node nearest v: the nearest multiple
// of Delta up to UpperBound and the nearest integer beyond it. It
// returns false if v lies outside the table.
func (l layout) index(v float64) (int, bool) {
	switch {
	case !(v > 0) || v > l.iub:
		return 0, false
	case v <= l.ub:
		i := int(math.Round(v/l.delta)) - 1
		if i < 0 {
			i = 0
		}
		return i, true
	}
	r := math.Round(v)
	if r <= l.ub {
		return l.nFine - 1, true
	}
	return l.nFine - 1 + int(r-l.ub), true
}

// neighbor returns the index adjacent to i in the direction of v and
// the interpolation fraction |v - node(i)| / norm. The fraction is 0
// if v is exactly on node i. It returns false if the neighbor would
// lie outside the table.
func (l layout) neighbor(i int, v, norm float64) (j int, frac float64, ok bool) {
	return neighbor(i, v, norm, l.n, l.node)
}

// normalizer returns the divisor of the shape interpolation fractions
// for a query with alpha <= beta: 1 if both lie beyond UpperBound and
// Delta otherwise. With alpha on the fine grid and beta beyond
// UpperBound, the beta fraction is therefore scaled by 1/Delta
// relative to the node spacing of 1.
func (l layout) normalizer(alpha, beta float64) float64 {
	if alpha > l.ub && beta > l.ub {
		return 1
	}
	return l.delta
}

func (l layout) lossNode(i int) float64 {
	return float64(i) * l.lossDelta
}

func (l layout) lossIndex(x float64) (int, bool) {
	if !(x >= 0 && x <= 1) {
		return 0, false
	}
	return int(math.Round(x / l.lossDelta)), true
}

func (l layout) lossNeighbor(i int, x float64) (j int, frac float64, ok bool) {
	return neighbor(i, x, l.lossDelta, l.nLoss, l.lossNode)
}

func neighbor(i int, v, norm float64, n int, node func(int) float64) (int, float64, bool) {
	at := node(i)
	j := i
	switch {
	case v > at:
		j = i + 1
	case v < at:
		j = i - 1
	default:
		return i, 0, true
	}
	if j < 0 || j >= n {
		return 0, 0, false
	}
	return j, math.Abs(v-at) / norm, true
}

// A Table holds Beta CDF values at the nodes of a layout.
//
// Data is triangular: Data[a][b-a][l] is the CDF of Beta(node(a),
// node(b)) at loss node l, for b >= a. Entries with a > b follow from
// the symmetry I_x(a, b) = 1 - I_{1-x}(b, a).
type Table struct {
	UpperBound        float64       `msgpack:"ub"`
	Delta             float64       `msgpack:"d"`
	IntegerUpperBound float64       `msgpack:"iub"`
	LossDelta         float64       `msgpack:"ld"`
	Data              [][][]float64 `msgpack:"data"`
}

// at returns the table entry for shape indexes a and b and loss index
// l, folding a > b onto the stored triangle.
func (t *Table) at(a, b, l int) float64 {
	if a > b {
		row := t.Data[b][a-b]
		return 1 - row[len(row)-1-l]
	}
	return t.Data[a][b-a][l]
}

// matches reports whether t was generated with the grid of c.
func (t *Table) matches(c Config) bool {
	return t.UpperBound == c.UpperBound && t.Delta == c.Delta &&
		t.IntegerUpperBound == c.IntegerUpperBound && t.LossDelta == c.LossDelta
}

// Entries returns the number of stored probabilities.
func (t *Table) Entries() int {
	n := 0
	for _, row := range t.Data {
		for _, col := range row {
			n += len(col)
		}
	}
	return n
}

// check verifies that t has the shape of the layout of c and holds
// only probabilities.
func (t *Table) check(c Config) error {
	if !t.matches(c) {
		return errors.Errorf("table grid (ub=%g, d=%g, iub=%g, ld=%g) does not match config %s",
			t.UpperBound, t.Delta, t.IntegerUpperBound, t.LossDelta, c.FileName())
	}
	l := newLayout(c)
	if len(t.Data) != l.n {
		return errors.Wrapf(ErrCorruptCacheData, "%d alpha rows; want %d", len(t.Data), l.n)
	}
	for a, row := range t.Data {
		if len(row) != l.n-a {
			return errors.Wrapf(ErrCorruptCacheData, "alpha row %d has %d beta columns; want %d", a, len(row), l.n-a)
		}
		for db, col := range row {
			if len(col) != l.nLoss {
				return errors.Wrapf(ErrCorruptCacheData, "entry (%d, %d) has %d losses; want %d", a, a+db, len(col), l.nLoss)
			}
			for i, p := range col {
				if !(p >= 0 && p <= 1) {
					return errors.Wrapf(ErrCorruptCacheData, "entry (%d, %d, %d) = %v", a, a+db, i, p)
				}
			}
		}
	}
	return nil
}

// Build computes the table for c. Rows are computed in parallel. Build
// fails with ErrCorruptCacheData if any computed entry is negative.
func Build(ctx context.Context, c Config) (*Table, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	l := newLayout(c)
	t := &Table{
		UpperBound:        c.UpperBound,
		Delta:             c.Delta,
		IntegerUpperBound: c.IntegerUpperBound,
		LossDelta:         c.LossDelta,
		Data:              make([][][]float64, l.n),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for a := 0; a < l.n; a++ {
		g.Go(func() error {
			row := make([][]float64, l.n-a)
			alpha := l.node(a)
			for db := range row {
				if err := ctx.Err(); err != nil {
					return err
				}
				beta := l.node(a + db)
				d := stats.BetaDist{Alpha: alpha, Beta: beta}
				col := make([]float64, l.nLoss)
				for i := range col {
					p := d.CDF(l.lossNode(i))
					if !(p >= 0) {
						return errors.Wrapf(ErrCorruptCacheData, "Beta(%g, %g).CDF(%g) = %v", alpha, beta, l.lossNode(i), p)
					}
					col[i] = p
				}
				row[db] = col
			}
			t.Data[a] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return t, nil
}
