// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package betacache

import (
	"context"
	"math"
	"os"
	"testing"
	"time"

	"github.com/moremath/distrib/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

// testConfig returns a small table configuration persisted in a
// temporary directory. Its shape axis has fine nodes 0.25, 0.5, ...,
// 2 and integer nodes 3, 4, 5, 6.
func testConfig(t *testing.T) Config {
	return Config{
		UpperBound:        2,
		Delta:             0.25,
		IntegerUpperBound: 6,
		LossDelta:         0.05,
		Tolerance:         0.01,
		Dir:               t.TempDir(),
	}
}

func warmCache(t *testing.T, cfg Config, opts ...Option) *Cache {
	t.Helper()
	c, err := New(cfg, opts...)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	require.NoError(t, c.Warm(ctx))
	require.True(t, c.Ready())
	return c
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	assert.Equal(t, "betacdf-ub5-d0.1-iub50-ld0.01.msgpack.zst", DefaultConfig().FileName())

	for name, mod := range map[string]func(*Config){
		"zero delta":          func(c *Config) { c.Delta = 0 },
		"fractional bound":    func(c *Config) { c.UpperBound = 2.5 },
		"bound not multiple":  func(c *Config) { c.Delta = 0.3 },
		"integer bound below": func(c *Config) { c.IntegerUpperBound = 1 },
		"loss delta":          func(c *Config) { c.LossDelta = 0.03 },
		"tolerance":           func(c *Config) { c.Tolerance = 0 },
	} {
		cfg := testConfig(t)
		mod(&cfg)
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, name)
		_, err := New(cfg)
		assert.ErrorIs(t, err, ErrInvalidConfig, name)
	}
}

func TestLayout(t *testing.T) {
	l := newLayout(testConfig(t))
	assert.Equal(t, 8, l.nFine)
	assert.Equal(t, 12, l.n)
	assert.Equal(t, 21, l.nLoss)

	for v, want := range map[float64]int{
		0.1:  0,
		0.25: 0,
		0.6:  1,
		2:    7,
		2.3:  7,
		2.6:  8,
		4.4:  9,
		6:    11,
	} {
		got, ok := l.index(v)
		if assert.True(t, ok, "index(%v)", v) {
			assert.Equal(t, want, got, "index(%v)", v)
		}
	}
	for _, v := range []float64{0, -1, 6.2, math.NaN()} {
		_, ok := l.index(v)
		assert.False(t, ok, "index(%v)", v)
	}
	assert.Equal(t, 3.0, l.node(8))
	assert.Equal(t, 0.5, l.node(1))

	// Just past UpperBound, the step is toward the first integer
	// node.
	j, frac, ok := l.neighbor(7, 2.3, 1)
	require.True(t, ok)
	assert.Equal(t, 8, j)
	assert.InDelta(t, 0.3, frac, 1e-12)
	j, frac, ok = l.neighbor(7, 2.3, l.delta)
	require.True(t, ok)
	assert.Equal(t, 8, j)
	assert.InDelta(t, 1.2, frac, 1e-12)

	j, frac, ok = l.neighbor(1, 0.45, l.delta)
	require.True(t, ok)
	assert.Equal(t, 0, j)
	assert.InDelta(t, 0.2, frac, 1e-12)

	_, _, ok = l.neighbor(11, 6.2, 1)
	assert.False(t, ok)

	assert.Equal(t, l.delta, l.normalizer(0.5, 1.5))
	assert.Equal(t, l.delta, l.normalizer(0.5, 4))
	assert.Equal(t, 1.0, l.normalizer(3, 4))

	j, frac, ok = l.lossNeighbor(3, 0.16)
	require.True(t, ok)
	assert.Equal(t, 4, j)
	assert.InDelta(t, 0.2, frac, 1e-9)
}

func TestGridNodes(t *testing.T) {
	c := warmCache(t, testConfig(t), WithLogger(zaptest.NewLogger(t)))
	tbl := c.table.Load()
	for _, q := range [][3]float64{
		{0.5, 1.25, 0.35},  // fine grid
		{0.25, 2, 0.1},     // fine grid
		{0.75, 4, 0.2},     // integer beta
		{1.5, 6, 0.05},     // integer beta
		{3, 5, 0.6},        // integer alpha and beta
		{4, 4, 0.5},        // integer alpha and beta
		{4, 0.75, 0.8},     // inverted
		{1.25, 1.25, 0.95}, // fine grid, alpha == beta
	} {
		alpha, beta, x := q[0], q[1], q[2]
		want := stats.BetaDist{Alpha: alpha, Beta: beta}.CDF(x)
		got, err := c.DistributionFunction(alpha, beta, x)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-3, "DistributionFunction(%v, %v, %v)", alpha, beta, x)

		if alpha > beta {
			alpha, beta, x = beta, alpha, 1-x
		}
		p, ok := c.lookup(tbl, alpha, beta, x)
		assert.True(t, ok, "lookup(%v, %v, %v) fell back to exact", alpha, beta, x)
		if ok {
			wantCanon := stats.BetaDist{Alpha: alpha, Beta: beta}.CDF(x)
			assert.InDelta(t, wantCanon, p, 1e-3)
		}
	}
}

func TestOffGrid(t *testing.T) {
	c := warmCache(t, testConfig(t))
	for _, alpha := range []float64{0.3, 0.9, 1.6, 2.2, 3.4, 5.7} {
		for _, beta := range []float64{0.4, 1.1, 1.9, 2.45, 4.6, 5.9} {
			for _, x := range []float64{0.005, 0.13, 0.37, 0.52, 0.78, 0.96} {
				want := stats.BetaDist{Alpha: alpha, Beta: beta}.CDF(x)
				got, err := c.DistributionFunction(alpha, beta, x)
				require.NoError(t, err)
				assert.InDelta(t, want, got, 0.01, "DistributionFunction(%v, %v, %v)", alpha, beta, x)
				assert.True(t, got >= 0 && got <= 1)
			}
		}
	}
}

func TestDefaultConfigRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = t.TempDir()
	c := warmCache(t, cfg)
	for alpha := 0.05; alpha < 8; alpha += 0.35 {
		for beta := 0.05; beta < 8; beta += 0.35 {
			for x := 0.011; x < 1; x += 0.07 {
				got, err := c.DistributionFunction(alpha, beta, x)
				require.NoError(t, err)
				if got < 0 || got > 1 {
					t.Errorf("DistributionFunction(%v, %v, %v) = %v; want in [0, 1]", alpha, beta, x, got)
				}
			}
		}
	}
	for _, q := range [][3]float64{{1.6, 2.45, 0.96}, {0.18, 5.15, 0.543}} {
		got, err := c.DistributionFunction(q[0], q[1], q[2])
		require.NoError(t, err)
		assert.True(t, got >= 0 && got <= 1, "DistributionFunction(%v, %v, %v) = %v", q[0], q[1], q[2], got)
	}
}

func TestOutOfRangeInterpolation(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	c := warmCache(t, testConfig(t), WithLogger(zap.New(core)))
	tbl := c.table.Load()
	l := c.layout

	for _, q := range []struct {
		alpha, beta, x, bad float64
	}{
		{0.5, 1.25, 0.25, 1.2},
		{0.75, 4, 0.75, -0.3},
	} {
		ai, _ := l.index(q.alpha)
		bi, _ := l.index(q.beta)
		li, _ := l.lossIndex(q.x)
		tbl.Data[ai][bi-ai][li] = q.bad

		want := stats.BetaDist{Alpha: q.alpha, Beta: q.beta}.CDF(q.x)
		got, err := c.DistributionFunction(q.alpha, q.beta, q.x)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		// The swapped query reads the same entry.
		got, err = c.DistributionFunction(q.beta, q.alpha, 1-q.x)
		require.NoError(t, err)
		assert.Equal(t, 1-want, got)
	}
	assert.Equal(t, 4, logs.FilterMessage("interpolated probability outside [0, 1]; using exact computation").Len())
}

func TestGuards(t *testing.T) {
	c := warmCache(t, testConfig(t))
	tbl := c.table.Load()
	for _, q := range [][3]float64{
		{0.5, 1.25, 0.005}, // small loss
		{0.005, 5.5, 0.5},  // tiny alpha, large beta
		{2, 7, 0.5},        // beyond IntegerUpperBound
		{0.5, 1.25, 1.2},   // loss outside [0, 1]
	} {
		_, ok := c.lookup(tbl, q[0], q[1], q[2])
		assert.False(t, ok, "lookup(%v, %v, %v)", q[0], q[1], q[2])
		got, err := c.DistributionFunction(q[0], q[1], q[2])
		require.NoError(t, err)
		assert.Equal(t, stats.BetaDist{Alpha: q[0], Beta: q[1]}.CDF(q[2]), got)
	}
}

func TestSymmetry(t *testing.T) {
	exactCfg := testConfig(t)
	exactCfg.ForceExact = true
	exactCache, err := New(exactCfg)
	require.NoError(t, err)

	for _, c := range []*Cache{warmCache(t, testConfig(t)), exactCache} {
		// Each query has alpha > beta, so it is answered through
		// the swapped query (beta, alpha, 1-x).
		for _, q := range [][3]float64{
			{1.25, 0.5, 0.65},
			{2.7, 0.3, 0.58},
			{5, 3, 0.4},
			{1.1, 0.6, 0.9},
			{5.5, 0.005, 0.5},
			{7, 2, 0.75},
		} {
			a, b, x := q[0], q[1], q[2]
			p1, err := c.DistributionFunction(a, b, x)
			require.NoError(t, err)
			p2, err := c.DistributionFunction(b, a, 1-x)
			require.NoError(t, err)
			assert.Equal(t, 1-p2, p1, "(%v, %v, %v)", a, b, x)
		}
	}
}

func TestInvalidShape(t *testing.T) {
	c, err := New(testConfig(t))
	require.NoError(t, err)
	for _, q := range [][2]float64{{-1, 2}, {1, 0}, {math.NaN(), 1}} {
		_, err := c.DistributionFunction(q[0], q[1], 0.5)
		assert.ErrorIs(t, err, stats.ErrInvalidArgument)
	}
	// Rejected queries do not start initialization.
	assert.Equal(t, stateIdle, c.state.Load())
}

func TestForceExact(t *testing.T) {
	cfg := testConfig(t)
	cfg.ForceExact = true
	c, err := New(cfg)
	require.NoError(t, err)
	got, err := c.DistributionFunction(0.5, 1.25, 0.35)
	require.NoError(t, err)
	assert.Equal(t, stats.BetaDist{Alpha: 0.5, Beta: 1.25}.CDF(0.35), got)
	require.NoError(t, c.Warm(context.Background()))
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
	assert.False(t, c.Ready())
	assert.Equal(t, stateIdle, c.state.Load())
}

func TestPersistence(t *testing.T) {
	cfg := testConfig(t)
	c1 := warmCache(t, cfg)
	_, err := os.Stat(cfg.Path())
	require.NoError(t, err, "table was not persisted")

	core, logs := observer.New(zap.InfoLevel)
	c2 := warmCache(t, cfg, WithLogger(zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessage("loaded beta table").Len())
	assert.Equal(t, 0, logs.FilterMessage("building beta table").Len())
	assert.Equal(t, c1.table.Load().Data, c2.table.Load().Data)
}

func TestCorruptFileRegenerates(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.Path(), []byte("not a table"), 0o644))

	core, logs := observer.New(zap.InfoLevel)
	warmCache(t, cfg, WithLogger(zap.New(core)))
	assert.Equal(t, 1, logs.FilterMessage("regenerating beta table").Len())
	assert.Equal(t, 1, logs.FilterMessage("persisted beta table").Len())

	_, err := LoadTable(cfg.Path(), cfg)
	assert.NoError(t, err)
}

func TestCorruptData(t *testing.T) {
	cfg := testConfig(t)
	tbl, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	require.NoError(t, tbl.check(cfg))

	tbl.Data[1][2][3] = -0.5
	require.NoError(t, tbl.Save(cfg.Path()))
	_, err = LoadTable(cfg.Path(), cfg)
	assert.ErrorIs(t, err, ErrCorruptCacheData)

	// A table for a different grid is rejected.
	tbl.Data[1][2][3] = 0.5
	require.NoError(t, tbl.Save(cfg.Path()))
	other := cfg
	other.LossDelta = 0.1
	_, err = LoadTable(cfg.Path(), other)
	assert.Error(t, err)

	// A truncated table is rejected.
	tbl.Data = tbl.Data[:3]
	require.NoError(t, tbl.Save(cfg.Path()))
	_, err = LoadTable(cfg.Path(), cfg)
	assert.ErrorIs(t, err, ErrCorruptCacheData)
}

func TestBuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Build(ctx, testConfig(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConcurrentFirstUse(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	c, err := New(testConfig(t), WithLogger(zap.New(core)))
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 32; i++ {
		alpha := 0.3 + 0.17*float64(i)
		g.Go(func() error {
			for j := 1; j < 50; j++ {
				x := float64(j) / 50
				want := stats.BetaDist{Alpha: alpha, Beta: 2.5}.CDF(x)
				got, err := c.DistributionFunction(alpha, 2.5, x)
				if err != nil {
					return err
				}
				if math.Abs(got-want) > 0.01 {
					t.Errorf("DistributionFunction(%v, 2.5, %v) = %v; want %v", alpha, x, got, want)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	require.NoError(t, c.Wait(ctx))
	assert.True(t, c.Ready())
	assert.Equal(t, 1, logs.FilterMessage("building beta table").Len())
	assert.Equal(t, 1, logs.FilterMessage("built beta table").Len())
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, DefaultConfig(), Default().Config())
}
