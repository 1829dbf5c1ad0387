// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package betacache

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/moremath/distrib/stats"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Initialization states of a Cache.
const (
	stateIdle int32 = iota
	stateBuilding
	stateReady
	stateFailed
)

// Queries below minLoss, or with alpha below minAlpha and beta above
// maxBetaSmallAlpha, are always computed exactly.
const (
	minLoss           = 0.01
	minAlpha          = 0.01
	maxBetaSmallAlpha = 5
)

// A Cache answers Beta CDF queries. It is safe for concurrent use.
type Cache struct {
	cfg    Config
	layout layout
	log    *zap.Logger

	state atomic.Int32
	table atomic.Pointer[Table]
	done  chan struct{} // closed when initialization finishes
	err   error         // initialization error, set before done is closed
}

// An Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger a Cache reports table loads, builds and
// fallbacks to. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

// New returns a Cache for cfg. It does not build or load the table;
// that happens on first use or in Warm.
func New(cfg Config, opts ...Option) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Cache{
		cfg:    cfg,
		layout: newLayout(cfg),
		log:    zap.NewNop(),
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.ForceExact {
		// There is nothing to initialize.
		close(c.done)
	}
	return c, nil
}

// Config returns the configuration of c.
func (c *Cache) Config() Config {
	return c.cfg
}

// Ready reports whether the table of c is loaded.
func (c *Cache) Ready() bool {
	return c.table.Load() != nil
}

// Wait blocks until the initialization started by a query or by Warm
// finishes, and returns its error. It returns ctx.Err() if ctx is done
// first. Wait does not itself start initialization. With ForceExact,
// Wait returns nil immediately.
func (c *Cache) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Warm loads or builds the table now and waits for it. If another
// goroutine is already initializing the table, Warm waits for that.
func (c *Cache) Warm(ctx context.Context) error {
	if c.cfg.ForceExact {
		return nil
	}
	if c.state.CompareAndSwap(stateIdle, stateBuilding) {
		c.init(ctx)
	}
	return c.Wait(ctx)
}

// start begins initialization in the background unless it has
// already begun.
func (c *Cache) start() {
	if c.state.CompareAndSwap(stateIdle, stateBuilding) {
		go c.init(context.Background())
	}
}

// init loads the persisted table or builds and persists a new one.
// It runs exactly once per Cache.
func (c *Cache) init(ctx context.Context) {
	t, err := c.loadOrBuild(ctx)
	if err != nil {
		c.log.Error("beta table initialization failed; using exact computation", zap.Error(err))
		c.err = err
		c.state.Store(stateFailed)
	} else {
		c.table.Store(t)
		c.state.Store(stateReady)
	}
	close(c.done)
}

func (c *Cache) loadOrBuild(ctx context.Context) (*Table, error) {
	path := c.cfg.Path()
	if path != "" {
		t, err := LoadTable(path, c.cfg)
		if err == nil {
			c.log.Info("loaded beta table", zap.String("path", path), zap.Int("entries", t.Entries()))
			return t, nil
		}
		c.log.Info("regenerating beta table", zap.String("path", path), zap.Error(err))
	}

	c.log.Info("building beta table", zap.String("config", c.cfg.FileName()))
	start := time.Now()
	t, err := Build(ctx, c.cfg)
	if err != nil {
		return nil, err
	}
	c.log.Info("built beta table",
		zap.Duration("duration", time.Since(start)), zap.Int("entries", t.Entries()))

	if path != "" {
		if err := t.Save(path); err != nil {
			c.log.Warn("persisting beta table failed", zap.String("path", path), zap.Error(err))
		} else {
			c.log.Info("persisted beta table", zap.String("path", path))
		}
	}
	return t, nil
}

// DistributionFunction returns the CDF of Beta(alpha, beta) at loss.
//
// The result is interpolated from the table when the table is loaded
// and every interpolation step moves the result by at most the
// configured Tolerance; otherwise it is computed exactly. The first
// query starts initialization of the table in the background.
//
// An interpolated result outside [0, 1] is discarded and the query is
// computed exactly.
//
// For a > b, DistributionFunction(a, b, x) is exactly
// 1 - DistributionFunction(b, a, 1-x).
func (c *Cache) DistributionFunction(alpha, beta, loss float64) (float64, error) {
	if err := (stats.BetaDist{Alpha: alpha, Beta: beta}).Validate(); err != nil {
		return math.NaN(), err
	}
	t := c.table.Load()
	if t == nil && !c.cfg.ForceExact {
		c.start()
	}

	inverted := false
	if alpha > beta {
		alpha, beta, loss, inverted = beta, alpha, 1-loss, true
	}
	p, ok := c.lookup(t, alpha, beta, loss)
	if ok && (p < 0 || p > 1) {
		c.log.Warn("interpolated probability outside [0, 1]; using exact computation",
			zap.Float64("alpha", alpha), zap.Float64("beta", beta), zap.Float64("loss", loss), zap.Float64("p", p))
		ok = false
	}
	if !ok {
		p = exact(alpha, beta, loss)
		if p < 0 || p > 1 {
			return math.NaN(), errors.Wrapf(ErrCorruptCacheData, "Beta(%g, %g).CDF(%g) = %v", alpha, beta, loss, p)
		}
	}
	if inverted {
		p = 1 - p
	}
	return p, nil
}

func exact(alpha, beta, loss float64) float64 {
	return stats.BetaDist{Alpha: alpha, Beta: beta}.CDF(loss)
}

// lookup interpolates the CDF of Beta(alpha, beta) at loss from t, for
// alpha <= beta. It returns false if the query must be computed
// exactly. The guards on small loss and small alpha apply to this
// canonical query, after any swap of alpha and beta.
func (c *Cache) lookup(t *Table, alpha, beta, loss float64) (float64, bool) {
	if t == nil {
		return 0, false
	}
	if loss < minLoss || (alpha < minAlpha && beta > maxBetaSmallAlpha) {
		return 0, false
	}
	l := c.layout
	ai, ok1 := l.index(alpha)
	bi, ok2 := l.index(beta)
	li, ok3 := l.lossIndex(loss)
	if !ok1 || !ok2 || !ok3 {
		return 0, false
	}

	base := t.at(ai, bi, li)
	p := base
	// One linear step along each axis toward the neighboring node.
	step := func(j int, frac float64, ok bool, at func(int) float64) bool {
		if !ok {
			return false
		}
		if frac == 0 {
			return true
		}
		d := (at(j) - base) * frac
		if math.Abs(d) > c.cfg.Tolerance {
			return false
		}
		p += d
		return true
	}
	norm := l.normalizer(alpha, beta)
	aj, af, aok := l.neighbor(ai, alpha, norm)
	if !step(aj, af, aok, func(j int) float64 { return t.at(j, bi, li) }) {
		return 0, false
	}
	bj, bf, bok := l.neighbor(bi, beta, norm)
	if !step(bj, bf, bok, func(j int) float64 { return t.at(ai, j, li) }) {
		return 0, false
	}
	lj, lf, lok := l.lossNeighbor(li, loss)
	if !step(lj, lf, lok, func(j int) float64 { return t.at(ai, bi, j) }) {
		return 0, false
	}
	return p, true
}
