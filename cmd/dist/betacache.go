// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/moremath/distrib/betacache"
	"github.com/moremath/distrib/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) betacacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "betacache",
		Short: "Build and query the Beta CDF table",
	}
	def := betacache.DefaultConfig()
	fl := cmd.PersistentFlags()
	fl.String("cache-dir", def.Dir, "directory of the persisted table")
	fl.Float64("upper-bound", def.UpperBound, "largest shape parameter on the fine grid")
	fl.Float64("delta", def.Delta, "fine grid step")
	fl.Float64("integer-upper-bound", def.IntegerUpperBound, "largest shape parameter in the table")
	fl.Float64("loss-delta", def.LossDelta, "loss grid step")
	fl.Float64("tolerance", def.Tolerance, "largest interpolation step")
	fl.Bool("force-exact", false, "never use the table")
	cobra.CheckErr(a.v.BindPFlags(fl))

	build := &cobra.Command{
		Use:   "build",
		Short: "Build the table, or load it if it is already persisted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.cache()
			if err != nil {
				return err
			}
			if err := c.Warm(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "table ready: %s\n", c.Config().Path())
			return nil
		},
	}

	query := &cobra.Command{
		Use:   "query ALPHA BETA X",
		Short: "Evaluate the Beta CDF through the table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [3]float64
			for i, arg := range args {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Wrapf(err, "argument %q", arg)
				}
				v[i] = x
			}
			c, err := a.cache()
			if err != nil {
				return err
			}
			if err := c.Warm(cmd.Context()); err != nil {
				return err
			}
			p, err := c.DistributionFunction(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			exact := stats.BetaDist{Alpha: v[0], Beta: v[1]}.CDF(v[2])
			fmt.Fprintf(cmd.OutOrStdout(), "cached %.10g  exact %.10g  error %.3g\n", p, exact, p-exact)
			return nil
		},
	}

	cmd.AddCommand(build, query)
	return cmd
}

// cache returns a Cache configured from flags, environment and
// config file.
func (a *app) cache() (*betacache.Cache, error) {
	cfg := betacache.Config{
		UpperBound:        a.v.GetFloat64("upper-bound"),
		Delta:             a.v.GetFloat64("delta"),
		IntegerUpperBound: a.v.GetFloat64("integer-upper-bound"),
		LossDelta:         a.v.GetFloat64("loss-delta"),
		Tolerance:         a.v.GetFloat64("tolerance"),
		Dir:               a.v.GetString("cache-dir"),
		ForceExact:        a.v.GetBool("force-exact"),
	}
	return betacache.New(cfg, betacache.WithLogger(a.log))
}
