// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/moremath/distrib/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) sampleCmd() *cobra.Command {
	var (
		params  []string
		n       int
		seed    uint64
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "sample FAMILY",
		Short: "Draw variates from a distribution",
		Long: "Draw variates from a distribution, one per line.\n\nFamilies: " +
			strings.Join(familyNames(), ", "),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDist(args[0], params)
			if err != nil {
				return err
			}
			g, err := stats.NewGenerator(d, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
			if err != nil {
				return err
			}
			a.log.Debug("sampling", zap.String("dist", fmt.Sprintf("%+v", d)), zap.Int("n", n), zap.Uint64("seed", seed))
			xs := g.NextN(n)
			w := cmd.OutOrStdout()
			if summary {
				if len(xs) == 0 {
					return nil
				}
				return describe(w, xs, true)
			}
			for _, x := range xs {
				fmt.Fprintf(w, "%.6g\n", x)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "distribution parameter as key=value (repeatable)")
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of variates")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().BoolVar(&summary, "summary", false, "describe the sample instead of printing it")
	return cmd
}
