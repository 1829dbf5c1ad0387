// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) evalCmd() *cobra.Command {
	var (
		params        []string
		pdf, cdf, inv bool
	)
	cmd := &cobra.Command{
		Use:   "eval FAMILY X...",
		Short: "Evaluate the PDF, CDF or inverse CDF of a distribution",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDist(args[0], params)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, arg := range args[1:] {
				x, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return errors.Wrapf(err, "argument %q", arg)
				}
				var y float64
				switch {
				case pdf:
					y = d.PDF(x)
				case cdf:
					y = d.CDF(x)
				case inv:
					if y, err = d.InvCDF(x); err != nil {
						return err
					}
				}
				fmt.Fprintf(w, "%.6g\t%.10g\n", x, y)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "distribution parameter as key=value (repeatable)")
	cmd.Flags().BoolVar(&pdf, "pdf", false, "evaluate the probability density")
	cmd.Flags().BoolVar(&cdf, "cdf", false, "evaluate the cumulative distribution")
	cmd.Flags().BoolVar(&inv, "inv", false, "evaluate the inverse cumulative distribution")
	cmd.MarkFlagsMutuallyExclusive("pdf", "cdf", "inv")
	cmd.MarkFlagsOneRequired("pdf", "cdf", "inv")
	return cmd
}
