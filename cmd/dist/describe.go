// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/DataDog/sketches-go/ddsketch"
	"github.com/moremath/distrib/stats"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func (a *app) describeCmd() *cobra.Command {
	var hist bool
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Describe the distribution of newline-separated numbers read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := readInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(xs) == 0 {
				return errors.New("no input")
			}
			return describe(cmd.OutOrStdout(), xs, !hist)
		},
	}
	cmd.Flags().BoolVar(&hist, "hist", false, "plot a histogram instead of a kernel density estimate")
	return cmd
}

func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		xs = append(xs, value)
	}
	return xs, errors.Wrap(scanner.Err(), "reading input")
}

// describe prints summary statistics, quantiles and a density plot of
// xs. If smooth is set, the density is a kernel density estimate.
func describe(w io.Writer, xs []float64, smooth bool) error {
	if err := printSummary(w, xs); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return fprintPDF(w, xs, smooth)
}

func printSummary(w io.Writer, xs []float64) error {
	mean, variance := stat.MeanVariance(xs, nil)
	if len(xs) < 2 {
		variance = 0
	}
	fmt.Fprintf(w, "N %d  sum %.6g  mean %.6g", len(xs), floats.Sum(xs), mean)
	if floats.Min(xs) > 0 {
		fmt.Fprintf(w, "  gmean %.6g", stat.GeometricMean(xs, nil))
	}
	fmt.Fprintf(w, "  std dev %.6g  variance %.6g\n", math.Sqrt(variance), variance)
	fmt.Fprintln(w)

	// Quartiles and tails.
	sketch, err := ddsketch.NewDefaultDDSketch(0.01)
	if err != nil {
		return errors.Wrap(err, "creating sketch")
	}
	for _, x := range xs {
		if err := sketch.Add(x); err != nil {
			return errors.Wrapf(err, "adding %v to sketch", x)
		}
	}
	labels := map[int]string{0: "min", 50: "median", 100: "max"}
	for _, p := range []int{0, 1, 5, 25, 50, 75, 95, 99, 100} {
		label, ok := labels[p]
		if !ok {
			label = fmt.Sprintf("%d%%ile", p)
		}
		var v float64
		switch p {
		case 0:
			v = floats.Min(xs)
		case 100:
			v = floats.Max(xs)
		default:
			if v, err = sketch.GetValueAtQuantile(float64(p) / 100); err != nil {
				return errors.Wrapf(err, "%s", label)
			}
		}
		fmt.Fprintf(w, "%8s %.6g\n", label, v)
	}

	ci, err := stats.QuantileCI(len(xs), 0.5, 0.95)
	if err != nil {
		return err
	}
	lo, hi, err := ci.Interval(xs)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nmedian in [%.6g, %.6g] with %.3g%% confidence\n", lo, hi, 100*ci.Confidence)
	return nil
}

// fprintPDF prints a density estimate of xs as a bar chart.
func fprintPDF(w io.Writer, xs []float64, smooth bool) error {
	const bins, width = 20, 50
	lo, hi := floats.Min(xs), floats.Max(xs)
	if !(hi > lo) {
		return nil
	}

	var pdf func(x float64) float64
	if smooth {
		kde, err := stats.KDE{}.From(xs, nil)
		if err != nil {
			return err
		}
		lo, hi = kde.Bounds()
		pdf = kde.PDF
	} else {
		counts := make([]float64, bins)
		for _, x := range xs {
			i := int(float64(bins) * (x - lo) / (hi - lo))
			if i == bins {
				i--
			}
			counts[i]++
		}
		hist, err := stats.NewEmpiricalDist(counts, stats.LinearInterpolation)
		if err != nil {
			return err
		}
		// Rescale the histogram from [0, 1] to the data range.
		pdf = func(x float64) float64 {
			return hist.PDF((x-lo)/(hi-lo)) / (hi - lo)
		}
	}

	ys := make([]float64, bins)
	for i := range ys {
		ys[i] = pdf(lo + (hi-lo)*(float64(i)+0.5)/bins)
	}
	top := floats.Max(ys)
	for i, y := range ys {
		x := lo + (hi-lo)*(float64(i)+0.5)/bins
		bar := int(math.Round(width * y / top))
		fmt.Fprintf(w, "%12.6g %-*s %.4g\n", x, width, strings.Repeat("*", bar), y)
	}
	return nil
}
