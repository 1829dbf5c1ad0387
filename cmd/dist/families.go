// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/moremath/distrib/stats"
	"github.com/pkg/errors"
)

// A family describes how to construct a distribution from named
// parameters.
type family struct {
	required []string
	defaults map[string]float64
	new      func(p map[string]float64) stats.Dist
}

var families = map[string]family{
	"beta": {
		required: []string{"alpha", "beta"},
		new: func(p map[string]float64) stats.Dist {
			return stats.BetaDist{Alpha: p["alpha"], Beta: p["beta"]}
		},
	},
	"breitwigner": {
		required: []string{"mean", "gamma"},
		defaults: map[string]float64{"cut": 0},
		new: func(p map[string]float64) stats.Dist {
			return stats.BreitWignerDist{Mean: p["mean"], Gamma: p["gamma"], Cut: p["cut"]}
		},
	},
	"breitwignermeansquared": {
		required: []string{"mean", "gamma"},
		defaults: map[string]float64{"cut": 0},
		new: func(p map[string]float64) stats.Dist {
			return stats.BreitWignerMeanSquaredDist{Mean: p["mean"], Gamma: p["gamma"], Cut: p["cut"]}
		},
	},
	"burr": {
		required: []string{"r"},
		defaults: map[string]float64{"k": 1, "nr": 2},
		new: func(p map[string]float64) stats.Dist {
			return stats.BurrDist{R: p["r"], K: p["k"], Nr: int(p["nr"])}
		},
	},
	"cauchy": {
		defaults: map[string]float64{"location": 0, "scale": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.CauchyDist{Location: p["location"], Scale: p["scale"]}
		},
	},
	"chisquare": {
		required: []string{"v"},
		new: func(p map[string]float64) stats.Dist {
			return stats.ChiSquareDist{V: p["v"]}
		},
	},
	"erlang": {
		required: []string{"variance", "mean"},
		new: func(p map[string]float64) stats.Dist {
			return stats.ErlangDist{Variance: p["variance"], Mean: p["mean"]}
		},
	},
	"exponential": {
		defaults: map[string]float64{"lambda": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.ExponentialDist{Lambda: p["lambda"]}
		},
	},
	"exppower": {
		required: []string{"tau"},
		new: func(p map[string]float64) stats.Dist {
			return stats.ExponentialPowerDist{Tau: p["tau"]}
		},
	},
	"f": {
		required: []string{"d1", "d2"},
		new: func(p map[string]float64) stats.Dist {
			return stats.FDist{D1: p["d1"], D2: p["d2"]}
		},
	},
	"gamma": {
		required: []string{"alpha"},
		defaults: map[string]float64{"beta": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.GammaDist{Alpha: p["alpha"], Beta: p["beta"]}
		},
	},
	"hyperbolic": {
		required: []string{"alpha"},
		defaults: map[string]float64{"beta": 0},
		new: func(p map[string]float64) stats.Dist {
			return stats.HyperbolicDist{Alpha: p["alpha"], Beta: p["beta"]}
		},
	},
	"lambda": {
		required: []string{"l3", "l4"},
		new: func(p map[string]float64) stats.Dist {
			return stats.LambdaDist{L3: p["l3"], L4: p["l4"]}
		},
	},
	"laplace": {
		defaults: map[string]float64{"mu": 0, "b": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.LaplaceDist{Mu: p["mu"], B: p["b"]}
		},
	},
	"logistic": {
		defaults: map[string]float64{"mu": 0, "s": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.LogisticDist{Mu: p["mu"], S: p["s"]}
		},
	},
	"lognormal": {
		defaults: map[string]float64{"mu": 0, "sigma": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.LogNormalDist{Mu: p["mu"], Sigma: p["sigma"]}
		},
	},
	"normal": {
		defaults: map[string]float64{"mu": 0, "sigma": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.NormalDist{Mu: p["mu"], Sigma: p["sigma"]}
		},
	},
	"powerlaw": {
		required: []string{"alpha"},
		defaults: map[string]float64{"cut": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.PowerLawDist{Alpha: p["alpha"], Cut: p["cut"]}
		},
	},
	"tstudent": {
		required: []string{"v"},
		new: func(p map[string]float64) stats.Dist {
			return stats.TDist{V: p["v"]}
		},
	},
	"triangular": {
		defaults: map[string]float64{"min": -1, "mode": 0, "max": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.TriangularDist{Min: p["min"], Mode: p["mode"], Max: p["max"]}
		},
	},
	"uniform": {
		defaults: map[string]float64{"a": 0, "b": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.UniformDist{A: p["a"], B: p["b"]}
		},
	},
	"vonmises": {
		required: []string{"k"},
		new: func(p map[string]float64) stats.Dist {
			return stats.VonMisesDist{K: p["k"]}
		},
	},
	"weibull": {
		required: []string{"k"},
		defaults: map[string]float64{"lambda": 1},
		new: func(p map[string]float64) stats.Dist {
			return stats.WeibullDist{K: p["k"], Lambda: p["lambda"]}
		},
	},
}

// familyNames returns the sorted names of all families.
func familyNames() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// newDist constructs the named distribution from "key=value"
// parameter assignments and validates it.
func newDist(name string, assignments []string) (stats.Dist, error) {
	f, ok := families[strings.ToLower(name)]
	if !ok {
		return nil, errors.Errorf("unknown distribution %q; known: %s", name, strings.Join(familyNames(), ", "))
	}
	p := make(map[string]float64)
	for k, v := range f.defaults {
		p[k] = v
	}
	known := func(k string) bool {
		_, ok := f.defaults[k]
		for _, r := range f.required {
			ok = ok || r == k
		}
		return ok
	}
	for _, a := range assignments {
		k, v, ok := strings.Cut(a, "=")
		if !ok {
			return nil, errors.Errorf("parameter %q is not of the form key=value", a)
		}
		k = strings.ToLower(strings.TrimSpace(k))
		if !known(k) {
			return nil, errors.Errorf("%s has no parameter %q", name, k)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", k)
		}
		p[k] = x
	}
	for _, r := range f.required {
		if _, ok := p[r]; !ok {
			return nil, errors.Errorf("%s requires parameter %q", name, r)
		}
	}
	d := f.new(p)
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
