// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dist describes, samples and evaluates probability
// distributions.
//
//	dist describe < numbers
//	dist sample gamma --param alpha=2 --param beta=1 -n 1000 --summary
//	dist eval beta --param alpha=2 --param beta=3 --cdf 0.25 0.5
//	dist betacache query 2 3 0.5
//
// Configuration is read from --config, or $HOME/.dist.yaml, and from
// environment variables prefixed DIST_, such as DIST_CACHE_DIR.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the state shared by all subcommands.
type app struct {
	v       *viper.Viper
	log     *zap.Logger
	cfgFile string
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:           "dist",
		Short:         "Describe, sample and evaluate probability distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.log.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.dist.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log progress to stderr")
	cobra.CheckErr(a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose")))

	root.AddCommand(a.describeCmd(), a.sampleCmd(), a.evalCmd(), a.betacacheCmd())
	return root
}

// init reads the configuration and builds the logger.
func (a *app) init() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".dist")
	}
	a.v.SetEnvPrefix("DIST")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return errors.Wrap(err, "reading config")
		}
	}

	var cfg zap.Config
	if a.v.GetBool("verbose") {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	a.log = log
	return nil
}
