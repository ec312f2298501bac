// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package app implements the gameshelf command line.
package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stacklok/gameshelf/auth"
	"github.com/stacklok/gameshelf/catalog"
	"github.com/stacklok/gameshelf/config"
	"github.com/stacklok/gameshelf/env"
	"github.com/stacklok/gameshelf/gamestore"
	"github.com/stacklok/gameshelf/lifecycle"
	"github.com/stacklok/gameshelf/logger"
)

// Version is set at build time.
var Version = "dev"

type app struct {
	envReader  env.Reader
	configFlag string
	debug      bool

	cfg        *config.Config
	configPath string
	tokens     *auth.FileStore
	manager    *lifecycle.Manager
}

// NewRootCmd builds the gameshelf command tree.
func NewRootCmd(envReader env.Reader) *cobra.Command {
	a := &app{envReader: envReader}

	root := &cobra.Command{
		Use:           "gameshelf",
		Short:         "Manage locally installed games from a remote catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&a.configFlag, "config", "", "config file (default $XDG_CONFIG_HOME/gameshelf/config.yaml)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		a.newAuthCmd(),
		a.newListCmd(),
		a.newInstallCmd(),
		a.newLaunchCmd(),
		a.newUninstallCmd(),
		a.newInfoCmd(),
		a.newStatusCmd(),
		a.newConfigCmd(),
	)

	return root
}

// Execute runs the command tree with the process environment.
func Execute(ctx context.Context) error {
	return NewRootCmd(&env.OSReader{}).ExecuteContext(ctx)
}

func (a *app) setup() error {
	cfg, path, err := config.Load(a.envReader, a.configFlag)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.configPath = path

	var opts []logger.Option
	if cfg.Log.File != "" {
		opts = append(opts, logger.WithFile(logger.FileOptions{
			Path:       cfg.Log.File,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		}))
	}
	logger.InitializeWithOptions(a.envReader, logger.DebugFlag(a.debug || cfg.Log.Debug), opts...)
	logger.Debugw("configuration loaded", "path", path)

	var cat lifecycle.Catalog = unconfiguredCatalog{}
	if cfg.Catalog.URL != "" {
		client, err := catalog.NewHTTPClient(cfg.Catalog.URL,
			catalog.WithTimeout(cfg.Catalog.Timeout),
			catalog.WithRetries(cfg.Catalog.Retries),
			catalog.WithUserAgent("gameshelf/"+Version),
		)
		if err != nil {
			return err
		}
		cat = client
	}

	a.tokens = auth.NewFileStore(cfg.TokenPath())
	a.manager = lifecycle.New(gamestore.NewStore(cfg.RegistryDir()), a.tokens, cat, cfg.InstallDir)
	return nil
}

// unconfiguredCatalog stands in for the catalog when no URL is configured, so
// offline commands keep working and remote ones fail with a clear message.
type unconfiguredCatalog struct{}

func (unconfiguredCatalog) Games(context.Context, auth.Token) ([]catalog.Game, error) {
	return nil, errNoCatalog
}

func (unconfiguredCatalog) InstallManifest(context.Context, auth.Token, string) (*catalog.Manifest, error) {
	return nil, errNoCatalog
}

var errNoCatalog = fmt.Errorf("%w: catalog.url is not configured", catalog.ErrCatalog)
