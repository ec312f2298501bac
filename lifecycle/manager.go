// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/stacklok/gameshelf/auth"
	"github.com/stacklok/gameshelf/catalog"
	"github.com/stacklok/gameshelf/gamestore"
	"github.com/stacklok/gameshelf/logger"
	"github.com/stacklok/gameshelf/validation/appname"
)

// DefaultVersion is recorded when the manifest does not carry a version.
const DefaultVersion = "unknown"

// Option configures a Manager.
type Option func(*Manager)

// WithLauncher replaces the process launcher. The default is ProcessLauncher.
func WithLauncher(l Launcher) Option {
	return func(m *Manager) {
		m.launcher = l
	}
}

// Manager sequences install, launch and uninstall of games across the catalog,
// the local filesystem and the record store.
type Manager struct {
	store       Store
	creds       Credentials
	catalog     Catalog
	launcher    Launcher
	installRoot string

	mkdirAll  func(path string, perm os.FileMode) error
	removeAll func(path string) error
}

// New creates a Manager that installs games under installRoot.
func New(store Store, creds Credentials, cat Catalog, installRoot string, opts ...Option) *Manager {
	m := &Manager{
		store:       store,
		creds:       creds,
		catalog:     cat,
		launcher:    ProcessLauncher{},
		installRoot: installRoot,
		mkdirAll:    os.MkdirAll,
		removeAll:   os.RemoveAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// InstallRoot returns the directory games are installed under.
func (m *Manager) InstallRoot() string {
	return m.installRoot
}

// Authenticate stores tok for later catalog calls.
func (m *Manager) Authenticate(tok auth.Token) error {
	return m.creds.SetToken(tok)
}

// IsAuthenticated reports whether a valid catalog token is available.
func (m *Manager) IsAuthenticated() bool {
	return m.creds.IsAuthenticated()
}

// ListLibrary returns the remote game library, unmodified.
func (m *Manager) ListLibrary(ctx context.Context) ([]catalog.Game, error) {
	tok, err := m.token()
	if err != nil {
		return nil, err
	}

	return m.catalog.Games(ctx, tok)
}

// ListInstalled returns every readable installed game record.
func (m *Manager) ListInstalled() ([]gamestore.Record, error) {
	return m.store.List()
}

// Info returns the installed game record for appName.
func (m *Manager) Info(appName string) (gamestore.Record, error) {
	return m.store.Load(appName)
}

// Install registers appName as installed under <install root>/<appName>.
//
// Only the install directory and the record are created; no game content is
// downloaded. Nothing is written unless a token is available and the catalog
// resolves a manifest, and no record is written unless the directory exists.
// Installing an already installed game replaces its record.
func (m *Manager) Install(ctx context.Context, appName string) (gamestore.Record, error) {
	if err := appname.Validate(appName); err != nil {
		return gamestore.Record{}, err
	}

	tok, err := m.token()
	if err != nil {
		return gamestore.Record{}, err
	}

	logger.Infow("starting installation", "app_name", appName)

	manifest, err := m.catalog.InstallManifest(ctx, tok, appName)
	if err != nil {
		return gamestore.Record{}, err
	}
	if manifest == nil {
		return gamestore.Record{}, fmt.Errorf("%w: empty manifest for %s", ErrCatalog, appName)
	}
	logger.Debugw("resolved install manifest", "app_name", appName, "manifest_id", manifest.ID)

	rec, err := recordFromManifest(appName, manifest)
	if err != nil {
		return gamestore.Record{}, err
	}

	root, err := filepath.Abs(m.installRoot)
	if err != nil {
		return gamestore.Record{}, fmt.Errorf("%w: resolving install root %s: %w", ErrIO, m.installRoot, err)
	}
	rec.InstallPath = filepath.Join(root, appName)

	_, statErr := os.Stat(rec.InstallPath)
	created := errors.Is(statErr, fs.ErrNotExist)

	if err := m.mkdirAll(rec.InstallPath, 0o755); err != nil {
		return gamestore.Record{}, fmt.Errorf("%w: creating install directory %s: %w", ErrIO, rec.InstallPath, err)
	}
	logger.Debugw("created install directory", "app_name", appName, "path", rec.InstallPath)

	if err := m.store.Save(rec); err != nil {
		if created {
			// Only removes the directory if nothing was put in it.
			_ = os.Remove(rec.InstallPath)
		}
		return gamestore.Record{}, err
	}

	logger.Infow("game installation record created",
		"app_name", rec.AppName, "version", rec.AppVersion, "path", rec.InstallPath)
	return rec, nil
}

// Launch starts the installed executable of appName with the install directory
// as its working directory and returns the process id. It does not wait for
// the game to exit.
func (m *Manager) Launch(appName string) (int, error) {
	rec, err := m.store.Load(appName)
	if err != nil {
		return 0, err
	}

	exe := rec.ExecutablePath()
	info, err := os.Stat(exe)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, fmt.Errorf("%w: %s: %w", ErrExecutableMissing, exe, err)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: inspecting executable %s: %w", ErrIO, exe, err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("%w: %s is a directory", ErrExecutableMissing, exe)
	}

	logger.Infow("launching game", "app_name", rec.AppName, "title", rec.AppTitle)

	pid, err := m.launcher.Start(exe, rec.InstallPath)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrLaunchFailed, exe, err)
	}

	logger.Debugw("game process started", "app_name", rec.AppName, "pid", pid)
	return pid, nil
}

// Uninstall removes the install directory of appName and then its record.
// If the directory cannot be removed the record is kept so the uninstall can
// be retried.
func (m *Manager) Uninstall(appName string) error {
	rec, err := m.store.Load(appName)
	if err != nil {
		return err
	}

	if err := m.removeInstallDir(rec.InstallPath); err != nil {
		logger.Warnw("uninstall failed, keeping record", "app_name", rec.AppName, "error", err)
		return err
	}

	if err := m.store.Delete(rec.AppName); err != nil {
		return err
	}

	logger.Infow("uninstalled game", "app_name", rec.AppName, "title", rec.AppTitle)
	return nil
}

func (m *Manager) removeInstallDir(path string) error {
	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: inspecting install directory %s: %w", ErrIO, path, err)
	}

	clean := filepath.Clean(path)
	if !filepath.IsAbs(clean) || filepath.Dir(clean) == clean {
		return fmt.Errorf("%w: refusing to remove install path %q", ErrIO, path)
	}

	if err := m.removeAll(clean); err != nil {
		return fmt.Errorf("%w: removing install directory %s: %w", ErrIO, path, err)
	}
	return nil
}

// token returns a usable catalog token; every failure wraps ErrAuthRequired.
func (m *Manager) token() (auth.Token, error) {
	tok, err := m.creds.GetToken()
	if err != nil {
		if errors.Is(err, ErrAuthRequired) {
			return auth.Token{}, err
		}
		return auth.Token{}, fmt.Errorf("%w: %w", ErrAuthRequired, err)
	}
	return tok, nil
}

// recordFromManifest builds the record for appName from the best metadata the
// manifest offers. InstallPath is left for the caller.
func recordFromManifest(appName string, manifest *catalog.Manifest) (gamestore.Record, error) {
	rec := gamestore.Record{
		AppName:    appName,
		AppTitle:   manifest.AppTitle,
		AppVersion: manifest.AppVersion,
		Executable: manifest.Executable,
	}

	if rec.AppTitle == "" {
		rec.AppTitle = appName
	}
	if rec.AppVersion == "" {
		rec.AppVersion = DefaultVersion
	}
	if rec.Executable == "" {
		rec.Executable = DefaultExecutable(appName)
	}

	if !filepath.IsLocal(rec.Executable) {
		return gamestore.Record{}, fmt.Errorf("%w: manifest executable %q escapes the install directory",
			ErrCatalog, manifest.Executable)
	}
	rec.Executable = filepath.Clean(rec.Executable)

	return rec, nil
}

// DefaultExecutable returns the executable name assumed when the manifest has none.
func DefaultExecutable(appName string) string {
	if runtime.GOOS == "windows" {
		return appName + ".exe"
	}
	return appName
}
