// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gamestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"

	"github.com/stacklok/gameshelf/logger"
	"github.com/stacklok/gameshelf/validation/appname"
)

const recordExt = ".json"

// Store provides durable storage of installed game records, one JSON file per
// record in a single registry directory.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given registry directory.
// The directory is created lazily by the first Save.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// RegistryRoot returns the registry directory within the given data home directory.
// This is the injectable, testable form. For the standard XDG location, use DefaultRegistryRoot.
func RegistryRoot(dataHome string) string {
	return filepath.Join(dataHome, "gameshelf", "installed")
}

// DefaultRegistryRoot returns the default registry directory using XDG base directory conventions.
func DefaultRegistryRoot() string {
	return RegistryRoot(xdg.DataHome)
}

// Root returns the registry directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the record file path for appName.
func (s *Store) Path(appName string) string {
	return filepath.Join(s.root, appName+recordExt)
}

// Save writes rec, replacing any existing record with the same app name.
// The record is written to a temporary file in the registry directory and
// renamed into place, so readers never observe a partial file.
func (s *Store) Save(rec Record) error {
	if err := appname.Validate(rec.AppName); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding record %s: %w", rec.AppName, err)
	}
	if err := validateRecordBytes(data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidRecord, rec.AppName, err)
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("%w: creating registry directory %s: %w", ErrIO, s.root, err)
	}

	if err := writeFileAtomic(s.root, s.Path(rec.AppName), data); err != nil {
		return fmt.Errorf("%w: writing record %s: %w", ErrIO, rec.AppName, err)
	}

	return nil
}

// Load reads the record for appName.
// It returns ErrNotFound if no record exists and ErrCorruptRecord if the
// record file cannot be decoded.
func (s *Store) Load(appName string) (Record, error) {
	if err := appname.Validate(appName); err != nil {
		return Record{}, err
	}

	return s.loadFile(s.Path(appName), appName)
}

// List returns every decodable record in the registry, sorted by app name.
// Files that cannot be decoded are skipped so that one bad record does not hide
// the rest of the library. A missing registry directory yields an empty list.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: reading registry directory %s: %w", ErrIO, s.root, err)
	}

	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != recordExt || strings.HasPrefix(name, ".") {
			continue
		}

		rec, err := s.loadFile(filepath.Join(s.root, name), strings.TrimSuffix(name, recordExt))
		if err != nil {
			logger.Debugw("skipping unreadable game record", "file", name, "error", err)
			continue
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].AppName < records[j].AppName
	})

	return records, nil
}

// Delete removes the record for appName. Deleting a missing record is not an error.
func (s *Store) Delete(appName string) error {
	if err := appname.Validate(appName); err != nil {
		return err
	}

	if err := os.Remove(s.Path(appName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: deleting record %s: %w", ErrIO, appName, err)
	}
	return nil
}

// loadFile reads and decodes one record file whose name implies appName.
func (s *Store) loadFile(path, appName string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, fmt.Errorf("%w: %s", ErrNotFound, appName)
		}
		return Record{}, fmt.Errorf("%w: reading record %s: %w", ErrIO, appName, err)
	}

	rec, err := decodeRecord(data)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %s: %w", ErrCorruptRecord, appName, err)
	}

	// The file name is the key; a record claiming another name is not trusted.
	if rec.AppName != appName {
		return Record{}, fmt.Errorf("%w: %s: file holds record for %q", ErrCorruptRecord, appName, rec.AppName)
	}

	return rec, nil
}

// writeFileAtomic writes data to a temporary file in dir and renames it to path.
func writeFileAtomic(dir, path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
