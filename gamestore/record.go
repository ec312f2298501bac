// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package gamestore

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed data/record.schema.json
var embeddedSchemaFS embed.FS

const recordSchemaFile = "data/record.schema.json"

// Record is the persisted metadata describing one installed game.
// Records are values: an update is a Save of a full replacement record.
type Record struct {
	// AppName is the stable unique identifier of the game and the registry key.
	AppName string `json:"app_name"`

	// AppTitle is the human-readable display name.
	AppTitle string `json:"app_title"`

	// AppVersion is the version string of the installed build.
	AppVersion string `json:"app_version"`

	// InstallPath is the absolute location of the game's root directory.
	InstallPath string `json:"install_path"`

	// Executable is the launchable binary, relative to InstallPath.
	Executable string `json:"executable"`
}

// ExecutablePath returns the executable joined onto the install path.
func (r Record) ExecutablePath() string {
	return filepath.Join(r.InstallPath, r.Executable)
}

// decodeRecord validates raw record bytes against the record schema and decodes them.
func decodeRecord(data []byte) (Record, error) {
	if err := validateRecordBytes(data); err != nil {
		return Record{}, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}

// validateRecordBytes validates raw record JSON against the embedded record schema.
func validateRecordBytes(data []byte) error {
	schemaData, err := embeddedSchemaFS.ReadFile(recordSchemaFile)
	if err != nil {
		return fmt.Errorf("failed to read embedded schema %s: %w", recordSchemaFile, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaData),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("record schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return errors.New("record schema validation failed: " + strings.Join(msgs, "; "))
}
