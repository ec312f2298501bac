// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package catalog

// Game is one entry of the remote game library.
type Game struct {
	AppName       string `json:"app_name"`
	AppTitle      string `json:"app_title"`
	AppVersion    string `json:"app_version"`
	Namespace     string `json:"namespace,omitempty"`
	CatalogItemID string `json:"catalog_item_id,omitempty"`
}

// Manifest describes what to install for a game. Only ID is guaranteed;
// the remaining fields are filled in when the catalog knows them.
type Manifest struct {
	// ID identifies the build manifest to download.
	ID string `json:"id"`

	// AppTitle is the display name of the build.
	AppTitle string `json:"app_title,omitempty"`

	// AppVersion is the version of the build.
	AppVersion string `json:"app_version,omitempty"`

	// Executable is the launch binary relative to the install directory.
	Executable string `json:"executable,omitempty"`
}
