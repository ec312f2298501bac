// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package auth stores the catalog access token between CLI invocations.
//
// FileStore satisfies the credential capability used by the lifecycle
// manager: GetToken returns an error wrapping ErrAuthRequired whenever no
// unexpired token is stored, so callers can prompt for re-authentication.
package auth
