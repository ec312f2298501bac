// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides an interface-based abstraction for environment variable
access, so that configuration and logging can be tested without touching the
real process environment.

# Basic Usage

	reader := &env.OSReader{}
	path, ok := reader.LookupEnv("GAMESHELF_CONFIG")

# Testing

A generated mock is available in the mocks sub-package:

	ctrl := gomock.NewController(t)
	mock := mocks.NewMockReader(ctrl)
	mock.EXPECT().Getenv("UNSTRUCTURED_LOGS").Return("false")
*/
package env
