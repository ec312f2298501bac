// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"os"
	"os/exec"
)

// ProcessLauncher starts games as independent child processes.
// Games inherit the console of gameshelf unless Stdout or Stderr is set.
type ProcessLauncher struct {
	Stdout *os.File
	Stderr *os.File
}

// Start spawns path in dir and releases the process without waiting on it.
func (l ProcessLauncher) Start(path, dir string) (int, error) {
	cmd := exec.Command(path)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = orFile(l.Stdout, os.Stdout)
	cmd.Stderr = orFile(l.Stderr, os.Stderr)

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}

// orFile keeps the child's streams as *os.File so they are handed over
// directly and need no copying goroutine, which a released process never joins.
func orFile(f, fallback *os.File) *os.File {
	if f != nil {
		return f
	}
	return fallback
}
