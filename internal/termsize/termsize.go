// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package termsize reports the geometry of the controlling terminal.
package termsize

import (
	"os"

	"golang.org/x/term"
)

const (
	fallbackCols = 80
	fallbackRows = 24
)

// Size returns the terminal dimensions in columns and rows. When stdout
// is not a terminal (pipes, CI) it falls back to 80x24 so dialog sizing
// stays deterministic.
func Size() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return fallbackCols, fallbackRows
	}
	return cols, rows
}
