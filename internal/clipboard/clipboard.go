// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clipboard writes text to the system clipboard, falling back
// to external clipboard tools when the native backend is unavailable.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

var ErrUnavailable = errors.New("clipboard unavailable")

var initOnce sync.Once
var initErr error

// WriteText places text on the system clipboard.
func WriteText(text string) error {
	if err := writeNative(text); err == nil {
		return nil
	}
	return writeExternal(text)
}

func writeNative(text string) error {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	if initErr != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, initErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}

// writeExternal shells out to whichever clipboard tool is installed.
// Wayland first, then X11.
func writeExternal(text string) error {
	for _, tool := range [][]string{
		{"wl-copy"},
		{"xclip", "-selection", "clipboard"},
		{"xsel", "--clipboard", "--input"},
	} {
		path, err := exec.LookPath(tool[0])
		if err != nil {
			continue
		}
		cmd := exec.Command(path, tool[1:]...)
		cmd.Stdin = strings.NewReader(text)
		if err := cmd.Run(); err == nil {
			return nil
		}
	}
	return ErrUnavailable
}
