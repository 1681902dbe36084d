// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Invoker runs one dialog request to completion and reports the result.
// The concrete implementation is Whiptail; tests substitute their own.
type Invoker interface {
	Invoke(req Request, opts Options) (Response, error)
}

// Whiptail invokes the whiptail binary. The zero value is usable and
// runs "whiptail" from PATH against the caller's terminal.
type Whiptail struct {
	// Path is the renderer binary. Empty means "whiptail".
	Path string
	// TermEnv, when set, overrides TERM in the child environment for
	// terminals with nonstandard capability strings.
	TermEnv string
	// Stdin and Stdout attach the renderer to a terminal. They default
	// to the process's own; tests point them at a PTY.
	Stdin  io.Reader
	Stdout io.Writer
}

var defaultInvoker Invoker = &Whiptail{}

// argv assembles the full renderer argument vector for a request. The
// bare "--" terminator keeps a text value that starts with a dash from
// being parsed as a flag.
func (w *Whiptail) argv(req Request, opts Options) []string {
	args := opts.args()
	args = append(args, "--"+string(req.Box), "--",
		req.Text, strconv.Itoa(req.Height), strconv.Itoa(req.Width))
	return append(args, req.Extra...)
}

// command prepares the renderer process without starting it. Stdout and
// stdin go to the terminal; stderr is the result channel and must be
// wired by the caller.
func (w *Whiptail) command(req Request, opts Options) *exec.Cmd {
	path := w.Path
	if path == "" {
		path = "whiptail"
	}
	cmd := exec.Command(path, w.argv(req, opts)...)
	if w.TermEnv != "" {
		cmd.Env = append(os.Environ(), "TERM="+w.TermEnv)
	}
	if w.Stdin != nil {
		cmd.Stdin = w.Stdin
	} else {
		cmd.Stdin = os.Stdin
	}
	if w.Stdout != nil {
		cmd.Stdout = w.Stdout
	} else {
		cmd.Stdout = os.Stdout
	}
	return cmd
}

// Invoke spawns the renderer, blocks until it exits, and classifies the
// result. The payload is whatever the renderer wrote to stderr, trimmed
// of the trailing newline. A spawn failure (missing binary, bad
// permissions) is an error; a nonzero exit is a Response, not an error —
// classification is the widget's job.
func (w *Whiptail) Invoke(req Request, opts Options) (Response, error) {
	cmd := w.command(req, opts)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf

	err := cmd.Run()
	code := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Response{}, fmt.Errorf("whiptui: run renderer: %w", err)
		}
		code = exitErr.ExitCode()
		if code < 0 {
			return Response{}, fmt.Errorf("whiptui: renderer terminated by signal: %w", err)
		}
	}
	value := strings.TrimRight(errBuf.String(), "\r\n")
	return Response{Code: code, Outcome: classify(code), Value: value}, nil
}

// show runs one request through an invoker and routes the response
// through the widget's reaction table.
func show(inv Invoker, req Request, opts Options, table reactions) (Response, error) {
	resp, err := inv.Invoke(req, opts)
	if err != nil {
		return Response{}, err
	}
	return resp, dispatch(resp, table)
}

// pickInvoker resolves a widget's invoker, falling back to the shared
// default when the caller did not supply one.
func pickInvoker(inv Invoker) Invoker {
	if inv == nil {
		return defaultInvoker
	}
	return inv
}
