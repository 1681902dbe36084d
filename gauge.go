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
	"sync"
)

// GaugeBox runs the renderer's progress bar in long-running mode. It is
// the one widget that does not block: Listen returns a session handle
// while the renderer keeps reading percent lines from its stdin.
type GaugeBox struct {
	renderer *Whiptail
	req      Request
	opts     Options
	percent  int
}

// GaugeConfig configures a GaugeBox. Percent is the initial position
// and must be in [0,100]. Renderer is the concrete invoker; streaming
// needs the real process handle, so an Invoker interface is not enough.
type GaugeConfig struct {
	Message  string
	Height   int
	Width    int
	Percent  int
	Options  Options
	Renderer *Whiptail
}

func NewGaugeBox(cfg GaugeConfig) (*GaugeBox, error) {
	if cfg.Percent < 0 || cfg.Percent > 100 {
		return nil, fmt.Errorf("whiptui: gauge initial percent %d out of range [0,100]", cfg.Percent)
	}
	req, err := newRequest(BoxGauge, cfg.Message, cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	renderer := cfg.Renderer
	if renderer == nil {
		renderer = &Whiptail{}
	}
	return &GaugeBox{renderer: renderer, req: req, opts: cfg.Options, percent: cfg.Percent}, nil
}

// GaugeSession is a live gauge process. Percent updates stream to the
// child's stdin from the calling goroutine; a background goroutine
// waits for the child to exit and publishes the terminal response on
// Done. The two sides share nothing but the process handle.
type GaugeSession struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser
	done  chan Response

	mu     sync.Mutex
	closed bool
}

// Listen spawns the gauge renderer and returns without blocking.
func (g *GaugeBox) Listen() (*GaugeSession, error) {
	req := g.req
	req.Extra = []string{strconv.Itoa(g.percent)}
	cmd := g.renderer.command(req, g.opts)
	var errBuf bytes.Buffer
	cmd.Stderr = &errBuf
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("whiptui: gauge stdin: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("whiptui: start gauge renderer: %w", err)
	}

	s := &GaugeSession{cmd: cmd, stdin: stdin, done: make(chan Response, 1)}
	go func() {
		code := 0
		if err := cmd.Wait(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else {
				code = -1
			}
		}
		value := bytes.TrimRight(errBuf.Bytes(), "\r\n")
		s.done <- Response{Code: code, Outcome: classify(code), Value: string(value)}
	}()
	return s, nil
}

// UpdatePercent moves the gauge. Values outside [0,100] are rejected
// before anything reaches the child. The write goes straight to the
// pipe, newline-terminated, so the renderer observes it before this
// call returns; a mutex keeps concurrent updates whole and ordered.
func (s *GaugeSession) UpdatePercent(percent int) error {
	if percent < 0 || percent > 100 {
		return fmt.Errorf("whiptui: gauge percent %d out of range [0,100]", percent)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errors.New("whiptui: gauge session already terminated")
	}
	_, err := fmt.Fprintf(s.stdin, "%d\n", percent)
	return err
}

// Terminate closes the child's stdin, signalling EOF. The child is not
// killed; it exits on its own once it has nothing left to read.
// Terminate is idempotent and succeeds even when the child has already
// exited.
func (s *GaugeSession) Terminate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.stdin.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}

// Done reports the renderer's terminal response once it exits. The
// channel delivers exactly one value.
func (s *GaugeSession) Done() <-chan Response {
	return s.done
}

// Wait blocks until the renderer exits and returns its response.
func (s *GaugeSession) Wait() Response {
	return <-s.done
}
