// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import "errors"

// TextBox displays the contents of a file in a scrollable viewer. The
// renderer opens the file itself; when it cannot, it aborts with the
// escape code, which this widget routes to OnFailed instead of treating
// as fatal.
type TextBox struct {
	inv   Invoker
	req   Request
	opts  Options
	table reactions
}

// TextConfig configures a TextBox. File is the path the renderer reads.
type TextConfig struct {
	File     string
	Height   int
	Width    int
	Options  Options
	Invoker  Invoker
	OnOK     func()
	OnFailed func()
}

func NewTextBox(cfg TextConfig) (*TextBox, error) {
	if cfg.OnOK == nil || cfg.OnFailed == nil {
		return nil, errors.New("whiptui: text box requires OnOK and OnFailed")
	}
	req, err := newRequest(BoxText, cfg.File, cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	onOK, onFailed := cfg.OnOK, cfg.OnFailed
	return &TextBox{
		inv:  pickInvoker(cfg.Invoker),
		req:  req,
		opts: cfg.Options,
		table: reactions{
			Positive: func(string) error { onOK(); return nil },
			Escape:   func(string) error { onFailed(); return nil },
		},
	}, nil
}

// Show runs the dialog and blocks until the renderer exits.
func (t *TextBox) Show() error {
	_, err := show(t.inv, t.req, t.opts, t.table)
	return err
}
