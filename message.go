// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import "errors"

// MessageBox displays a text message with a single OK button.
type MessageBox struct {
	inv   Invoker
	req   Request
	opts  Options
	table reactions
}

// MessageConfig configures a MessageBox. Height and Width of zero are
// resolved from the terminal. OnOK is required.
type MessageConfig struct {
	Message string
	Height  int
	Width   int
	Options Options
	Invoker Invoker
	OnOK    func()
}

// NewMessageBox builds a message box. The box has only an OK button, so
// Positive is the only reachable outcome.
func NewMessageBox(cfg MessageConfig) (*MessageBox, error) {
	if cfg.OnOK == nil {
		return nil, errors.New("whiptui: message box requires OnOK")
	}
	req, err := newRequest(BoxMessage, cfg.Message, cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	onOK := cfg.OnOK
	return &MessageBox{
		inv:  pickInvoker(cfg.Invoker),
		req:  req,
		opts: cfg.Options,
		table: reactions{
			Positive: func(string) error { onOK(); return nil },
		},
	}, nil
}

// Show runs the dialog and blocks until the renderer exits.
func (m *MessageBox) Show() error {
	_, err := show(m.inv, m.req, m.opts, m.table)
	return err
}
