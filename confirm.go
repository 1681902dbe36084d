// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import "errors"

// YesNoBox asks a yes/no question.
type YesNoBox struct {
	inv   Invoker
	req   Request
	opts  Options
	table reactions
}

// YesNoConfig configures a YesNoBox. Both callbacks are required: the
// box can always reach either button.
type YesNoConfig struct {
	Message string
	Height  int
	Width   int
	Options Options
	Invoker Invoker
	OnYes   func()
	OnNo    func()
}

func NewYesNoBox(cfg YesNoConfig) (*YesNoBox, error) {
	if cfg.OnYes == nil || cfg.OnNo == nil {
		return nil, errors.New("whiptui: yesno box requires OnYes and OnNo")
	}
	req, err := newRequest(BoxYesNo, cfg.Message, cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	onYes, onNo := cfg.OnYes, cfg.OnNo
	return &YesNoBox{
		inv:  pickInvoker(cfg.Invoker),
		req:  req,
		opts: cfg.Options,
		table: reactions{
			Positive: func(string) error { onYes(); return nil },
			Negative: func(string) error { onNo(); return nil },
		},
	}, nil
}

// Show runs the dialog and blocks until the renderer exits.
func (y *YesNoBox) Show() error {
	_, err := show(y.inv, y.req, y.opts, y.table)
	return err
}
