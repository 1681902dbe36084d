// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

// InfoBox displays a message and returns immediately; it never waits
// for input, so Positive is the only outcome and needs no callback.
// The child is still drained so its exit code is observed.
type InfoBox struct {
	inv   Invoker
	req   Request
	opts  Options
	table reactions
}

type InfoConfig struct {
	Message string
	Height  int
	Width   int
	Options Options
	Invoker Invoker
}

func NewInfoBox(cfg InfoConfig) (*InfoBox, error) {
	req, err := newRequest(BoxInfo, cfg.Message, cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	return &InfoBox{
		inv:  pickInvoker(cfg.Invoker),
		req:  req,
		opts: cfg.Options,
		table: reactions{
			Positive: nil, // display only
		},
	}, nil
}

// Show runs the dialog and blocks until the renderer exits.
func (i *InfoBox) Show() error {
	_, err := show(i.inv, i.req, i.opts, i.table)
	return err
}
