// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import "errors"

// InputBox prompts for a line of text, optionally masked. A validator
// turns it into a retrying prompt: invalid input shows ErrorMessage in
// a message box and re-prompts until the input passes or the user
// cancels. The loop is unbounded on purpose.
type InputBox struct {
	inv          Invoker
	req          Request
	opts         Options
	placeholder  string
	validator    func(string) bool
	errorMessage string
	onSubmit     func(value string)
	onCancel     func()
}

// InputConfig configures an InputBox. Password selects the masked box
// kind. Placeholder seeds the edit field. Validator and ErrorMessage go
// together; a nil Validator accepts everything.
type InputConfig struct {
	Message      string
	Height       int
	Width        int
	Placeholder  string
	Password     bool
	Validator    func(value string) bool
	ErrorMessage string
	Options      Options
	Invoker      Invoker
	OnSubmit     func(value string)
	OnCancel     func()
}

func NewInputBox(cfg InputConfig) (*InputBox, error) {
	if cfg.OnSubmit == nil || cfg.OnCancel == nil {
		return nil, errors.New("whiptui: input box requires OnSubmit and OnCancel")
	}
	box := BoxInput
	if cfg.Password {
		box = BoxPassword
	}
	req, err := newRequest(box, cfg.Message, cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	return &InputBox{
		inv:          pickInvoker(cfg.Invoker),
		req:          req,
		opts:         cfg.Options,
		placeholder:  cfg.Placeholder,
		validator:    cfg.Validator,
		errorMessage: cfg.ErrorMessage,
		onSubmit:     cfg.OnSubmit,
		onCancel:     cfg.OnCancel,
	}, nil
}

// Show prompts until the input validates or the user cancels. OnSubmit
// fires for every submitted value, including ones the validator
// rejected; callers that only want the accepted value must re-check it.
// Kept for compatibility with the retry contract — see DESIGN.md.
func (i *InputBox) Show() error {
	req := i.req
	req.Extra = []string{i.placeholder}
	for {
		resp, err := i.inv.Invoke(req, i.opts)
		if err != nil {
			return err
		}
		retry := false
		table := reactions{
			Positive: func(value string) error {
				i.onSubmit(value)
				if i.validator != nil && !i.validator(value) {
					retry = true
					return i.showError()
				}
				return nil
			},
			Negative: func(string) error { i.onCancel(); return nil },
		}
		if err := dispatch(resp, table); err != nil {
			return err
		}
		if !retry {
			return nil
		}
	}
}

// showError flashes the validation failure before the next prompt.
func (i *InputBox) showError() error {
	msg, err := NewMessageBox(MessageConfig{
		Message: i.errorMessage,
		Height:  i.req.Height,
		Width:   i.req.Width,
		Options: i.opts,
		Invoker: i.inv,
		OnOK:    func() {},
	})
	if err != nil {
		return err
	}
	return msg.Show()
}
