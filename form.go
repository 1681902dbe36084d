// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"fmt"
	"strconv"
	"strings"
)

// FormItem is one editable field of a FormBox. Key is the menu tag and
// must be unique and non-empty (the empty key is the submit sentinel).
// Name is the label reported to OnSubmit. Value holds the current field
// content and is owned by the form while it runs.
type FormItem struct {
	Key          string
	Name         string
	Password     bool
	Value        string
	Validator    func(value string) bool
	ErrorMessage string
}

// FormField is one submitted name/value pair.
type FormField struct {
	Name  string
	Value string
}

// FormBox is a composite widget: a menu of editable fields where
// selecting a field opens an input box for it, looping until the
// submit row is chosen or the form is cancelled.
type FormBox struct {
	inv         Invoker
	req         Request
	opts        Options
	items       []FormItem
	submitLabel string
	listHeight  int
	onSubmit    func(fields []FormField)
	onCancel    func()
}

// FormConfig configures a FormBox. SubmitLabel defaults to "submit" and
// is displayed bracketed on the sentinel row.
type FormConfig struct {
	Message     string
	Height      int
	Width       int
	ListHeight  int
	SubmitLabel string
	Items       []FormItem
	Options     Options
	Invoker     Invoker
	OnSubmit    func(fields []FormField)
	OnCancel    func()
}

func NewFormBox(cfg FormConfig) (*FormBox, error) {
	if cfg.OnSubmit == nil || cfg.OnCancel == nil {
		return nil, fmt.Errorf("whiptui: form box requires OnSubmit and OnCancel")
	}
	if len(cfg.Items) == 0 {
		return nil, fmt.Errorf("whiptui: form box requires at least one item")
	}
	seen := map[string]bool{}
	for _, item := range cfg.Items {
		if item.Key == "" {
			return nil, fmt.Errorf("whiptui: form item key must not be empty")
		}
		if seen[item.Key] {
			return nil, fmt.Errorf("whiptui: duplicate form item key %q", item.Key)
		}
		seen[item.Key] = true
	}
	req, err := newRequest(BoxMenu, cfg.Message, cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	label := cfg.SubmitLabel
	if label == "" {
		label = "submit"
	}
	listHeight := cfg.ListHeight
	if listHeight <= 0 {
		listHeight = defaultListHeight(req.Height)
	}
	items := make([]FormItem, len(cfg.Items))
	copy(items, cfg.Items)
	return &FormBox{
		inv:         pickInvoker(cfg.Invoker),
		req:         req,
		opts:        cfg.Options,
		items:       items,
		submitLabel: label,
		listHeight:  listHeight,
		onSubmit:    cfg.OnSubmit,
		onCancel:    cfg.OnCancel,
	}, nil
}

// Show loops the field menu until the submit sentinel is chosen or the
// form is cancelled. Each field edit re-invokes the renderer, so the
// menu always reflects the latest values.
func (f *FormBox) Show() error {
	for {
		req := f.req
		req.Extra = f.menuExtra()
		resp, err := f.inv.Invoke(req, f.opts)
		if err != nil {
			return err
		}
		done := false
		table := reactions{
			Positive: func(value string) error {
				if value == "" {
					done = true
					f.onSubmit(f.fields())
					return nil
				}
				idx := f.itemIndex(value)
				if idx < 0 {
					return fmt.Errorf("whiptui: form selection %q matches no item", value)
				}
				return f.editItem(idx)
			},
			Negative: func(string) error {
				done = true
				f.onCancel()
				return nil
			},
		}
		if err := dispatch(resp, table); err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// editItem opens an input box seeded with the field's current state and
// commits the last accepted value. A cancelled edit leaves the field
// untouched.
func (f *FormBox) editItem(idx int) error {
	item := &f.items[idx]
	var pending string
	cancelled := false
	input, err := NewInputBox(InputConfig{
		Message:      item.Name,
		Height:       f.req.Height,
		Width:        f.req.Width,
		Placeholder:  item.Value,
		Password:     item.Password,
		Validator:    item.Validator,
		ErrorMessage: item.ErrorMessage,
		Options:      f.opts,
		Invoker:      f.inv,
		OnSubmit:     func(value string) { pending = value },
		OnCancel:     func() { cancelled = true },
	})
	if err != nil {
		return err
	}
	if err := input.Show(); err != nil {
		return err
	}
	if !cancelled {
		item.Value = pending
	}
	return nil
}

// menuExtra renders the current field values plus the submit sentinel.
// Password values show as a run of '*' matching the value length.
func (f *FormBox) menuExtra() []string {
	extra := []string{strconv.Itoa(f.listHeight)}
	for _, item := range f.items {
		display := item.Value
		if item.Password {
			display = strings.Repeat("*", len(item.Value))
		}
		if display == "" {
			display = " "
		}
		extra = append(extra, item.Key, display)
	}
	return append(extra, "", "["+f.submitLabel+"]")
}

func (f *FormBox) itemIndex(key string) int {
	for i := range f.items {
		if f.items[i].Key == key {
			return i
		}
	}
	return -1
}

func (f *FormBox) fields() []FormField {
	fields := make([]FormField, 0, len(f.items))
	for _, item := range f.items {
		fields = append(fields, FormField{Name: item.Name, Value: strings.TrimSpace(item.Value)})
	}
	return fields
}
