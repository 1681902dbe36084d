// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"fmt"
	"strconv"
)

// SelectItem is one row of a checklist or radiolist. Selected controls
// the initial on/off state at render time; it is not written back after
// a submit — the key sequence handed to OnSubmit is the source of truth.
type SelectItem struct {
	Key         string
	Description string
	Selected    bool
}

// CheckListBox presents a multi-selection list.
type CheckListBox struct {
	inv        Invoker
	req        Request
	opts       Options
	items      []SelectItem
	onSubmit   func(keys []string)
	onCancel   func()
	listHeight int
	prefix     string
	showDesc   bool
}

// ListConfig configures a CheckListBox or a RadioListBox.
type ListConfig struct {
	Message         string
	Height          int
	Width           int
	ListHeight      int
	Prefix          string
	ShowDescription bool
	Items           []SelectItem
	Options         Options
	Invoker         Invoker
	OnCancel        func()
}

// CheckListConfig adds the checklist submit callback, which receives
// every selected key in display order.
type CheckListConfig struct {
	ListConfig
	OnSubmit func(keys []string)
}

func NewCheckListBox(cfg CheckListConfig) (*CheckListBox, error) {
	if cfg.OnSubmit == nil {
		return nil, fmt.Errorf("whiptui: checklist box requires OnSubmit")
	}
	base, err := validateListConfig(cfg.ListConfig, BoxCheckList)
	if err != nil {
		return nil, err
	}
	return &CheckListBox{
		inv:        base.inv,
		req:        base.req,
		opts:       cfg.Options,
		items:      cfg.Items,
		onSubmit:   cfg.OnSubmit,
		onCancel:   cfg.OnCancel,
		listHeight: base.listHeight,
		prefix:     cfg.Prefix,
		showDesc:   cfg.ShowDescription,
	}, nil
}

// Show runs the checklist once. The Positive payload arrives as one
// line of quoted tags and is split before reaching OnSubmit.
func (c *CheckListBox) Show() error {
	req := c.req
	req.Extra = listExtra(c.listHeight, c.items, c.prefix, c.showDesc)
	_, err := show(c.inv, req, c.opts, reactions{
		Positive: func(value string) error {
			c.onSubmit(splitQuoted(value))
			return nil
		},
		Negative: func(string) error { c.onCancel(); return nil },
	})
	return err
}

// RadioListBox presents a single-selection list.
type RadioListBox struct {
	inv        Invoker
	req        Request
	opts       Options
	items      []SelectItem
	onSubmit   func(key string)
	onCancel   func()
	listHeight int
	prefix     string
	showDesc   bool
}

// RadioListConfig adds the radiolist submit callback, which receives
// the single selected key.
type RadioListConfig struct {
	ListConfig
	OnSubmit func(key string)
}

func NewRadioListBox(cfg RadioListConfig) (*RadioListBox, error) {
	if cfg.OnSubmit == nil {
		return nil, fmt.Errorf("whiptui: radiolist box requires OnSubmit")
	}
	base, err := validateListConfig(cfg.ListConfig, BoxRadioList)
	if err != nil {
		return nil, err
	}
	return &RadioListBox{
		inv:        base.inv,
		req:        base.req,
		opts:       cfg.Options,
		items:      cfg.Items,
		onSubmit:   cfg.OnSubmit,
		onCancel:   cfg.OnCancel,
		listHeight: base.listHeight,
		prefix:     cfg.Prefix,
		showDesc:   cfg.ShowDescription,
	}, nil
}

// Show runs the radiolist once. The Positive payload is the selected
// key itself, unquoted.
func (r *RadioListBox) Show() error {
	req := r.req
	req.Extra = listExtra(r.listHeight, r.items, r.prefix, r.showDesc)
	_, err := show(r.inv, req, r.opts, reactions{
		Positive: func(value string) error {
			r.onSubmit(value)
			return nil
		},
		Negative: func(string) error { r.onCancel(); return nil },
	})
	return err
}

type listBase struct {
	inv        Invoker
	req        Request
	listHeight int
}

func validateListConfig(cfg ListConfig, box Box) (listBase, error) {
	if len(cfg.Items) == 0 {
		return listBase{}, fmt.Errorf("whiptui: %s box requires at least one item", box)
	}
	if cfg.OnCancel == nil {
		return listBase{}, fmt.Errorf("whiptui: %s box requires OnCancel", box)
	}
	seen := map[string]bool{}
	for _, item := range cfg.Items {
		if seen[item.Key] {
			return listBase{}, fmt.Errorf("whiptui: duplicate %s item key %q", box, item.Key)
		}
		seen[item.Key] = true
	}
	req, err := newRequest(box, cfg.Message, cfg.Height, cfg.Width)
	if err != nil {
		return listBase{}, err
	}
	listHeight := cfg.ListHeight
	if listHeight <= 0 {
		listHeight = defaultListHeight(req.Height)
	}
	return listBase{inv: pickInvoker(cfg.Invoker), req: req, listHeight: listHeight}, nil
}

func listExtra(listHeight int, items []SelectItem, prefix string, showDesc bool) []string {
	extra := []string{strconv.Itoa(listHeight)}
	for _, item := range items {
		status := "OFF"
		if item.Selected {
			status = "ON"
		}
		extra = append(extra, item.Key, itemText(prefix, item.Description, showDesc), status)
	}
	return extra
}
