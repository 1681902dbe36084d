// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"fmt"
	"strconv"
	"strings"
)

// MenuItem is one selectable row of a MenuBox. Key must be unique within
// the owning menu; Data is handed back to OnSelected untouched.
type MenuItem struct {
	Key         string
	Description string
	Data        any
	OnSelected  func(data any)
}

// MenuBox presents a list of tagged items and fires the selected item's
// callback.
type MenuBox struct {
	inv        Invoker
	req        Request
	opts       Options
	items      []MenuItem
	onCancel   func()
	listHeight int
	prefix     string
	showDesc   bool
}

// MenuConfig configures a MenuBox. ListHeight of zero derives from the
// box height. Prefix is prepended to every item description;
// ShowDescription false hides descriptions and shows the prefix alone.
type MenuConfig struct {
	Message         string
	Height          int
	Width           int
	ListHeight      int
	Prefix          string
	ShowDescription bool
	Items           []MenuItem
	Options         Options
	Invoker         Invoker
	OnCancel        func()
}

func NewMenuBox(cfg MenuConfig) (*MenuBox, error) {
	if len(cfg.Items) == 0 {
		return nil, fmt.Errorf("whiptui: menu box requires at least one item")
	}
	if cfg.OnCancel == nil {
		return nil, fmt.Errorf("whiptui: menu box requires OnCancel")
	}
	seen := map[string]bool{}
	for _, item := range cfg.Items {
		if item.OnSelected == nil {
			return nil, fmt.Errorf("whiptui: menu item %q requires OnSelected", item.Key)
		}
		if seen[item.Key] {
			return nil, fmt.Errorf("whiptui: duplicate menu item key %q", item.Key)
		}
		seen[item.Key] = true
	}
	req, err := newRequest(BoxMenu, cfg.Message, cfg.Height, cfg.Width)
	if err != nil {
		return nil, err
	}
	listHeight := cfg.ListHeight
	if listHeight <= 0 {
		listHeight = defaultListHeight(req.Height)
	}
	return &MenuBox{
		inv:        pickInvoker(cfg.Invoker),
		req:        req,
		opts:       cfg.Options,
		items:      cfg.Items,
		onCancel:   cfg.OnCancel,
		listHeight: listHeight,
		prefix:     cfg.Prefix,
		showDesc:   cfg.ShowDescription,
	}, nil
}

// Show runs the menu once. A Positive response carrying a key that no
// item declares means the rendered list and the item set diverged,
// which is a programming error, never a user action.
func (m *MenuBox) Show() error {
	req := m.req
	req.Extra = menuExtra(m.listHeight, m.items, m.prefix, m.showDesc)
	_, err := show(m.inv, req, m.opts, reactions{
		Positive: func(value string) error {
			for _, item := range m.items {
				if item.Key == value {
					item.OnSelected(item.Data)
					return nil
				}
			}
			return fmt.Errorf("whiptui: menu selection %q matches no item", value)
		},
		Negative: func(string) error { m.onCancel(); return nil },
	})
	return err
}

func menuExtra(listHeight int, items []MenuItem, prefix string, showDesc bool) []string {
	extra := []string{strconv.Itoa(listHeight)}
	for _, item := range items {
		extra = append(extra, item.Key, itemText(prefix, item.Description, showDesc))
	}
	return extra
}

// itemText renders the item column shown next to a tag. whiptail
// rejects empty item strings, so a hidden description degrades to the
// prefix or a single space.
func itemText(prefix, desc string, showDesc bool) string {
	if !showDesc {
		desc = ""
	}
	text := strings.TrimSpace(prefix + " " + desc)
	if text == "" {
		return " "
	}
	return text
}
