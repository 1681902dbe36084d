// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package whiptui drives the whiptail renderer as a child process and
// exposes its dialog boxes as typed widgets. The package never draws
// anything itself: it builds an argument vector, spawns the renderer,
// and interprets the exit code and captured stderr line.
package whiptui

// Options holds the renderer options shared by every box kind. The zero
// value emits nothing. Options is a plain value constructed once; there
// are no setters and no mutation after construction.
type Options struct {
	Clear          bool // --clear: clear screen on exit
	DefaultNo      bool // --defaultno: default to the No button
	FullButtons    bool // --fullbuttons
	NoCancel       bool // --nocancel: hide the Cancel button
	NoItem         bool // --noitem: don't display items
	NoTags         bool // --notags: don't display tags
	SeparateOutput bool // --separate-output: one selection per line
	ScrollText     bool // --scrolltext: force vertical scrollbars
	TopLeft        bool // --topleft: window in the top-left corner

	DefaultItem  string // --default-item <tag>
	YesButton    string // --yes-button <text>
	NoButton     string // --no-button <text>
	OKButton     string // --ok-button <text>
	CancelButton string // --cancel-button <text>
	Title        string // --title <text>
	Backtitle    string // --backtitle <text>
}

// args renders the options as renderer flags. Boolean flags come first,
// then value options, each group in declared order, so identical Options
// always produce an identical vector. Absent values are omitted entirely.
// Option values pass through verbatim; validating them is the renderer's
// problem, not ours.
func (o Options) args() []string {
	var args []string
	flags := []struct {
		set  bool
		flag string
	}{
		{o.Clear, "--clear"},
		{o.DefaultNo, "--defaultno"},
		{o.FullButtons, "--fullbuttons"},
		{o.NoCancel, "--nocancel"},
		{o.NoItem, "--noitem"},
		{o.NoTags, "--notags"},
		{o.SeparateOutput, "--separate-output"},
		{o.ScrollText, "--scrolltext"},
		{o.TopLeft, "--topleft"},
	}
	for _, f := range flags {
		if f.set {
			args = append(args, f.flag)
		}
	}
	values := []struct {
		value string
		flag  string
	}{
		{o.DefaultItem, "--default-item"},
		{o.YesButton, "--yes-button"},
		{o.NoButton, "--no-button"},
		{o.OKButton, "--ok-button"},
		{o.CancelButton, "--cancel-button"},
		{o.Title, "--title"},
		{o.Backtitle, "--backtitle"},
	}
	for _, v := range values {
		if v.value != "" {
			args = append(args, v.flag, v.value)
		}
	}
	return args
}
