// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// styler decorates the one-line results the CLI prints after each
// dialog. It degrades to plain text when styling is disabled or stdout
// is not a terminal.
type styler struct {
	enabled bool
	label   lipgloss.Style
	value   lipgloss.Style
	cancel  lipgloss.Style
}

func newStyler(enabled bool) styler {
	if !enabled || !term.IsTerminal(int(os.Stdout.Fd())) {
		return styler{}
	}
	return styler{
		enabled: true,
		label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1F7A1F", Dark: "#7EE787"}),
		value:   lipgloss.NewStyle(),
		cancel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#9A6B00", Dark: "#F2C14E"}),
	}
}

// report prints one "label: detail" result line.
func (s *session) report(label, detail string) {
	st := s.style
	if !st.enabled {
		fmt.Fprintf(os.Stdout, "%s: %s\n", label, detail)
		return
	}
	labelStyle := st.label
	if label == "cancel" || label == "no" || label == "failed" {
		labelStyle = st.cancel
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", labelStyle.Render(label+":"), st.value.Render(detail))
}
