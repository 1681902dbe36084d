// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"fmt"

	"github.com/xuranus/whiptui/internal/termsize"
)

// Box identifies one of the renderer's dialog types.
type Box string

const (
	BoxMessage   Box = "msgbox"
	BoxYesNo     Box = "yesno"
	BoxInfo      Box = "infobox"
	BoxInput     Box = "inputbox"
	BoxPassword  Box = "passwordbox"
	BoxText      Box = "textbox"
	BoxMenu      Box = "menu"
	BoxCheckList Box = "checklist"
	BoxRadioList Box = "radiolist"
	BoxGauge     Box = "gauge"
)

var knownBoxes = map[Box]bool{
	BoxMessage:   true,
	BoxYesNo:     true,
	BoxInfo:      true,
	BoxInput:     true,
	BoxPassword:  true,
	BoxText:      true,
	BoxMenu:      true,
	BoxCheckList: true,
	BoxRadioList: true,
	BoxGauge:     true,
}

// Request describes a single renderer invocation: the box kind, the text
// argument (a message, or a file path for textbox), the dialog geometry
// and the box-specific trailing arguments.
type Request struct {
	Box    Box
	Text   string
	Height int
	Width  int
	Extra  []string
}

// newRequest validates the box kind and resolves missing geometry from
// the terminal before the request reaches the renderer.
func newRequest(box Box, text string, height, width int) (Request, error) {
	if !knownBoxes[box] {
		return Request{}, fmt.Errorf("whiptui: unknown box kind %q", box)
	}
	cols, rows := termsize.Size()
	if height <= 0 {
		height = defaultDimension(rows)
	}
	if width <= 0 {
		width = defaultDimension(cols)
	}
	return Request{Box: box, Text: text, Height: height, Width: width}, nil
}

// defaultDimension derives a dialog dimension from a terminal dimension:
// leave a 2-cell margin, then round down to a multiple of 5.
func defaultDimension(avail int) int {
	d := avail - 2
	d -= d % 5
	if d < 5 {
		d = 5
	}
	return d
}

// defaultListHeight sizes the scrolling list area of menu-style boxes.
// Callers must pass an already resolved box height.
func defaultListHeight(boxHeight int) int {
	h := boxHeight - 10
	if h < 1 {
		h = 1
	}
	return h
}
