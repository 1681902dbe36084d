// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import "fmt"

// Outcome classifies how a renderer invocation ended.
type Outcome int

const (
	// Positive means the Yes or OK button was pressed (exit code 0).
	Positive Outcome = iota
	// Negative means the No or Cancel button was pressed (exit code 1).
	Negative
	// Escape means the user pressed ESC or the renderer aborted (exit code 255).
	Escape
	// Unexpected covers every other exit code. It signals a broken
	// renderer invocation, never a user decision.
	Unexpected
)

func (o Outcome) String() string {
	switch o {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	case Escape:
		return "escape"
	default:
		return "unexpected"
	}
}

// classify maps a renderer exit code to an outcome.
func classify(code int) Outcome {
	switch code {
	case 0:
		return Positive
	case 1:
		return Negative
	case 255:
		return Escape
	default:
		return Unexpected
	}
}

// Response is the result of one completed renderer invocation: the raw
// exit code, its classification, and the single line the renderer wrote
// to its stderr (empty for boxes that produce no value).
type Response struct {
	Code    int
	Outcome Outcome
	Value   string
}

// reaction handles one outcome of a completed invocation. The value is
// the renderer's stderr payload; it is meaningful only for Positive.
type reaction func(value string) error

// reactions maps each outcome a widget can legally reach to its handler.
// Widget constructors build the table once and validate it; an outcome
// reached at runtime with no entry is a contract violation.
type reactions map[Outcome]reaction

// dispatch routes a completed response through the widget's reaction
// table. Unexpected is always a hard error: the renderer itself
// misbehaved and mapping that to a default outcome would hide it.
func dispatch(resp Response, table reactions) error {
	if resp.Outcome == Unexpected {
		return fmt.Errorf("whiptui: renderer exited with unexpected code %d", resp.Code)
	}
	fn, ok := table[resp.Outcome]
	if !ok {
		return fmt.Errorf("whiptui: no reaction registered for %s outcome", resp.Outcome)
	}
	if fn == nil {
		return nil
	}
	return fn(resp.Value)
}
