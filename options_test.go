// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"reflect"
	"testing"
)

func TestOptionsArgsEmpty(t *testing.T) {
	if args := (Options{}).args(); len(args) != 0 {
		t.Fatalf("zero options emitted %v", args)
	}
}

func TestOptionsArgsOrder(t *testing.T) {
	opts := Options{
		Clear:          true,
		DefaultNo:      true,
		FullButtons:    true,
		NoCancel:       true,
		NoItem:         true,
		NoTags:         true,
		SeparateOutput: true,
		ScrollText:     true,
		TopLeft:        true,
		DefaultItem:    "item2",
		YesButton:      "yep",
		NoButton:       "nope",
		OKButton:       "fine",
		CancelButton:   "stop",
		Title:          "the title",
		Backtitle:      "the backtitle",
	}
	want := []string{
		"--clear", "--defaultno", "--fullbuttons", "--nocancel",
		"--noitem", "--notags", "--separate-output", "--scrolltext", "--topleft",
		"--default-item", "item2",
		"--yes-button", "yep",
		"--no-button", "nope",
		"--ok-button", "fine",
		"--cancel-button", "stop",
		"--title", "the title",
		"--backtitle", "the backtitle",
	}
	if got := opts.args(); !reflect.DeepEqual(got, want) {
		t.Fatalf("args mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestOptionsArgsOmitsAbsent(t *testing.T) {
	opts := Options{DefaultNo: true, Title: "hi"}
	want := []string{"--defaultno", "--title", "hi"}
	if got := opts.args(); !reflect.DeepEqual(got, want) {
		t.Fatalf("args mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestOptionsArgsDeterministic(t *testing.T) {
	opts := Options{Clear: true, Title: "t", Backtitle: "b", NoTags: true}
	first := opts.args()
	second := opts.args()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("args not deterministic: %v vs %v", first, second)
	}
}

func TestOptionsValuesPassThroughVerbatim(t *testing.T) {
	opts := Options{Title: "  spaced  --weird  "}
	got := opts.args()
	if len(got) != 2 || got[1] != "  spaced  --weird  " {
		t.Fatalf("title value altered: %v", got)
	}
}
