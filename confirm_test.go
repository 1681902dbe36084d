// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import "testing"

func TestYesNoBoxRequiresBothCallbacks(t *testing.T) {
	if _, err := NewYesNoBox(YesNoConfig{Message: "?", OnYes: func() {}}); err == nil {
		t.Fatalf("expected construction error without OnNo")
	}
	if _, err := NewYesNoBox(YesNoConfig{Message: "?", OnNo: func() {}}); err == nil {
		t.Fatalf("expected construction error without OnYes")
	}
}

func TestYesNoBoxFiresOnYes(t *testing.T) {
	inv := &fakeInvoker{t: t, responses: []Response{positive("")}}
	yes, no := false, false
	box, err := NewYesNoBox(YesNoConfig{
		Message: "choose yes or no",
		Height:  10,
		Width:   40,
		Invoker: inv,
		OnYes:   func() { yes = true },
		OnNo:    func() { no = true },
	})
	if err != nil {
		t.Fatalf("NewYesNoBox: %v", err)
	}
	if err := box.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if !yes || no {
		t.Fatalf("yes=%v no=%v, want yes only", yes, no)
	}
}

// End to end: a yes/no box against a renderer process that exits with
// code 1 fires OnNo and never OnYes.
func TestYesNoBoxAgainstRealRenderer(t *testing.T) {
	w := &Whiptail{Path: writeScript(t, "exit 1")}
	yes, no := false, false
	box, err := NewYesNoBox(YesNoConfig{
		Message: "choose",
		Height:  10,
		Width:   40,
		Invoker: w,
		OnYes:   func() { yes = true },
		OnNo:    func() { no = true },
	})
	if err != nil {
		t.Fatalf("NewYesNoBox: %v", err)
	}
	if err := box.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if yes {
		t.Fatalf("OnYes fired for a negative exit")
	}
	if !no {
		t.Fatalf("OnNo did not fire")
	}
}
