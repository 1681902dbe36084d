// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"reflect"
	"testing"
)

func TestInputBoxRequiresCallbacks(t *testing.T) {
	if _, err := NewInputBox(InputConfig{Message: "m", OnSubmit: func(string) {}}); err == nil {
		t.Fatalf("expected construction error without OnCancel")
	}
}

func TestInputBoxSubmitsValidValue(t *testing.T) {
	inv := &fakeInvoker{t: t, responses: []Response{positive("192.168.0.1")}}
	var got string
	box, err := NewInputBox(InputConfig{
		Message:     "input an ip address",
		Height:      10,
		Width:       40,
		Placeholder: "192.168",
		Invoker:     inv,
		OnSubmit:    func(value string) { got = value },
		OnCancel:    func() { t.Fatal("cancel fired") },
	})
	if err != nil {
		t.Fatalf("NewInputBox: %v", err)
	}
	if err := box.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if got != "192.168.0.1" {
		t.Fatalf("OnSubmit saw %q", got)
	}
	if inv.calls[0].Box != BoxInput {
		t.Fatalf("box %s, want inputbox", inv.calls[0].Box)
	}
	if !reflect.DeepEqual(inv.calls[0].Extra, []string{"192.168"}) {
		t.Fatalf("extra %v, want placeholder", inv.calls[0].Extra)
	}
}

func TestInputBoxPasswordKind(t *testing.T) {
	inv := &fakeInvoker{t: t, responses: []Response{positive("secret")}}
	box, err := NewInputBox(InputConfig{
		Message:  "m",
		Height:   10,
		Width:    40,
		Password: true,
		Invoker:  inv,
		OnSubmit: func(string) {},
		OnCancel: func() {},
	})
	if err != nil {
		t.Fatalf("NewInputBox: %v", err)
	}
	if err := box.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if inv.calls[0].Box != BoxPassword {
		t.Fatalf("box %s, want passwordbox", inv.calls[0].Box)
	}
}

// An invalid value shows the error message box, re-prompts, and still
// fires OnSubmit with the rejected value.
func TestInputBoxValidationRetryLoop(t *testing.T) {
	inv := &fakeInvoker{t: t, responses: []Response{
		positive("not-an-ip"), // first attempt, rejected
		positive(""),          // error message box OK
		positive("10.0.0.1"),  // second attempt, accepted
	}}
	var submitted []string
	box, err := NewInputBox(InputConfig{
		Message:      "input an ip address",
		Height:       10,
		Width:        40,
		Validator:    func(value string) bool { return value == "10.0.0.1" },
		ErrorMessage: "invalid ip address!",
		Invoker:      inv,
		OnSubmit:     func(value string) { submitted = append(submitted, value) },
		OnCancel:     func() { t.Fatal("cancel fired") },
	})
	if err != nil {
		t.Fatalf("NewInputBox: %v", err)
	}
	if err := box.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if want := []string{"not-an-ip", "10.0.0.1"}; !reflect.DeepEqual(submitted, want) {
		t.Fatalf("OnSubmit calls %v, want %v", submitted, want)
	}
	boxes := []Box{inv.calls[0].Box, inv.calls[1].Box, inv.calls[2].Box}
	if want := []Box{BoxInput, BoxMessage, BoxInput}; !reflect.DeepEqual(boxes, want) {
		t.Fatalf("invocation sequence %v, want %v", boxes, want)
	}
	if inv.calls[1].Text != "invalid ip address!" {
		t.Fatalf("error box text %q", inv.calls[1].Text)
	}
}

func TestInputBoxCancelExitsRetryLoop(t *testing.T) {
	inv := &fakeInvoker{t: t, responses: []Response{
		positive("bad"),
		positive(""), // error box
		negative(),   // user gives up
	}}
	cancelled := false
	box, err := NewInputBox(InputConfig{
		Message:      "m",
		Height:       10,
		Width:        40,
		Validator:    func(string) bool { return false },
		ErrorMessage: "nope",
		Invoker:      inv,
		OnSubmit:     func(string) {},
		OnCancel:     func() { cancelled = true },
	})
	if err != nil {
		t.Fatalf("NewInputBox: %v", err)
	}
	if err := box.Show(); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if !cancelled {
		t.Fatalf("OnCancel did not fire")
	}
}
