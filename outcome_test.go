// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"strings"
	"testing"
)

func TestDispatchRoutesToHandler(t *testing.T) {
	var got string
	table := reactions{
		Positive: func(value string) error { got = value; return nil },
	}
	if err := dispatch(positive("payload"), table); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if got != "payload" {
		t.Fatalf("handler saw %q, want %q", got, "payload")
	}
}

func TestDispatchUnexpectedIsFatal(t *testing.T) {
	table := reactions{
		Positive: func(string) error { t.Fatal("positive fired"); return nil },
		Negative: func(string) error { t.Fatal("negative fired"); return nil },
	}
	resp := Response{Code: 3, Outcome: Unexpected}
	err := dispatch(resp, table)
	if err == nil {
		t.Fatalf("expected error for unexpected exit code")
	}
	if !strings.Contains(err.Error(), "3") {
		t.Fatalf("error %q does not carry the raw code", err)
	}
}

func TestDispatchMissingEntryIsFatal(t *testing.T) {
	table := reactions{
		Positive: func(string) error { return nil },
	}
	if err := dispatch(escape(), table); err == nil {
		t.Fatalf("expected error for unhandled escape outcome")
	}
}

func TestDispatchNilHandlerIsNoop(t *testing.T) {
	table := reactions{Positive: nil}
	if err := dispatch(positive(""), table); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
}

func TestClassify(t *testing.T) {
	cases := map[int]Outcome{
		0:   Positive,
		1:   Negative,
		255: Escape,
		2:   Unexpected,
		127: Unexpected,
	}
	for code, want := range cases {
		if got := classify(code); got != want {
			t.Fatalf("classify(%d) = %s, want %s", code, got, want)
		}
	}
}
