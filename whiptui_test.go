// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"os"
	"path/filepath"
	"testing"
)

// fakeInvoker feeds widgets a scripted sequence of responses and
// records every request it sees.
type fakeInvoker struct {
	t         *testing.T
	responses []Response
	calls     []Request
}

func (f *fakeInvoker) Invoke(req Request, opts Options) (Response, error) {
	f.t.Helper()
	f.calls = append(f.calls, req)
	if len(f.responses) == 0 {
		f.t.Fatalf("unexpected %s invocation", req.Box)
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

func positive(value string) Response {
	return Response{Code: 0, Outcome: Positive, Value: value}
}

func negative() Response {
	return Response{Code: 1, Outcome: Negative}
}

func escape() Response {
	return Response{Code: 255, Outcome: Escape}
}

// writeScript drops an executable fake renderer into a temp dir.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-renderer")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake renderer: %v", err)
	}
	return path
}
