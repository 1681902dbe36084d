// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package whiptui

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestGaugeBoxRejectsInitialPercentOutOfRange(t *testing.T) {
	for _, percent := range []int{-1, 101, 1000} {
		_, err := NewGaugeBox(GaugeConfig{Message: "p", Height: 10, Width: 40, Percent: percent})
		if err == nil {
			t.Fatalf("percent %d accepted", percent)
		}
	}
	if _, err := NewGaugeBox(GaugeConfig{Message: "p", Height: 10, Width: 40, Percent: 100}); err != nil {
		t.Fatalf("percent 100 rejected: %v", err)
	}
}

// The child copies its stdin to a file; updates must arrive exactly as
// written, in order, and rejected values must never reach the child.
func TestGaugeSessionStreamsUpdatesInOrder(t *testing.T) {
	out := filepath.Join(t.TempDir(), "stream")
	t.Setenv("WHIPTUI_TEST_STREAM", out)
	gauge, err := NewGaugeBox(GaugeConfig{
		Message:  "progress bar",
		Height:   10,
		Width:    40,
		Percent:  0,
		Renderer: &Whiptail{Path: writeScript(t, `cat > "$WHIPTUI_TEST_STREAM"; exit 0`)},
	})
	if err != nil {
		t.Fatalf("NewGaugeBox: %v", err)
	}
	session, err := gauge.Listen()
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	if err := session.UpdatePercent(150); err == nil {
		t.Fatalf("percent 150 accepted")
	}
	if err := session.UpdatePercent(-1); err == nil {
		t.Fatalf("percent -1 accepted")
	}
	if err := session.UpdatePercent(42); err != nil {
		t.Fatalf("UpdatePercent(42): %v", err)
	}
	if err := session.UpdatePercent(43); err != nil {
		t.Fatalf("UpdatePercent(43): %v", err)
	}
	if err := session.Terminate(); err != nil {
		t.Fatalf("Terminate: %v", err)
	}

	resp := session.Wait()
	if resp.Outcome != Positive {
		t.Fatalf("gauge ended %s (code %d), want positive", resp.Outcome, resp.Code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read stream: %v", err)
	}
	if string(data) != "42\n43\n" {
		t.Fatalf("child saw %q, want %q", data, "42\n43\n")
	}
}

func TestGaugeSessionInitialPercentArgument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "args")
	t.Setenv("WHIPTUI_TEST_ARGS", out)
	gauge, err := NewGaugeBox(GaugeConfig{
		Message:  "p",
		Height:   10,
		Width:    40,
		Percent:  25,
		Renderer: &Whiptail{Path: writeScript(t, `printf '%s\n' "$@" > "$WHIPTUI_TEST_ARGS"; exit 0`)},
	})
	if err != nil {
		t.Fatalf("NewGaugeBox: %v", err)
	}
	session, err := gauge.Listen()
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	session.Wait()
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read args: %v", err)
	}
	args := string(data)
	if want := "--gauge\n--\np\n10\n40\n25\n"; args != want {
		t.Fatalf("gauge argv %q, want %q", args, want)
	}
}

func TestGaugeTerminateIdempotentAfterChildExit(t *testing.T) {
	gauge, err := NewGaugeBox(GaugeConfig{
		Message:  "p",
		Height:   10,
		Width:    40,
		Renderer: &Whiptail{Path: writeScript(t, "exit 0")},
	})
	if err != nil {
		t.Fatalf("NewGaugeBox: %v", err)
	}
	session, err := gauge.Listen()
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	session.Wait() // child is gone before we close its stdin
	if err := session.Terminate(); err != nil {
		t.Fatalf("Terminate after exit: %v", err)
	}
	if err := session.Terminate(); err != nil {
		t.Fatalf("second Terminate: %v", err)
	}
	if err := session.UpdatePercent(50); err == nil {
		t.Fatalf("UpdatePercent accepted after Terminate")
	}
}

func TestGaugeDoneReportsInterruptedChild(t *testing.T) {
	gauge, err := NewGaugeBox(GaugeConfig{
		Message:  "p",
		Height:   10,
		Width:    40,
		Renderer: &Whiptail{Path: writeScript(t, "read _ || true; exit 255")},
	})
	if err != nil {
		t.Fatalf("NewGaugeBox: %v", err)
	}
	session, err := gauge.Listen()
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	if err := session.Terminate(); err != nil {
		t.Fatalf("Terminate: %v", err)
	}
	select {
	case resp := <-session.Done():
		if resp.Outcome != Escape {
			t.Fatalf("gauge ended %s (code %d), want escape", resp.Outcome, resp.Code)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for gauge exit")
	}
}
