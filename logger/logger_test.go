// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestOrNop(t *testing.T) {
	t.Parallel()

	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}

	l := Nop()
	if OrNop(l) != l {
		t.Fatal("OrNop did not pass through a non-nil logger")
	}
}

func TestDefaultIsShared(t *testing.T) {
	t.Parallel()

	if Default() != Default() {
		t.Fatal("Default returned different loggers across calls")
	}
}

func TestWithAddsFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With(zap.String("component", "saver"))

	l.Info("hello")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["component"]; got != "saver" {
		t.Fatalf("component field = %v, want saver", got)
	}
}
