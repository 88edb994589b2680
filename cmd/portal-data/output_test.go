package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestEncodeResult(t *testing.T) {
	var buf bytes.Buffer
	err := encodeResult(&buf, map[string]string{"url": "https://x?a=1&b=2"})
	if err != nil {
		t.Fatalf("encodeResult: %v", err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected newline-terminated line, got %q", out)
	}
	if strings.Contains(out, `&`) {
		t.Fatalf("expected html escaping off, got %q", out)
	}
}

func TestExitCode(t *testing.T) {
	if got := exitCode(nil); got != exitOK {
		t.Fatalf("nil error: expected %d, got %d", exitOK, got)
	}
	if got := exitCode(errors.New("plain")); got != 1 {
		t.Fatalf("plain error: expected 1, got %d", got)
	}
	err := withCode(exitUsage, errors.New("bad flag"))
	if got := exitCode(err); got != exitUsage {
		t.Fatalf("coded error: expected %d, got %d", exitUsage, got)
	}
	// codes survive wrapping
	wrapped := fmt.Errorf("context: %w", err)
	if got := exitCode(wrapped); got != exitUsage {
		t.Fatalf("wrapped coded error: expected %d, got %d", exitUsage, got)
	}
	if withCode(exitDB, nil) != nil {
		t.Fatalf("withCode(nil) must stay nil")
	}
}
