package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// emitResult prints one machine-readable result line for the invocation.
// Stdout carries only this line; everything else goes to the log.
func emitResult(v any) error {
	return encodeResult(os.Stdout, v)
}

func encodeResult(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return withCode(exitDBWrite, fmt.Errorf("encode result: %w", err))
	}
	return nil
}
