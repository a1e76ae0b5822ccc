package config

import (
	"bytes"
	"os"
	"testing"
)

func TestExitfWritesAndExitsWithStatusOne(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	stderr, exit = &buf, func(c int) { code = c }
	t.Cleanup(func() { stderr, exit = os.Stderr, os.Exit })

	Exitf("parse flags: %s\n", "bad value")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "parse flags: bad value\n" {
		t.Fatalf("stderr = %q, want %q", got, "parse flags: bad value\n")
	}
}
