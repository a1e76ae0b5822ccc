package config

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Hooks swapped by tests; os.Exit cannot be observed in-process.
var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// Exitf reports a fatal startup error on stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(stderr, strings.TrimRight(format, "\n")+"\n", args...)
	exit(1)
}
