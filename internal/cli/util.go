package cli

import (
	"fmt"
	"os"
)

// exitf prints an error to stderr (suppressed in headless mode, where only
// the programmatic output on stdout matters) and exits nonzero.
func exitf(headless bool, format string, a ...any) {
	if !headless {
		fmt.Fprintf(os.Stderr, format, a...)
	}
	os.Exit(1)
}
