package helpers

import (
	"fmt"
	"io"
)

// Report output goes through these helpers so that a broken output sink
// surfaces as a panic instead of an ignored error on every print call.

func MustFprintln(w io.Writer, a ...any) {
	if _, err := fmt.Fprintln(w, a...); err != nil {
		panic(err)
	}
}

func MustFprintf(w io.Writer, format string, a ...any) {
	if _, err := fmt.Fprintf(w, format, a...); err != nil {
		panic(err)
	}
}
