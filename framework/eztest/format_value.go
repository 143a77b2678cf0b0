//go:build !eztestseq

package eztest

import "fmt"

// formatValue renders an assertion operand for a failure message. Build with
// -tags eztestseq for the variant that renders slices and arrays as a
// brace-enclosed list.
func formatValue(value interface{}) string {
	return fmt.Sprintf("%v", value)
}
