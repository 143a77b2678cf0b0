//go:build eztestseq

package eztest

import (
	"fmt"
	"reflect"
	"strings"
)

// formatValue renders an assertion operand for a failure message. In this
// build variant, slices and arrays render as a brace-enclosed comma-separated
// list, e.g. {1,2,3}.
func formatValue(value interface{}) string {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		var sb strings.Builder
		sb.WriteByte('{')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%v", rv.Index(i).Interface())
		}
		sb.WriteByte('}')
		return sb.String()
	}
	return fmt.Sprintf("%v", value)
}
