package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a debug message to stderr. Maps, slices and json.Number
// arguments are rendered as indented JSON; values implementing fmt.Stringer
// are rendered with String.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case fmt.Stringer:
			args[i] = x.String()
		case bool, string, float64, int:
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
