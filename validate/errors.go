package validate

import "fmt"

// invariant panics with msg if cond is false. It guards bugs in the
// canceller-accounting machinery, never puzzle input: a malformed path
// or an unsatisfied puzzle constraint is reported by IsSolution returning
// false, not by panicking.
func invariant(cond bool, msg string) {
	if !cond {
		panic(fmt.Sprintf("validate: invariant violated: %s", msg))
	}
}
