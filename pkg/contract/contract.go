// pkg/contract/contract.go

package contract

import "fmt"

// Assert triggers a runtime error with the given message if the condition is false.
// Use it for invariants only the package's own code can break.
func Assert(condition bool, msg string) {
	if !condition {
		panic(fmt.Sprintf("Contract violation: %s", msg))
	}
}

// Check returns an error built from format and args if the condition is false,
// and nil otherwise. Use it for invariants over caller-supplied data.
func Check(condition bool, format string, args ...any) error {
	if condition {
		return nil
	}
	return fmt.Errorf(format, args...)
}
