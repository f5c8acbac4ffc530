package ds

import (
	"fmt"
)

type (
	// ErrUnreachableCode marks a branch that the surrounding invariants
	// rule out, so hitting it means a bug in the caller.
	ErrUnreachableCode struct {
		Caller string
	}
)

func (r ErrUnreachableCode) Error() string {
	return fmt.Sprintf("%s: unreachable code", r.Caller)
}
