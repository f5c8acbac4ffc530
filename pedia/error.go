package pedia

import (
	"fmt"
)

type (
	ErrDestinationUnwritable struct {
		Path   string
		Reason error
	}
)

func (r ErrDestinationUnwritable) Error() string {
	return fmt.Sprintf(`unable to write artifact "%s": %v`, r.Path, r.Reason)
}
