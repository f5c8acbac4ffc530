package plang

import (
	"fmt"
)

type (
	ErrSourceUnavailable struct {
		Path   string
		Reason error
	}
	ErrSourceMalformed struct {
		Path   string
		Reason error
	}
)

func (r ErrSourceUnavailable) Error() string {
	return fmt.Sprintf(`unable to read language export "%s": %v`, r.Path, r.Reason)
}

func (r ErrSourceMalformed) Error() string {
	return fmt.Sprintf(`unable to parse language export "%s": %v`, r.Path, r.Reason)
}
