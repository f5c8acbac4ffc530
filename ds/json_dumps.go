package ds

import (
	"encoding/json"
	"fmt"
)

// DumpJSON renders t as two-space indented JSON for terminal output.
func DumpJSON[T any](t T) string {
	tBytes, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}

	return string(tBytes)
}
