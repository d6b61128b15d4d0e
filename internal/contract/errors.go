package contract

import "fmt"

// DuplicateKeyError reports two root mappings sharing a stable key at
// contract assembly. It is fatal and surfaced immediately.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate root mapping key %q", e.Key)
}
