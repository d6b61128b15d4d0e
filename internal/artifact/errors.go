package artifact

import "fmt"

// ConsistencyError reports an artifact re-requested or re-registered with
// conflicting shape. It indicates a generator bug and aborts the run.
type ConsistencyError struct {
	Scope  string
	Name   string
	Detail string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("artifact consistency: %s.%s: %s", e.Scope, e.Name, e.Detail)
}
