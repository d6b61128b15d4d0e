package session

import (
	"fmt"

	"serializer-generator/internal/model"
)

// UnsupportedShapeError reports a mapping whose shape the emitter cannot
// translate. It is fatal for the run and never retried; mapping errors
// are not transient.
type UnsupportedShapeError struct {
	Kind     model.Kind
	TypeName string
	Reason   string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unsupported shape %s for %s: %s", e.Kind, e.TypeName, e.Reason)
}
