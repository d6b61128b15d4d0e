package artifact

import (
	"strings"

	"serializer-generator/internal/common"
)

// Visibility of a generated member.
type Visibility int

const (
	// Public members are callable from outside their artifact.
	Public Visibility = iota
	// Private members are internal helpers.
	Private
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Private:
		return "private"
	default:
		return common.UnknownStr
	}
}

// Signature describes a procedure's parameter shapes, result shapes, and
// visibility. Shapes are type names; signatures compare exactly.
type Signature struct {
	Params     []string
	Results    []string
	Visibility Visibility
}

// Equal reports exact signature equality.
func (s Signature) Equal(o Signature) bool {
	if s.Visibility != o.Visibility {
		return false
	}

	if len(s.Params) != len(o.Params) || len(s.Results) != len(o.Results) {
		return false
	}

	for i := range s.Params {
		if s.Params[i] != o.Params[i] {
			return false
		}
	}

	for i := range s.Results {
		if s.Results[i] != o.Results[i] {
			return false
		}
	}

	return true
}

// String renders the signature, e.g. "(XmlReader) (Library, error) public".
func (s Signature) String() string {
	var sb strings.Builder

	sb.WriteByte('(')
	sb.WriteString(strings.Join(s.Params, ", "))
	sb.WriteString(") (")
	sb.WriteString(strings.Join(s.Results, ", "))
	sb.WriteString(") ")
	sb.WriteString(s.Visibility.String())

	return sb.String()
}
