package emit

import (
	"serializer-generator/internal/artifact"
	"serializer-generator/internal/common"
	"serializer-generator/internal/model"
	"serializer-generator/internal/session"
)

// Direction selects which half of a serializer a ShapeEmitter produces.
type Direction int

const (
	// DirWrite produces serialization procedures.
	DirWrite Direction = iota
	// DirRead produces deserialization procedures.
	DirRead
)

// ShapeEmitter is the default emitter for the fixed shape vocabulary.
type ShapeEmitter struct {
	dir Direction
}

// NewWriter returns an emitter producing write procedure bodies.
func NewWriter() *ShapeEmitter { return &ShapeEmitter{dir: DirWrite} }

// NewReader returns an emitter producing read procedure bodies.
func NewReader() *ShapeEmitter { return &ShapeEmitter{dir: DirRead} }

// EmitBody reserves m's name, builds the body for m's shape, and defines
// the procedure. Composite shapes reference their dependencies through
// the session, queuing them for later drain iterations.
func (e *ShapeEmitter) EmitBody(cg *session.CodeGen, m *model.TypeMapping) error {
	cg.Reserve(m)

	var (
		body []artifact.Op
		err  error
	)

	switch m.Kind {
	case model.KindElement:
		body, err = e.elementBody(cg, m)
	case model.KindArray:
		body, err = e.arrayBody(cg, m)
	case model.KindChoice:
		body, err = e.choiceBody(cg, m)
	case model.KindEnum:
		body, err = e.enumBody(cg, m)
	case model.KindAny:
		body = []artifact.Op{{Code: e.op("any")}}
	case model.KindPrimitive:
		body = []artifact.Op{{Code: e.op("text"), Args: []string{m.TypeName}}}
	default:
		err = &session.UnsupportedShapeError{
			Kind:     m.Kind,
			TypeName: m.TypeName,
			Reason:   "shape has no standalone procedure",
		}
	}

	if err != nil {
		return err
	}

	_, err = cg.Define(m, e.signature(m), body)

	return err
}

// signature returns the procedure signature for m's generated routine.
// Write procedures consume a value, read procedures produce one.
func (e *ShapeEmitter) signature(m *model.TypeMapping) artifact.Signature {
	if e.dir == DirWrite {
		return artifact.Signature{Params: []string{m.TypeName}, Visibility: artifact.Private}
	}

	return artifact.Signature{Results: []string{m.TypeName}, Visibility: artifact.Private}
}

// op prefixes an op code with the emitter's direction.
func (e *ShapeEmitter) op(code string) string {
	if e.dir == DirWrite {
		return "write." + code
	}

	return "read." + code
}

func (e *ShapeEmitter) elementBody(cg *session.CodeGen, m *model.TypeMapping) ([]artifact.Op, error) {
	body := []artifact.Op{{Code: e.op("start"), Args: []string{m.TypeName}}}

	// Attributes precede child elements in the document order the
	// reader/writer primitives expect.
	for _, f := range m.Fields {
		if f.Mapping == nil {
			return nil, &session.UnsupportedShapeError{
				Kind:     m.Kind,
				TypeName: m.TypeName,
				Reason:   "field " + f.Name + " has no mapping",
			}
		}

		if f.Mapping.Kind == model.KindAttribute {
			body = append(body, artifact.Op{
				Code: e.op("attr"),
				Args: []string{f.Name, f.Namespace, f.Mapping.TypeName},
			})
		}
	}

	for _, f := range m.Fields {
		if f.Mapping.Kind == model.KindAttribute {
			continue
		}

		ops, err := e.memberOps(cg, f)
		if err != nil {
			return nil, err
		}

		body = append(body, ops...)
	}

	return append(body, artifact.Op{Code: e.op("end")}), nil
}

// memberOps emits one child element member: scalar leaves inline, any
// content passes through, composite members call their own procedure.
func (e *ShapeEmitter) memberOps(cg *session.CodeGen, f model.Field) ([]artifact.Op, error) {
	switch f.Mapping.Kind {
	case model.KindPrimitive:
		return []artifact.Op{{
			Code: e.op("element.text"),
			Args: []string{f.Name, f.Namespace, f.Mapping.TypeName},
		}}, nil
	case model.KindAny:
		return []artifact.Op{{Code: e.op("any"), Args: []string{f.Name}}}, nil
	default:
		return []artifact.Op{{
			Code: "call",
			Args: []string{e.refName(cg, f.Mapping), f.Name, f.Namespace},
		}}, nil
	}
}

func (e *ShapeEmitter) arrayBody(cg *session.CodeGen, m *model.TypeMapping) ([]artifact.Op, error) {
	if m.Item == nil {
		return nil, &session.UnsupportedShapeError{
			Kind:     m.Kind,
			TypeName: m.TypeName,
			Reason:   "array mapping has no item",
		}
	}

	body := []artifact.Op{{Code: e.op("iterate"), Args: []string{m.Item.TypeName}}}

	if m.Item.Kind == model.KindPrimitive {
		body = append(body, artifact.Op{Code: e.op("item.text"), Args: []string{m.Item.TypeName}})
	} else {
		body = append(body, artifact.Op{Code: "call", Args: []string{e.refName(cg, m.Item)}})
	}

	return body, nil
}

func (e *ShapeEmitter) choiceBody(cg *session.CodeGen, m *model.TypeMapping) ([]artifact.Op, error) {
	if len(m.Arms) == 0 {
		return nil, &session.UnsupportedShapeError{
			Kind:     m.Kind,
			TypeName: m.TypeName,
			Reason:   "choice mapping has no arms",
		}
	}

	var body []artifact.Op

	for _, arm := range m.Arms {
		body = append(body, artifact.Op{Code: e.op("case"), Args: []string{arm.TypeName}})

		if arm.Kind == model.KindPrimitive {
			body = append(body, artifact.Op{Code: e.op("text"), Args: []string{arm.TypeName}})
			continue
		}

		body = append(body, artifact.Op{Code: "call", Args: []string{e.refName(cg, arm)}})
	}

	return body, nil
}

// enumBody routes the textual conversion through a per-type value-table
// helper. The helper is requested idempotently, so any number of enum
// mappings over the same type share one table.
func (e *ShapeEmitter) enumBody(cg *session.CodeGen, m *model.TypeMapping) ([]artifact.Op, error) {
	if len(m.Values) == 0 {
		return nil, &session.UnsupportedShapeError{
			Kind:     m.Kind,
			TypeName: m.TypeName,
			Reason:   "enum mapping has no values",
		}
	}

	helperName := "Get" + common.SanitizeIdent(m.TypeName) + "Values"
	helperSig := artifact.Signature{Results: []string{"[]string"}, Visibility: artifact.Private}

	helper, err := cg.Helper(helperName, helperSig, func() []artifact.Op {
		ops := make([]artifact.Op, 0, len(m.Values))
		for _, v := range m.Values {
			ops = append(ops, artifact.Op{Code: "enum.value", Args: []string{v}})
		}

		return ops
	})
	if err != nil {
		return nil, err
	}

	return []artifact.Op{
		{Code: "call", Args: []string{helper.Name}},
		{Code: e.op("enum"), Args: []string{m.TypeName}},
	}, nil
}

// refName returns the dependency's procedure name, reserving a forward
// name when its own generation has not reached it yet.
func (e *ShapeEmitter) refName(cg *session.CodeGen, dep *model.TypeMapping) string {
	if name, ok := cg.ReferenceMapping(dep); ok {
		return name
	}

	return cg.Reserve(dep)
}
