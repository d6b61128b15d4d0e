package mapping

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"serializer-generator/internal/model"
)

// Load parses a YAML mapping description.
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading mapping description: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing mapping description: %w", err)
	}

	return &f, nil
}

// LoadFile parses a YAML mapping description from disk.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mapping description: %w", err)
	}
	defer fh.Close()

	return Load(fh)
}

// Bundle is the in-memory form of a mapping description: the graph, the
// root mappings in declaration order, and the supported runtime types.
type Bundle struct {
	Graph     *model.Graph
	Roots     []*model.XmlMapping
	Supported []*model.RuntimeType
}

// Build validates the description and constructs the mapping graph.
// Nodes are created in declaration order and references resolved in a
// second pass, so cyclic descriptions build naturally.
func (f *File) Build() (*Bundle, error) {
	diags := f.Validate()
	if diags.HasErrors() {
		return nil, diags.Error()
	}

	graph := model.NewGraph()
	byName := make(map[string]*model.TypeMapping, len(f.Types))
	typePool := make(map[string]*model.RuntimeType)

	for _, td := range f.Types {
		m := graph.NewMapping(shapeKind(td.Shape), typeName(td))

		if td.Type != "" {
			m.Type = runtimeType(typePool, td.Type, nil, false)
		}

		m.Values = td.Values
		byName[td.Name] = m
	}

	for _, td := range f.Types {
		m := byName[td.Name]

		for _, fd := range td.Fields {
			m.Fields = append(m.Fields, model.Field{
				Name:      fd.Name,
				Namespace: fd.Namespace,
				Mapping:   byName[fd.Type],
			})
		}

		if td.Item != "" {
			m.Item = byName[td.Item]
		}

		for _, arm := range td.Arms {
			m.Arms = append(m.Arms, byName[arm])
		}
	}

	roots := make([]*model.XmlMapping, 0, len(f.Roots))
	for _, rd := range f.Roots {
		roots = append(roots, &model.XmlMapping{
			Key:       rd.Key,
			Accessor:  model.Accessor{Name: rd.Element, Namespace: rd.Namespace},
			Root:      byName[rd.Type],
			Members:   rd.Members,
			WriteOnly: rd.WriteOnly,
		})
	}

	supported := make([]*model.RuntimeType, 0, len(f.Supported))
	for _, tr := range f.Supported {
		supported = append(supported, runtimeType(typePool, tr.Type, tr.Exported, tr.Open))
	}

	return &Bundle{Graph: graph, Roots: roots, Supported: supported}, nil
}

// typeName picks the artifact-facing name for a node: the bare runtime
// type name when declared, else the graph-local name.
func typeName(td TypeDef) string {
	if td.Type != "" {
		_, name := splitQualified(td.Type)
		return name
	}

	return td.Name
}

// runtimeType interns descriptors by qualified name. Interning matters:
// contract dispatch compares descriptors by identity, so the supported
// list and the mapping defs must share instances.
func runtimeType(pool map[string]*model.RuntimeType, qualified string, exported *bool, open bool) *model.RuntimeType {
	if t, ok := pool[qualified]; ok {
		if exported != nil {
			t.Exported = *exported
		}

		if open {
			t.Open = true
		}

		return t
	}

	pkgPath, name := splitQualified(qualified)

	t := &model.RuntimeType{
		PkgPath:  pkgPath,
		Name:     name,
		Exported: upperFirst(name),
		Open:     open,
	}

	if exported != nil {
		t.Exported = *exported
	}

	pool[qualified] = t

	return t
}

func splitQualified(s string) (pkgPath, name string) {
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[:i], s[i+1:]
	}

	return "", s
}

func upperFirst(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// shapeKind maps schema shape names onto model kinds. Validate rejects
// unknown names before Build runs.
func shapeKind(shape string) model.Kind {
	switch shape {
	case "element":
		return model.KindElement
	case "attribute":
		return model.KindAttribute
	case "array":
		return model.KindArray
	case "choice":
		return model.KindChoice
	case "any":
		return model.KindAny
	case "enum":
		return model.KindEnum
	case "primitive":
		return model.KindPrimitive
	default:
		return 0
	}
}
