package mapping

import (
	"fmt"

	"serializer-generator/internal/common"
	"serializer-generator/internal/diagnostic"
	"serializer-generator/internal/model"
)

// Validate checks the description for structural problems before any
// graph is built. Errors make Build refuse the description; warnings
// are advisory.
func (f *File) Validate() diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	defined := make(map[string]string, len(f.Types))
	for _, td := range f.Types {
		if td.Name == "" {
			diags.AddError("unnamed-type", "type definition without a name", "", "")
			continue
		}

		if _, ok := defined[td.Name]; ok {
			diags.AddError("duplicate-type", fmt.Sprintf("type %q defined twice", td.Name), "", td.Name)
		}

		defined[td.Name] = td.Shape
	}

	for _, td := range f.Types {
		validateType(&diags, defined, td)
	}

	keys := make(map[string]bool, len(f.Roots))
	for _, rd := range f.Roots {
		validateRoot(&diags, defined, rd)

		if keys[rd.Key] {
			diags.AddWarning("duplicate-root-key", fmt.Sprintf("root key %q declared twice", rd.Key), rd.Key, "")
		}

		keys[rd.Key] = true
	}

	for _, tr := range f.Supported {
		if tr.Type == "" {
			diags.AddError("unnamed-supported", "supported entry without a type", "", "")
		}
	}

	return diags
}

func validateType(diags *diagnostic.Diagnostics, defined map[string]string, td TypeDef) {
	kind := shapeKind(td.Shape)
	if kind == 0 {
		diags.AddError("unknown-shape", fmt.Sprintf("type %q has unknown shape %q", td.Name, td.Shape), "", td.Name)
		return
	}

	for _, fd := range td.Fields {
		if fd.Name == "" {
			diags.AddError("unnamed-field", fmt.Sprintf("type %q has a field without a name", td.Name), "", td.Name)
		}

		if _, ok := defined[fd.Type]; !ok {
			diags.AddError("unknown-type", fmt.Sprintf("field %q references undefined type %q", fd.Name, fd.Type), "", td.Name+"."+fd.Name)
		}
	}

	if kind != model.KindElement && !common.IsEmpty(td.Fields) {
		first, _ := common.First(td.Fields)
		diags.AddWarning("ignored-fields", fmt.Sprintf("shape %q ignores fields (first: %q)", td.Shape, first.Name), "", td.Name)
	}

	switch kind {
	case model.KindArray:
		if td.Item == "" {
			diags.AddError("missing-item", fmt.Sprintf("array type %q has no item", td.Name), "", td.Name)
		} else if _, ok := defined[td.Item]; !ok {
			diags.AddError("unknown-type", fmt.Sprintf("array item references undefined type %q", td.Item), "", td.Name)
		}
	case model.KindChoice:
		if common.IsEmpty(td.Arms) {
			diags.AddError("missing-arms", fmt.Sprintf("choice type %q has no arms", td.Name), "", td.Name)
		}

		for _, arm := range td.Arms {
			if _, ok := defined[arm]; !ok {
				diags.AddError("unknown-type", fmt.Sprintf("choice arm references undefined type %q", arm), "", td.Name)
			}
		}
	case model.KindEnum:
		if common.IsEmpty(td.Values) {
			diags.AddError("missing-values", fmt.Sprintf("enum type %q has no values", td.Name), "", td.Name)
		}
	}
}

func validateRoot(diags *diagnostic.Diagnostics, defined map[string]string, rd RootDef) {
	if rd.Key == "" {
		diags.AddError("unnamed-root", "root mapping without a key", "", "")
	}

	shape, known := defined[rd.Type]

	if rd.Type == "" {
		diags.AddError("missing-root-type", "root mapping without a type", rd.Key, "")
	} else if !known {
		diags.AddError("unknown-type", fmt.Sprintf("root references undefined type %q", rd.Type), rd.Key, "")
	}

	// Any-roots dispatch on every element, so they alone may omit the
	// element name.
	if rd.Element == "" && known && shape != "any" {
		diags.AddError("missing-element", "root mapping without an element name", rd.Key, "")
	}
}
