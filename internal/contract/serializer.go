package contract

import (
	"strconv"

	"serializer-generator/internal/artifact"
	"serializer-generator/internal/common"
	"serializer-generator/internal/model"
)

// baseName is the shared abstract serializer artifact, built once per run.
const baseName = "XmlSerializerBase"

// BuildBase creates the abstract base artifact all typed serializers of a
// run extend. It carries the factory operations for the run's concrete
// reader and writer artifacts; typed serializers inherit the factories
// rather than naming the reader/writer classes themselves.
func BuildBase(tbl *artifact.Table, readerName, writerName string) (*artifact.Class, error) {
	base := artifact.NewClass(baseName, "")

	createReader := &artifact.Procedure{
		Name: "CreateReader",
		Sig:  artifact.Signature{Results: []string{readerName}, Visibility: artifact.Public},
		Body: []artifact.Op{{Code: "new", Args: []string{readerName}}},
	}
	if err := base.AddMethod(createReader); err != nil {
		return nil, err
	}

	createWriter := &artifact.Procedure{
		Name: "CreateWriter",
		Sig:  artifact.Signature{Results: []string{writerName}, Visibility: artifact.Public},
		Body: []artifact.Op{{Code: "new", Args: []string{writerName}}},
	}
	if err := base.AddMethod(createWriter); err != nil {
		return nil, err
	}

	if err := tbl.Add(base); err != nil {
		return nil, err
	}

	return base, nil
}

// BuildTypedSerializer produces the self-contained serializer artifact for
// one root mapping. readProc may be empty for write-only roots, in which
// case the artifact has no Deserialize member.
func BuildTypedSerializer(
	tbl *artifact.Table,
	base *artifact.Class,
	root *model.XmlMapping,
	readProc, writeProc string,
) (*artifact.Class, error) {
	name := serializerName(tbl, root.Key)

	c := artifact.NewClass(name, base.Name)
	c.Constructor = &artifact.Procedure{
		Name: name,
		Sig:  artifact.Signature{Visibility: artifact.Public},
		Body: []artifact.Op{{Code: "init", Args: []string{base.Name}}},
	}

	if err := c.AddMethod(canDeserializeProc(root)); err != nil {
		return nil, err
	}

	if err := c.AddMethod(serializeProc(root, writeProc)); err != nil {
		return nil, err
	}

	if readProc != "" {
		deserialize := &artifact.Procedure{
			Name: "Deserialize",
			Sig:  artifact.Signature{Results: []string{"any"}, Visibility: artifact.Public},
			Body: []artifact.Op{{Code: "call", Args: []string{readProc}}},
		}
		if err := c.AddMethod(deserialize); err != nil {
			return nil, err
		}
	}

	if err := tbl.Add(c); err != nil {
		return nil, err
	}

	return c, nil
}

// serializerName derives a table-unique artifact name from the root key.
// Distinct keys can sanitize to the same fragment; an ordinal suffix
// disambiguates.
func serializerName(tbl *artifact.Table, key string) string {
	stem := common.SanitizeIdent(key) + "Serializer"

	name := stem
	for n := 2; ; n++ {
		if _, taken := tbl.Class(name); !taken {
			return name
		}

		name = stem + strconv.Itoa(n)
	}
}

// canDeserializeProc is the type-match test: pure equality on the
// accessor's (local name, namespace) pair, or unconditionally true for
// any-content roots.
func canDeserializeProc(root *model.XmlMapping) *artifact.Procedure {
	sig := artifact.Signature{
		Params:     []string{"string", "string"},
		Results:    []string{"bool"},
		Visibility: artifact.Public,
	}

	if root.Any() {
		return &artifact.Procedure{
			Name: "CanDeserialize",
			Sig:  sig,
			Body: []artifact.Op{{Code: "const.true"}},
		}
	}

	return &artifact.Procedure{
		Name: "CanDeserialize",
		Sig:  sig,
		Body: []artifact.Op{{
			Code: "match.name",
			Args: []string{root.Accessor.Name, root.Accessor.Namespace},
		}},
	}
}

func serializeProc(root *model.XmlMapping, writeProc string) *artifact.Procedure {
	var body []artifact.Op

	// Members roots take one object argument but delegate in
	// array-of-object form.
	if root.Members {
		body = append(body, artifact.Op{Code: "wrap.members"})
	}

	body = append(body, artifact.Op{Code: "call", Args: []string{writeProc}})

	return &artifact.Procedure{
		Name: "Serialize",
		Sig:  artifact.Signature{Params: []string{"any"}, Visibility: artifact.Public},
		Body: body,
	}
}

// Serializer is a fresh instance of a typed-serializer artifact, handed
// out by Contract.GetSerializer.
type Serializer struct {
	class     *artifact.Class
	accessor  model.Accessor
	any       bool
	members   bool
	readProc  string
	writeProc string
}

// ArtifactName returns the name of the backing class artifact.
func (s *Serializer) ArtifactName() string { return s.class.Name }

// CanDeserialize reports whether this serializer can consume input
// starting at the given (local name, namespace) pair. Matching is exact
// equality; only any-content roots match unconditionally.
func (s *Serializer) CanDeserialize(local, ns string) bool {
	if s.any {
		return true
	}

	return local == s.accessor.Name && ns == s.accessor.Namespace
}

// WriteProcedure returns the delegate for Serialize.
func (s *Serializer) WriteProcedure() string { return s.writeProc }

// ReadProcedure returns the delegate for Deserialize; ok is false for
// write-only serializers.
func (s *Serializer) ReadProcedure() (string, bool) {
	return s.readProc, s.readProc != ""
}

// Members reports whether Serialize wraps its argument in
// array-of-object form before delegating.
func (s *Serializer) Members() bool { return s.members }
