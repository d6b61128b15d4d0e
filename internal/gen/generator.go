package gen

import (
	"fmt"
	"strconv"

	"serializer-generator/internal/artifact"
	"serializer-generator/internal/contract"
	"serializer-generator/internal/diagnostic"
	"serializer-generator/internal/emit"
	"serializer-generator/internal/model"
	"serializer-generator/internal/session"
)

// Config holds configuration for a generation run.
type Config struct {
	// ReaderBase is the pre-existing reader artifact the generated
	// reader class extends.
	ReaderBase string
	// WriterBase is the pre-existing writer artifact the generated
	// writer class extends.
	WriterBase string
	// Validate enables signature validation in the identifier allocator.
	Validate bool
}

// DefaultConfig returns the default run configuration.
func DefaultConfig() Config {
	return Config{
		ReaderBase: "XmlSerializationReader",
		WriterBase: "XmlSerializationWriter",
		Validate:   true,
	}
}

// Generator runs serializer-contract generation. A Generator is
// stateless between runs; all mutable registries live in per-run
// sessions, so independent runs may use independent Generators
// concurrently.
type Generator struct {
	cfg    Config
	reader session.Emitter
	writer session.Emitter
}

// NewGenerator creates a Generator using the default shape emitters.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg:    cfg,
		reader: emit.NewReader(),
		writer: emit.NewWriter(),
	}
}

// NewGeneratorWithEmitters creates a Generator with caller-supplied
// per-mapping emitters.
func NewGeneratorWithEmitters(cfg Config, reader, writer session.Emitter) *Generator {
	return &Generator{cfg: cfg, reader: reader, writer: writer}
}

// Result is the output of a completed run.
type Result struct {
	// Contract is the assembled registry.
	Contract *contract.Contract
	// Diagnostics contains non-fatal findings from the run.
	Diagnostics diagnostic.Diagnostics
}

// Generate compiles the mapping graph reachable from roots into a
// serializer contract. Any generation error aborts the run; no partial
// contract is ever returned.
func (g *Generator) Generate(roots []*model.XmlMapping, supported []*model.RuntimeType) (*Result, error) {
	for _, root := range roots {
		if root.Root == nil {
			return nil, fmt.Errorf("root mapping %q has no type mapping", root.Key)
		}
	}

	alloc := artifact.NewAllocator(g.cfg.Validate)
	table := artifact.NewTable()

	writerClass := artifact.NewClass(className(table, g.cfg.WriterBase), g.cfg.WriterBase)
	if err := table.Add(writerClass); err != nil {
		return nil, err
	}

	readerClass := artifact.NewClass(className(table, g.cfg.ReaderBase), g.cfg.ReaderBase)
	if err := table.Add(readerClass); err != nil {
		return nil, err
	}

	writeCG := session.NewCodeGen(writerClass, "Write", alloc, g.writer)
	readCG := session.NewCodeGen(readerClass, "Read", alloc, g.reader)

	for _, root := range roots {
		writeCG.ReferenceMapping(root.Root)

		if !root.WriteOnly {
			readCG.ReferenceMapping(root.Root)
		}
	}

	if err := writeCG.Drain(); err != nil {
		return nil, err
	}

	if err := readCG.Drain(); err != nil {
		return nil, err
	}

	base, err := contract.BuildBase(table, readerClass.Name, writerClass.Name)
	if err != nil {
		return nil, err
	}

	var diags diagnostic.Diagnostics

	rootArtifacts := make([]contract.RootArtifacts, 0, len(roots))

	for _, root := range roots {
		writeProc, ok := writeCG.NameFor(root.Root)
		if !ok {
			return nil, fmt.Errorf("root mapping %q has no write procedure after drain", root.Key)
		}

		readProc := ""

		if !root.WriteOnly {
			readProc, ok = readCG.NameFor(root.Root)
			if !ok {
				return nil, fmt.Errorf("root mapping %q has no read procedure after drain", root.Key)
			}
		}

		class, err := contract.BuildTypedSerializer(table, base, root, readProc, writeProc)
		if err != nil {
			return nil, err
		}

		if !root.Root.Type.Serializable() {
			diags.AddWarning("undispatchable-root",
				"declared runtime type is nil, unexported, or an open generic; GetSerializer will never select this mapping",
				root.Key, "")
		}

		rootArtifacts = append(rootArtifacts, contract.RootArtifacts{
			Root:      root,
			ReadProc:  readProc,
			WriteProc: writeProc,
			Class:     class,
		})
	}

	for _, t := range supported {
		if !t.Serializable() {
			diags.AddWarning("unsupported-type",
				fmt.Sprintf("supported type %s is skipped by visibility or open-generic rules", t),
				"", "")
		}
	}

	c, err := contract.Assemble(table, rootArtifacts, supported)
	if err != nil {
		return nil, err
	}

	return &Result{Contract: c, Diagnostics: diags}, nil
}

// className returns the next free "stem<N>" class name in the table.
func className(tbl *artifact.Table, stem string) string {
	for n := 1; ; n++ {
		name := stem + strconv.Itoa(n)
		if _, taken := tbl.Class(name); !taken {
			return name
		}
	}
}
