package session

import (
	"fmt"

	"serializer-generator/internal/artifact"
	"serializer-generator/internal/common"
	"serializer-generator/internal/model"
)

// Emitter translates one mapping node into a procedure body. It is an
// external collaborator of the generation loop.
//
// EmitBody must reserve m's procedure name (cg.Reserve) before calling
// cg.ReferenceMapping on any mapping it depends on, and define the body
// through cg.Define before returning.
type Emitter interface {
	EmitBody(cg *CodeGen, m *model.TypeMapping) error
}

// worklistBlock is the initial worklist capacity; growth doubles from
// there so large mapping graphs stay amortized.
const worklistBlock = 8

// CodeGen drives procedure generation for one direction of one run. It
// must not be shared across runs; concurrent runs construct independent
// instances.
type CodeGen struct {
	scope   *artifact.Class
	prefix  string
	alloc   *artifact.Allocator
	emitter Emitter

	names    map[model.MappingID]string
	done     map[model.MappingID]struct{}
	pending  map[model.MappingID]struct{}
	worklist []*model.TypeMapping
}

// NewCodeGen creates a generation session producing procedures into the
// scope class. prefix distinguishes the name stream, e.g. "Read" or
// "Write".
func NewCodeGen(scope *artifact.Class, prefix string, alloc *artifact.Allocator, emitter Emitter) *CodeGen {
	return &CodeGen{
		scope:   scope,
		prefix:  prefix,
		alloc:   alloc,
		emitter: emitter,
		names:   make(map[model.MappingID]string),
		done:    make(map[model.MappingID]struct{}),
		pending: make(map[model.MappingID]struct{}),
	}
}

// Scope returns the class artifact receiving generated procedures.
func (cg *CodeGen) Scope() *artifact.Class { return cg.scope }

// Prefix returns the session's name stream prefix.
func (cg *CodeGen) Prefix() string { return cg.prefix }

// ReferenceMapping records that an in-progress generation needs to invoke
// m's procedure. Unless m is already generated or already pending, it is
// queued for generation. The reserved procedure name is returned when a
// reservation exists; callers seeing ok == false may obtain a forward
// name via Reserve.
func (cg *CodeGen) ReferenceMapping(m *model.TypeMapping) (string, bool) {
	if _, generated := cg.done[m.ID()]; !generated {
		if _, queued := cg.pending[m.ID()]; !queued {
			cg.pending[m.ID()] = struct{}{}
			cg.push(m)
		}
	}

	name, ok := cg.names[m.ID()]

	return name, ok
}

// Reserve returns m's procedure name, allocating one on first call.
// Reserving before recursing into dependencies is what allows cyclic
// graphs to resolve forward references.
func (cg *CodeGen) Reserve(m *model.TypeMapping) string {
	if name, ok := cg.names[m.ID()]; ok {
		return name
	}

	name := cg.alloc.Unique(cg.scope.Name, cg.prefix) + "_" + common.SanitizeIdent(m.TypeName)
	cg.names[m.ID()] = name

	return name
}

// NameFor returns the reserved procedure name for m, if any.
func (cg *CodeGen) NameFor(m *model.TypeMapping) (string, bool) {
	name, ok := cg.names[m.ID()]
	return name, ok
}

// Generated reports whether m's body generation has completed.
func (cg *CodeGen) Generated(m *model.TypeMapping) bool {
	_, ok := cg.done[m.ID()]
	return ok
}

// GeneratedCount returns the size of the generated set.
func (cg *CodeGen) GeneratedCount() int { return len(cg.done) }

// Define creates m's procedure under its reserved name and fills its
// body. Defining the same mapping twice is a generator bug.
func (cg *CodeGen) Define(m *model.TypeMapping, sig artifact.Signature, body []artifact.Op) (*artifact.Procedure, error) {
	name := cg.Reserve(m)

	p, created, err := cg.alloc.Allocate(cg.scope.Name, name, sig)
	if err != nil {
		return nil, err
	}

	if !created {
		return nil, &artifact.ConsistencyError{
			Scope:  cg.scope.Name,
			Name:   name,
			Detail: "procedure body defined twice",
		}
	}

	p.Body = body

	if err := cg.scope.AddMethod(p); err != nil {
		return nil, err
	}

	return p, nil
}

// Helper returns the named shared helper procedure, building and
// registering it on first request. Later requests from other mappings get
// the same procedure; the allocator validates that their signatures agree.
func (cg *CodeGen) Helper(name string, sig artifact.Signature, build func() []artifact.Op) (*artifact.Procedure, error) {
	p, created, err := cg.alloc.Allocate(cg.scope.Name, name, sig)
	if err != nil {
		return nil, err
	}

	if created {
		p.Body = build()

		if err := cg.scope.AddMethod(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Drain generates bodies for pending mappings until none remain. The
// worklist is read destructively from the end and may grow while being
// traversed as emitters discover new dependencies. On the first emitter
// error the drain stops and the error propagates; no partial results are
// cleaned up because the whole run is discarded.
func (cg *CodeGen) Drain() error {
	for len(cg.worklist) > 0 {
		last := len(cg.worklist) - 1
		m := cg.worklist[last]
		cg.worklist[last] = nil
		cg.worklist = cg.worklist[:last]

		delete(cg.pending, m.ID())

		if _, ok := cg.done[m.ID()]; ok {
			continue
		}

		if err := cg.emitter.EmitBody(cg, m); err != nil {
			return fmt.Errorf("generating %s body for %s: %w", cg.prefix, m.TypeName, err)
		}

		cg.done[m.ID()] = struct{}{}
	}

	return nil
}

// push appends with explicit doubling-block growth, keeping worklist
// reallocation amortized on large graphs.
func (cg *CodeGen) push(m *model.TypeMapping) {
	if len(cg.worklist) == cap(cg.worklist) {
		grow := cap(cg.worklist) * 2
		if grow == 0 {
			grow = worklistBlock
		}

		next := make([]*model.TypeMapping, len(cg.worklist), grow)
		copy(next, cg.worklist)
		cg.worklist = next
	}

	cg.worklist = append(cg.worklist, m)
}
