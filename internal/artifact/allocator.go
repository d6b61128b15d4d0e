package artifact

import "strconv"

// Allocator hands out procedure artifacts with scope-unique names.
//
// Allocate is idempotent: the first request for a (scope, name) pair
// creates and registers the procedure, any later request returns the same
// handle. A validating allocator additionally asserts that the requested
// signature matches the stored one and fails with a ConsistencyError on
// mismatch.
type Allocator struct {
	validate bool
	scopes   map[string]*scopeNames
}

type scopeNames struct {
	procs map[string]*Procedure
	taken map[string]struct{}
	last  map[string]int
}

// NewAllocator creates an allocator. With validate set, conflicting
// re-requests fail instead of silently returning the original.
func NewAllocator(validate bool) *Allocator {
	return &Allocator{
		validate: validate,
		scopes:   make(map[string]*scopeNames),
	}
}

func (a *Allocator) scope(id string) *scopeNames {
	s, ok := a.scopes[id]
	if !ok {
		s = &scopeNames{
			procs: make(map[string]*Procedure),
			taken: make(map[string]struct{}),
			last:  make(map[string]int),
		}
		a.scopes[id] = s
	}

	return s
}

// Allocate returns the procedure registered under (scope, name), creating
// it on first request. The second return value reports whether this call
// created the procedure.
func (a *Allocator) Allocate(scope, name string, sig Signature) (*Procedure, bool, error) {
	s := a.scope(scope)

	if p, ok := s.procs[name]; ok {
		if a.validate && !p.Sig.Equal(sig) {
			return nil, false, &ConsistencyError{
				Scope:  scope,
				Name:   name,
				Detail: "signature mismatch: have " + p.Sig.String() + ", want " + sig.String(),
			}
		}

		return p, false, nil
	}

	p := &Procedure{Name: name, Sig: sig}
	s.procs[name] = p
	s.taken[name] = struct{}{}

	return p, true, nil
}

// Unique returns the next free "stem<N>" name in the scope and marks it
// taken. Counters run per stem, so Read and Write streams number
// independently.
func (a *Allocator) Unique(scope, stem string) string {
	s := a.scope(scope)

	for {
		s.last[stem]++
		name := stem + strconv.Itoa(s.last[stem])

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
