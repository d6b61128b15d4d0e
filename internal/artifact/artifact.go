package artifact

// Op is one abstract instruction of a procedure body. Ops delegate to the
// reader/writer primitives by code; Args carry literal operands such as
// names, namespaces, or callee procedure names.
type Op struct {
	Code string
	Args []string
}

// Procedure is a named generated routine. Name and Sig are fixed at
// allocation; Body is filled exactly once when the owning mapping's
// generation completes.
type Procedure struct {
	Name string
	Sig  Signature
	Body []Op
}

// Class is a class-like generated artifact: a named constructible unit
// with member procedures. The constructor, when present, takes no
// arguments and is invoked for every fresh instance.
type Class struct {
	Name string
	// Extends names the pre-existing base artifact, empty for roots.
	Extends     string
	Constructor *Procedure

	methods []*Procedure
	byName  map[string]*Procedure
}

// NewClass creates an empty class artifact.
func NewClass(name, extends string) *Class {
	return &Class{
		Name:    name,
		Extends: extends,
		byName:  make(map[string]*Procedure),
	}
}

// AddMethod registers a member procedure. Adding a second procedure under
// an existing name is a generator bug and fails with a ConsistencyError.
func (c *Class) AddMethod(p *Procedure) error {
	if _, ok := c.byName[p.Name]; ok {
		return &ConsistencyError{
			Scope:  c.Name,
			Name:   p.Name,
			Detail: "method registered twice",
		}
	}

	c.methods = append(c.methods, p)
	c.byName[p.Name] = p

	return nil
}

// Method returns the member procedure with the given name.
func (c *Class) Method(name string) (*Procedure, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Methods returns member procedures in registration order.
func (c *Class) Methods() []*Procedure { return c.methods }

// Table records every class-like artifact of one generation run by name,
// so later steps can reference constructors and methods of earlier ones.
type Table struct {
	classes map[string]*Class
	order   []string
}

// NewTable returns an empty artifact table.
func NewTable() *Table {
	return &Table{classes: make(map[string]*Class)}
}

// Add registers a class artifact. Names are unique for the whole run;
// a colliding registration fails with a ConsistencyError.
func (t *Table) Add(c *Class) error {
	if _, ok := t.classes[c.Name]; ok {
		return &ConsistencyError{
			Scope:  "artifact table",
			Name:   c.Name,
			Detail: "class registered twice",
		}
	}

	t.classes[c.Name] = c
	t.order = append(t.order, c.Name)

	return nil
}

// Class returns the registered class with the given name.
func (t *Table) Class(name string) (*Class, bool) {
	c, ok := t.classes[name]
	return c, ok
}

// Classes returns all registered classes in registration order.
func (t *Table) Classes() []*Class {
	out := make([]*Class, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.classes[name])
	}

	return out
}

// Len returns the number of registered classes.
func (t *Table) Len() int { return len(t.order) }
