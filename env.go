package lispy

// binding is one (name, owned Value) pair in an Env.
type binding struct {
	name string
	val  Value
}

// Env is the global symbol table: an ordered set of (name, owned Value) pairs
// with unique names, scanned linearly in insertion order. There is no parent
// chain; the interpreter has a single flat scope. The environment owns every
// stored Value outright, so values cross the boundary by deep copy in both
// directions.
type Env struct {
	bindings []binding
}

// NewEnv creates an empty environment.
func NewEnv() *Env { return &Env{} }

// Get returns a copy of the value bound to name, or an unbound-symbol error
// value when no binding exists. Get never mutates the environment.
func (e *Env) Get(name string) Value {
	for i := range e.bindings {
		if e.bindings[i].name == name {
			return e.bindings[i].val.Copy()
		}
	}
	return errUnbound(name)
}

// Put binds name to a copy of v, replacing an existing binding in place or
// appending a new one. The caller keeps ownership of v.
func (e *Env) Put(name string, v Value) {
	for i := range e.bindings {
		if e.bindings[i].name == name {
			e.bindings[i].val = v.Copy()
			return
		}
	}
	e.bindings = append(e.bindings, binding{name: name, val: v.Copy()})
}

// Len reports the number of bindings.
func (e *Env) Len() int { return len(e.bindings) }

// Names returns the bound names in insertion order.
func (e *Env) Names() []string {
	out := make([]string, len(e.bindings))
	for i := range e.bindings {
		out[i] = e.bindings[i].name
	}
	return out
}
