package lispy

// ---- builtin dispatch ---------------------------------------------------

// Callable is the capability a Function value carries: one native operation
// invoked with the global environment and an owned argument bundle. Invoke
// must fully consume args (including on every error path) and return exactly
// one owned Value. Builtins are opaque: no introspection beyond Name.
type Callable interface {
	Name() string
	Invoke(e *Env, args Value) Value
}

// builtinFn adapts a plain Go function into a Callable.
type builtinFn struct {
	name string
	fn   func(*Env, Value) Value
}

func (b *builtinFn) Name() string                    { return b.name }
func (b *builtinFn) Invoke(e *Env, args Value) Value { return b.fn(e, args) }

// Registry is the explicit name→implementation table for builtins. It is
// built once at startup and installed into an Env as Function values; there
// is no dynamic reflection anywhere in dispatch.
type Registry struct {
	names []string
	table map[string]Callable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{table: make(map[string]Callable)}
}

// Register adds fn under name. Re-registering a name replaces the
// implementation but keeps its original position in the install order.
func (r *Registry) Register(name string, fn func(*Env, Value) Value) {
	if _, ok := r.table[name]; !ok {
		r.names = append(r.names, name)
	}
	r.table[name] = &builtinFn{name: name, fn: fn}
}

// Lookup resolves name to a Function value, or an Unknown function error
// value when the name was never registered.
func (r *Registry) Lookup(name string) Value {
	c, ok := r.table[name]
	if !ok {
		return errUnknownFunction(name)
	}
	return FunVal(c)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Install binds every registered builtin into e as a Function value.
func (r *Registry) Install(e *Env) {
	for _, name := range r.names {
		e.Put(name, FunVal(r.table[name]))
	}
}

// Builtins returns the standard library table: list manipulation, variable
// definition, and arithmetic (symbolic operators plus their spelled-out
// aliases).
func Builtins() *Registry {
	r := NewRegistry()

	// List functions
	r.Register("list", builtinList)
	r.Register("head", builtinHead)
	r.Register("tail", builtinTail)
	r.Register("eval", builtinEval)
	r.Register("join", builtinJoin)
	r.Register("cons", builtinCons)
	r.Register("len", builtinLen)
	r.Register("init", builtinInit)
	r.Register("def", builtinDef)

	// Mathematical functions
	r.Register("+", numericOp("+"))
	r.Register("-", numericOp("-"))
	r.Register("*", numericOp("*"))
	r.Register("/", numericOp("/"))
	r.Register("%", numericOp("%"))
	r.Register("add", numericOp("+"))
	r.Register("sub", numericOp("-"))
	r.Register("mul", numericOp("*"))
	r.Register("div", numericOp("/"))
	r.Register("mod", numericOp("%"))

	return r
}

// NewRuntimeEnv returns a fresh global environment with the standard builtins
// installed. It lives for the host's lifetime and is mutated only by def.
func NewRuntimeEnv() *Env {
	e := NewEnv()
	Builtins().Install(e)
	return e
}
