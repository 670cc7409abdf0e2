package eval

// Environment maps variable names to values. It is copy-on-extend:
// Extend returns a fresh environment and never mutates the receiver,
// so a callee's bindings can never leak back into its caller. The one
// mutation in this file is the controlled back-patch inside BindSelf
// that ties a recursive closure to its own frame.
type Environment struct {
	store map[string]Value
}

func newEnvironment() *Environment {
	return &Environment{store: map[string]Value{}}
}

// Lookup resolves a name in the environment.
func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.store[name]
	return v, ok
}

// Extend returns a new environment equal to e plus name -> value,
// overriding any earlier binding for name. e itself is unmodified.
func (e *Environment) Extend(name string, value Value) *Environment {
	ne := &Environment{store: make(map[string]Value, len(e.store)+1)}
	for k, v := range e.store {
		ne.store[k] = v
	}
	ne.store[name] = value
	return ne
}

// BindSelf builds the self-referential frame for a recursive function:
// the returned environment binds fn.Name to fn, and fn.Env is set to
// that same frame, so the body can resolve its own name.
func (e *Environment) BindSelf(fn *Closure) *Environment {
	frame := e.Extend(fn.Name, fn)
	fn.Env = frame
	return frame
}
