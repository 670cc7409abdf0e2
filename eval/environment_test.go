package eval

import "testing"

func TestExtendDoesNotAlias(t *testing.T) {
	env := newEnvironment()
	e1 := env.Extend("x", Int(1))
	e2 := e1.Extend("x", Int(2))
	e3 := e1.Extend("y", Int(3))

	if _, ok := env.Lookup("x"); ok {
		t.Error("extending leaked a binding into the base environment")
	}
	if v, _ := e1.Lookup("x"); v != Int(1) {
		t.Errorf("e1: expected x=1, got=%v", v)
	}
	if v, _ := e2.Lookup("x"); v != Int(2) {
		t.Errorf("e2: expected x=2, got=%v", v)
	}
	if _, ok := e1.Lookup("y"); ok {
		t.Error("e3's binding is visible through e1")
	}
	if v, _ := e3.Lookup("x"); v != Int(1) {
		t.Errorf("e3: expected x=1, got=%v", v)
	}
}

func TestBindSelf(t *testing.T) {
	env := newEnvironment().Extend("x", Int(1))
	fn := &Closure{Name: "f", Param: "y"}
	frame := env.BindSelf(fn)

	if fn.Env != frame {
		t.Error("closure does not capture its own frame")
	}
	if v, ok := frame.Lookup("f"); !ok || v != Value(fn) {
		t.Error("frame does not resolve the closure's name to itself")
	}
	if v, ok := fn.Env.Lookup("f"); !ok || v != Value(fn) {
		t.Error("self-lookup through the captured environment failed")
	}
	// the enclosing bindings are still visible
	if v, _ := frame.Lookup("x"); v != Int(1) {
		t.Errorf("expected x=1, got=%v", v)
	}
	// and the defining environment is untouched
	if _, ok := env.Lookup("f"); ok {
		t.Error("BindSelf leaked the binding into the defining environment")
	}
}

func TestStore(t *testing.T) {
	s := newStore()
	if _, ok := s.Get("x"); ok {
		t.Error("fresh store should be empty")
	}
	s.Assign("x", Int(1))
	s.Assign("x", Int(2))
	if v, ok := s.Get("x"); !ok || v != Int(2) {
		t.Errorf("expected x=2, got=%v", v)
	}
}
