package eval

// Store is the second half of the binding model: a mutable map used
// only by assignment (:=). The first := to a declared name promotes it
// into the store; later assignments update the cell in place. Name
// reads resolve through the Environment alone, so the store is a side
// channel observable via the assignment expression's own value.
type Store struct {
	cells map[string]Value
}

func newStore() *Store {
	return &Store{cells: map[string]Value{}}
}

// Assign promotes or updates the cell for name. The caller is
// responsible for checking that name is a declared variable.
func (s *Store) Assign(name string, value Value) {
	s.cells[name] = value
}

// Get reads a cell, if name was ever assigned.
func (s *Store) Get(name string) (Value, bool) {
	v, ok := s.cells[name]
	return v, ok
}
