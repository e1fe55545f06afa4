package chemops

// Molecule is a call-local topology snapshot of a parsed structure:
// element symbols in atom order plus an undirected bond relation. It
// exists only to validate annotation references; all structural
// chemistry stays inside the engine.
type Molecule struct {
	symbols []string
	bonds   map[bondKey]struct{}
}

// bondKey is an undirected atom pair, stored with a <= b (1-based).
type bondKey struct {
	a, b int
}

func newBondKey(a, b int) bondKey {
	if a > b {
		a, b = b, a
	}
	return bondKey{a: a, b: b}
}

// NewMolecule builds a Molecule from element symbols in atom order and
// bonds given as 1-based atom-position pairs. Bonds referencing atoms
// outside the symbol list are dropped.
func NewMolecule(symbols []string, bonds [][2]int) *Molecule {
	m := &Molecule{
		symbols: append([]string(nil), symbols...),
		bonds:   make(map[bondKey]struct{}, len(bonds)),
	}
	for _, b := range bonds {
		if b[0] < 1 || b[0] > len(symbols) || b[1] < 1 || b[1] > len(symbols) {
			continue
		}
		m.bonds[newBondKey(b[0], b[1])] = struct{}{}
	}
	return m
}

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int {
	return len(m.symbols)
}

// Symbol returns the element symbol at the 1-based position, and whether
// the position is in bounds.
func (m *Molecule) Symbol(position int) (string, bool) {
	if position < 1 || position > len(m.symbols) {
		return "", false
	}
	return m.symbols[position-1], true
}

// Bonded reports whether the two 1-based atom positions share a bond.
func (m *Molecule) Bonded(a, b int) bool {
	_, ok := m.bonds[newBondKey(a, b)]
	return ok
}
