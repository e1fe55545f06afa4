package chemops

import "testing"

func TestMolecule_Symbol(t *testing.T) {
	mol := NewMolecule([]string{"C", "O", "N"}, nil)

	tests := []struct {
		position int
		want     string
		ok       bool
	}{
		{1, "C", true},
		{2, "O", true},
		{3, "N", true},
		{0, "", false},
		{-1, "", false},
		{4, "", false},
	}

	for _, tt := range tests {
		got, ok := mol.Symbol(tt.position)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Symbol(%d) = %q, %v; want %q, %v", tt.position, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMolecule_Bonded(t *testing.T) {
	mol := hexRing()

	if !mol.Bonded(1, 2) {
		t.Error("Bonded(1, 2) = false, want true")
	}
	if !mol.Bonded(2, 1) {
		t.Error("Bonded(2, 1) = false, want true (bonds are undirected)")
	}
	if !mol.Bonded(6, 1) {
		t.Error("Bonded(6, 1) = false, want true (ring closure)")
	}
	if mol.Bonded(1, 4) {
		t.Error("Bonded(1, 4) = true, want false")
	}
	if mol.Bonded(1, 99) {
		t.Error("Bonded(1, 99) = true, want false")
	}
}

func TestNewMolecule_DropsOutOfRangeBonds(t *testing.T) {
	mol := NewMolecule([]string{"C", "C"}, [][2]int{{1, 2}, {0, 1}, {2, 3}})

	if mol.AtomCount() != 2 {
		t.Fatalf("AtomCount() = %d, want 2", mol.AtomCount())
	}
	if !mol.Bonded(1, 2) {
		t.Error("Bonded(1, 2) = false, want true")
	}
	if mol.Bonded(2, 3) {
		t.Error("Bonded(2, 3) = true, want false (out of range)")
	}
}

func TestNewMolecule_CopiesSymbols(t *testing.T) {
	symbols := []string{"C", "O"}
	mol := NewMolecule(symbols, nil)
	symbols[0] = "N"

	if got, _ := mol.Symbol(1); got != "C" {
		t.Errorf("Symbol(1) = %q after caller mutation, want C", got)
	}
}
