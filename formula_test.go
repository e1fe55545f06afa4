package chemops

import (
	"errors"
	"testing"
)

func TestParseFormula(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  EmpiricalFormula
	}{
		{"acetic acid", "C2H4O2", EmpiricalFormula{"C": 2, "H": 4, "O": 2}},
		{"implicit coefficient", "CH4", EmpiricalFormula{"C": 1, "H": 4}},
		{"two letter element", "NaCl", EmpiricalFormula{"Na": 1, "Cl": 1}},
		{"fractional coefficient", "C1.5H3", EmpiricalFormula{"C": 1.5, "H": 3}},
		{"negative coefficient", "H-1", EmpiricalFormula{"H": -1}},
		{"repeated element accumulates", "CHC", EmpiricalFormula{"C": 2, "H": 1}},
		{"zero coefficient drops element", "CO0H4", EmpiricalFormula{"C": 1, "H": 4}},
		{"empty", "", EmpiricalFormula{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormula(tt.value)
			if err != nil {
				t.Fatalf("ParseFormula(%q): %v", tt.value, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseFormula(%q) = %v, want %v", tt.value, got, tt.want)
			}
			for element, coefficient := range tt.want {
				if got[element] != coefficient {
					t.Errorf("ParseFormula(%q)[%s] = %v, want %v", tt.value, element, got[element], coefficient)
				}
			}
		})
	}
}

func TestParseFormula_Invalid(t *testing.T) {
	for _, value := range []string{"c2h4", "C2 H4", "2C", "C+2"} {
		if _, err := ParseFormula(value); !errors.Is(err, ErrInvalidFormula) {
			t.Errorf("ParseFormula(%q) err = %v, want ErrInvalidFormula", value, err)
		}
	}
}

func TestMustParseFormula_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	MustParseFormula("not a formula!")
}

func TestEmpiricalFormula_Arithmetic(t *testing.T) {
	water := MustParseFormula("H2O")
	proton := MustParseFormula("H")

	protonated := water.Add(proton)
	if got := protonated.String(); got != "H3O" {
		t.Errorf("Add = %q, want H3O", got)
	}

	back := protonated.Sub(proton)
	if got := back.String(); got != "H2O" {
		t.Errorf("Sub = %q, want H2O", got)
	}

	none := water.Sub(water)
	if len(none) != 0 {
		t.Errorf("Sub(self) = %v, want empty (zero coefficients removed)", none)
	}

	double := water.Mul(2)
	if got := double.String(); got != "H4O2" {
		t.Errorf("Mul = %q, want H4O2", got)
	}
}

func TestEmpiricalFormula_String(t *testing.T) {
	tests := []struct {
		name    string
		formula EmpiricalFormula
		want    string
	}{
		{"sorted terms", EmpiricalFormula{"O": 2, "C": 2, "H": 4}, "C2H4O2"},
		{"coefficient one omitted", EmpiricalFormula{"C": 1, "H": 4}, "CH4"},
		{"fractional kept", EmpiricalFormula{"C": 1.5}, "C1.5"},
		{"empty", EmpiricalFormula{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formula.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEmpiricalFormula_SetInvalidElement(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid element")
		}
	}()
	EmpiricalFormula{}.Set("c", 1)
}
