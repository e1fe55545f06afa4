package main

import (
	"errors"
	"testing"

	chemops "github.com/moleculab/go-chemops"
)

func TestParseAtomRef(t *testing.T) {
	tests := []struct {
		in      string
		want    chemops.AtomRef
		wantErr error
	}{
		{"C1", chemops.AtomRef{Position: 1, Element: "C"}, nil},
		{"Cl12", chemops.AtomRef{Position: 12, Element: "Cl"}, nil},
		{"N5", chemops.AtomRef{Position: 5, Element: "N"}, nil},
		{"C0", chemops.AtomRef{}, ErrInvalidRef}, // positions are 1-based
		{"c1", chemops.AtomRef{}, ErrInvalidRef},
		{"C", chemops.AtomRef{}, ErrInvalidRef},
		{"1C", chemops.AtomRef{}, ErrInvalidRef},
		{"", chemops.AtomRef{}, ErrInvalidRef},
		{"CL1", chemops.AtomRef{}, ErrInvalidRef},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseAtomRef(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseAtomRef(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseAtomRef(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBondRef(t *testing.T) {
	got, err := parseBondRef("C1-O2")
	if err != nil {
		t.Fatalf("parseBondRef: %v", err)
	}
	want := chemops.BondRef{
		From: chemops.AtomRef{Position: 1, Element: "C"},
		To:   chemops.AtomRef{Position: 2, Element: "O"},
	}
	if got != want {
		t.Errorf("parseBondRef = %+v, want %+v", got, want)
	}

	for _, in := range []string{"C1", "C1-", "-C2", "C1-x2"} {
		if _, err := parseBondRef(in); !errors.Is(err, ErrInvalidRef) {
			t.Errorf("parseBondRef(%q) err = %v, want ErrInvalidRef", in, err)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr error
	}{
		{"#ff0000", 0xff0000, nil},
		{"0x00ff00", 0x00ff00, nil},
		{"0000ff", 0x0000ff, nil},
		{"#FFAA00", 0xffaa00, nil},
		{"#fff", 0, ErrInvalidColor},
		{"#gggggg", 0, ErrInvalidColor},
		{"", 0, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColor(tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("parseColor(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseColor(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseLabelSpec(t *testing.T) {
	got, err := parseLabelSpec("C1=A:#ff0000")
	if err != nil {
		t.Fatalf("parseLabelSpec: %v", err)
	}
	want := chemops.AtomLabel{
		Atom:  chemops.AtomRef{Position: 1, Element: "C"},
		Text:  "A",
		Color: 0xff0000,
	}
	if got != want {
		t.Errorf("parseLabelSpec = %+v, want %+v", got, want)
	}
}

func TestParseLabelSpec_TextWithColon(t *testing.T) {
	got, err := parseLabelSpec("N2=site:active:#00ff00")
	if err != nil {
		t.Fatalf("parseLabelSpec: %v", err)
	}
	if got.Text != "site:active" {
		t.Errorf("Text = %q, want %q", got.Text, "site:active")
	}
	if got.Color != 0x00ff00 {
		t.Errorf("Color = %#x, want 0x00ff00", got.Color)
	}
}

func TestParseLabelSpec_Invalid(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"C1", ErrInvalidSpec},           // no =
		{"C1=A", ErrInvalidSpec},         // no color
		{"C1=A:#ggg", ErrInvalidColor},   // bad color
		{"x=A:#ff0000", ErrInvalidRef},   // bad ref
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if _, err := parseLabelSpec(tt.in); !errors.Is(err, tt.wantErr) {
				t.Errorf("parseLabelSpec(%q) err = %v, want %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestParseAtomSetSpec(t *testing.T) {
	got, err := parseAtomSetSpec("C1, C2 ,O3=#ff0000")
	if err != nil {
		t.Fatalf("parseAtomSetSpec: %v", err)
	}
	if got.Color != 0xff0000 {
		t.Errorf("Color = %#x", got.Color)
	}
	want := []chemops.AtomRef{{Position: 1, Element: "C"}, {Position: 2, Element: "C"}, {Position: 3, Element: "O"}}
	if len(got.Members) != len(want) {
		t.Fatalf("Members = %+v, want %+v", got.Members, want)
	}
	for i := range want {
		if got.Members[i] != want[i] {
			t.Errorf("Members[%d] = %+v, want %+v", i, got.Members[i], want[i])
		}
	}

	if _, err := parseAtomSetSpec("C1,C2"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("missing color err = %v, want ErrInvalidSpec", err)
	}
}

func TestParseBondSetSpec(t *testing.T) {
	got, err := parseBondSetSpec("C1-C2,C2-O3=#0000ff")
	if err != nil {
		t.Fatalf("parseBondSetSpec: %v", err)
	}
	if got.Color != 0x0000ff || len(got.Members) != 2 {
		t.Fatalf("set = %+v", got)
	}
	if got.Members[1].To != (chemops.AtomRef{Position: 3, Element: "O"}) {
		t.Errorf("Members[1].To = %+v", got.Members[1].To)
	}

	if _, err := parseBondSetSpec("C1-C2=#ggg"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("bad color err = %v, want ErrInvalidColor", err)
	}
}
