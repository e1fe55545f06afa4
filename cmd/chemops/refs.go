package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	chemops "github.com/moleculab/go-chemops"
)

// Sentinel errors for annotation flag parsing.
var (
	ErrInvalidRef   = errors.New("invalid atom reference")
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidSpec  = errors.New("invalid annotation spec")
)

// atomRefRe matches an element symbol followed by a 1-based atom
// position, e.g. "C1", "Cl12".
var atomRefRe = regexp.MustCompile(`^([A-Z][a-z]?)([0-9]+)$`)

// parseAtomRef parses "C1" into an AtomRef.
func parseAtomRef(s string) (chemops.AtomRef, error) {
	m := atomRefRe.FindStringSubmatch(s)
	if m == nil {
		return chemops.AtomRef{}, fmt.Errorf("%w: %q (want element+position, e.g. C1)", ErrInvalidRef, s)
	}
	position, err := strconv.Atoi(m[2])
	if err != nil || position < 1 {
		return chemops.AtomRef{}, fmt.Errorf("%w: %q", ErrInvalidRef, s)
	}
	return chemops.AtomRef{Position: position, Element: m[1]}, nil
}

// parseBondRef parses "C1-C2" into a BondRef.
func parseBondRef(s string) (chemops.BondRef, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return chemops.BondRef{}, fmt.Errorf("%w: %q (want two atoms, e.g. C1-C2)", ErrInvalidRef, s)
	}
	fromRef, err := parseAtomRef(from)
	if err != nil {
		return chemops.BondRef{}, err
	}
	toRef, err := parseAtomRef(to)
	if err != nil {
		return chemops.BondRef{}, err
	}
	return chemops.BondRef{From: fromRef, To: toRef}, nil
}

// parseColor parses "#ff0000", "0xff0000", or "ff0000" into a packed RGB
// integer.
func parseColor(s string) (int, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x")
	if len(hex) != 6 {
		return 0, fmt.Errorf("%w: %q (want 6 hex digits)", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return int(v), nil
}

// parseLabelSpec parses one --label value: "<ref>=<text>:<color>",
// e.g. "C1=A:#ff0000".
func parseLabelSpec(s string) (chemops.AtomLabel, error) {
	refPart, rest, ok := strings.Cut(s, "=")
	if !ok {
		return chemops.AtomLabel{}, fmt.Errorf("%w: %q (want ref=text:color)", ErrInvalidSpec, s)
	}
	ref, err := parseAtomRef(refPart)
	if err != nil {
		return chemops.AtomLabel{}, err
	}
	// The label text may contain ':'; the color is after the last one.
	i := strings.LastIndex(rest, ":")
	if i < 0 {
		return chemops.AtomLabel{}, fmt.Errorf("%w: %q (missing color)", ErrInvalidSpec, s)
	}
	color, err := parseColor(rest[i+1:])
	if err != nil {
		return chemops.AtomLabel{}, err
	}
	return chemops.AtomLabel{Atom: ref, Text: rest[:i], Color: color}, nil
}

// parseAtomSetSpec parses one --atom-set value: "<ref>,...=<color>",
// e.g. "C1,C2,C3=#ff0000".
func parseAtomSetSpec(s string) (chemops.AtomSet, error) {
	refsPart, colorPart, ok := strings.Cut(s, "=")
	if !ok {
		return chemops.AtomSet{}, fmt.Errorf("%w: %q (want refs=color)", ErrInvalidSpec, s)
	}
	color, err := parseColor(colorPart)
	if err != nil {
		return chemops.AtomSet{}, err
	}
	set := chemops.AtomSet{Color: color}
	for _, part := range strings.Split(refsPart, ",") {
		ref, err := parseAtomRef(strings.TrimSpace(part))
		if err != nil {
			return chemops.AtomSet{}, err
		}
		set.Members = append(set.Members, ref)
	}
	return set, nil
}

// parseBondSetSpec parses one --bond-set value: "<bond>,...=<color>",
// e.g. "C1-C2,C2-C3=#0000ff".
func parseBondSetSpec(s string) (chemops.BondSet, error) {
	refsPart, colorPart, ok := strings.Cut(s, "=")
	if !ok {
		return chemops.BondSet{}, fmt.Errorf("%w: %q (want bonds=color)", ErrInvalidSpec, s)
	}
	color, err := parseColor(colorPart)
	if err != nil {
		return chemops.BondSet{}, err
	}
	set := chemops.BondSet{Color: color}
	for _, part := range strings.Split(refsPart, ",") {
		ref, err := parseBondRef(strings.TrimSpace(part))
		if err != nil {
			return chemops.BondSet{}, err
		}
		set.Members = append(set.Members, ref)
	}
	return set, nil
}
