// Package molfile reads the topology (atom symbols and bond pairs) from a
// V2000 molblock. Coordinates, charges, and property blocks are ignored;
// the topology is only needed to validate annotation references.
package molfile

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for molblock parsing.
var (
	ErrMalformed   = errors.New("malformed molblock")
	ErrUnsupported = errors.New("unsupported molblock version")
)

// Topology holds element symbols in atom order and bonds as 1-based
// atom-position pairs.
type Topology struct {
	Symbols []string
	Bonds   [][2]int
}

// Column layout of the V2000 connection table.
const (
	countsAtomEnd  = 3  // counts line: atom count in columns 1-3
	countsBondEnd  = 6  // counts line: bond count in columns 4-6
	atomSymbolLow  = 31 // atom line: element symbol in columns 32-34
	atomSymbolHigh = 34
	bondFromEnd    = 3  // bond line: first atom in columns 1-3
	bondToEnd      = 6  // bond line: second atom in columns 4-6
)

// Parse reads one molecule from a molblock string.
func Parse(block string) (*Topology, error) {
	sc := bufio.NewScanner(strings.NewReader(block))

	// Three header lines precede the counts line.
	for i := 0; i < 3; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: truncated header", ErrMalformed)
		}
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("%w: missing counts line", ErrMalformed)
	}
	counts := sc.Text()
	if strings.Contains(counts, "V3000") {
		return nil, fmt.Errorf("%w: V3000", ErrUnsupported)
	}

	atomCount, err := fixedField(counts, 0, countsAtomEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: counts line %q", ErrMalformed, counts)
	}
	bondCount, err := fixedField(counts, countsAtomEnd, countsBondEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: counts line %q", ErrMalformed, counts)
	}

	top := &Topology{
		Symbols: make([]string, 0, atomCount),
		Bonds:   make([][2]int, 0, bondCount),
	}

	for i := 0; i < atomCount; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: truncated atom block", ErrMalformed)
		}
		line := sc.Text()
		if len(line) < atomSymbolHigh {
			return nil, fmt.Errorf("%w: atom line %d", ErrMalformed, i+1)
		}
		top.Symbols = append(top.Symbols, strings.TrimSpace(line[atomSymbolLow:atomSymbolHigh]))
	}

	for i := 0; i < bondCount; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: truncated bond block", ErrMalformed)
		}
		line := sc.Text()
		from, err := fixedField(line, 0, bondFromEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: bond line %d", ErrMalformed, i+1)
		}
		to, err := fixedField(line, bondFromEnd, bondToEnd)
		if err != nil {
			return nil, fmt.Errorf("%w: bond line %d", ErrMalformed, i+1)
		}
		if from < 1 || from > atomCount || to < 1 || to > atomCount {
			return nil, fmt.Errorf("%w: bond %d references atom out of range", ErrMalformed, i+1)
		}
		top.Bonds = append(top.Bonds, [2]int{from, to})
	}

	return top, nil
}

// fixedField parses the integer in the fixed-width column range [lo, hi).
func fixedField(line string, lo, hi int) (int, error) {
	if len(line) < hi {
		return 0, fmt.Errorf("line shorter than %d columns", hi)
	}
	return strconv.Atoi(strings.TrimSpace(line[lo:hi]))
}
