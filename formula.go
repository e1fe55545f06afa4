package chemops

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// EmpiricalFormula maps element symbols to coefficients. Coefficients may
// be fractional (average compositions); an element with coefficient zero
// is not stored.
type EmpiricalFormula map[string]float64

var (
	formulaRe = regexp.MustCompile(`^(([A-Z][a-z]?)(\-?[0-9]+(\.?[0-9]*)?(e[\-\+]?[0-9]*)?)?)*$`)
	termRe    = regexp.MustCompile(`([A-Z][a-z]?)(\-?[0-9]+(\.?[0-9]*)?(e[\-\+]?[0-9]*)?)?`)
	elementRe = regexp.MustCompile(`^[A-Z][a-z]?$`)
)

// ParseFormula parses a formula string such as "C2H4O2" or "C10H12N5O7P".
// A missing coefficient means 1; coefficients may be negative or in
// scientific notation. Repeated elements accumulate.
func ParseFormula(value string) (EmpiricalFormula, error) {
	if !formulaRe.MatchString(value) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormula, value)
	}

	f := EmpiricalFormula{}
	for _, term := range termRe.FindAllStringSubmatch(value, -1) {
		coefficient := 1.0
		if term[2] != "" {
			c, err := strconv.ParseFloat(term[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidFormula, value)
			}
			coefficient = c
		}
		f.Set(term[1], f[term[1]]+coefficient)
	}
	return f, nil
}

// MustParseFormula is like ParseFormula but panics on error. Intended for
// constants.
func MustParseFormula(value string) EmpiricalFormula {
	f, err := ParseFormula(value)
	if err != nil {
		panic(err)
	}
	return f
}

// Set stores a coefficient, deleting the element when it becomes zero.
// The element must be a one or two letter symbol.
func (f EmpiricalFormula) Set(element string, coefficient float64) {
	if !elementRe.MatchString(element) {
		// Constructed maps bypass ParseFormula; keep the invariant here.
		panic(fmt.Sprintf("chemops: %v: %q", ErrInvalidElement, element))
	}
	if coefficient == 0 {
		delete(f, element)
		return
	}
	f[element] = coefficient
}

// Add returns the element-wise sum of two formulae.
func (f EmpiricalFormula) Add(other EmpiricalFormula) EmpiricalFormula {
	sum := EmpiricalFormula{}
	for element, coefficient := range f {
		sum.Set(element, coefficient)
	}
	for element, coefficient := range other {
		sum.Set(element, sum[element]+coefficient)
	}
	return sum
}

// Sub returns the element-wise difference of two formulae.
func (f EmpiricalFormula) Sub(other EmpiricalFormula) EmpiricalFormula {
	diff := EmpiricalFormula{}
	for element, coefficient := range f {
		diff.Set(element, coefficient)
	}
	for element, coefficient := range other {
		diff.Set(element, diff[element]-coefficient)
	}
	return diff
}

// Mul returns the formula with every coefficient scaled by n.
func (f EmpiricalFormula) Mul(n float64) EmpiricalFormula {
	scaled := EmpiricalFormula{}
	for element, coefficient := range f {
		scaled.Set(element, coefficient*n)
	}
	return scaled
}

// String renders the formula with terms sorted lexicographically.
// Coefficient 1 is omitted; integral coefficients print without a decimal
// point.
func (f EmpiricalFormula) String() string {
	terms := make([]string, 0, len(f))
	for element, coefficient := range f {
		switch {
		case coefficient == 1:
			terms = append(terms, element)
		case coefficient == float64(int64(coefficient)):
			terms = append(terms, element+strconv.FormatInt(int64(coefficient), 10))
		default:
			terms = append(terms, element+strconv.FormatFloat(coefficient, 'g', -1, 64))
		}
	}
	sort.Strings(terms)
	return strings.Join(terms, "")
}
