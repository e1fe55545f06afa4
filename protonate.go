package chemops

import (
	"context"
	"fmt"
	"strings"
)

// Protonate computes the major protonation/tautomeric microspecies of one
// structure at the configured pH and returns it in the requested output
// format. Aromatic bonds are converted to explicit single/double bonds
// before the calculation, which operates on Kekulé structures.
func (s *Service) Protonate(ctx context.Context, structure string, opts ProtonationOptions) (string, error) {
	if structure == "" {
		return "", ErrEmptyStructure
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	out, err := s.engine.MajorMicrospecies(ctx, MicrospeciesRequest{
		Structure:     structure,
		InputFormat:   opts.InputFormat,
		OutputFormat:  opts.OutputFormat,
		PH:            opts.PH,
		MajorTautomer: opts.MajorTautomer,
		KeepHydrogens: opts.KeepHydrogens,
		Dearomatize:   true,
	})
	if err != nil {
		return "", err
	}

	// The exporter may append auxiliary lines after the canonical text of
	// line-notation formats; only the first line is the structure.
	if isLineNotation(opts.OutputFormat) {
		out = firstLine(out)
	}
	return out, nil
}

// ProtonateBatch applies Protonate to each structure in order. The result
// preserves input order. The batch fails fast: the first failing item
// aborts the whole call and no partial results are returned.
func (s *Service) ProtonateBatch(ctx context.Context, structures []string, opts ProtonationOptions) ([]string, error) {
	results := make([]string, len(structures))
	for i, structure := range structures {
		out, err := s.Protonate(ctx, structure, opts)
		if err != nil {
			return nil, fmt.Errorf("structure %d: %w", i+1, err)
		}
		results[i] = out
	}
	return results, nil
}

// isLineNotation reports whether the format's canonical text is a single
// line.
func isLineNotation(format string) bool {
	return format == FormatInChI || format == FormatSMILES
}

// firstLine returns the text before the first newline, trimmed.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
