package chemops

import "context"

// Draw renders a 2D depiction of one structure with the requested
// annotations and returns the raw image: text for vector formats (svg),
// binary for rasters. Annotation references are validated against the
// parsed structure; references that do not resolve are skipped silently
// and the render proceeds with the rest.
func (s *Service) Draw(ctx context.Context, input DepictionInput) ([]byte, error) {
	input = input.normalized()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	mol, err := s.engine.Parse(ctx, input.Structure, input.Format)
	if err != nil {
		return nil, err
	}

	return s.engine.Render(ctx, RenderRequest{
		Structure:   input.Structure,
		Format:      input.Format,
		ImageFormat: input.ImageFormat,

		Labels:   resolveLabels(mol, input.Labels),
		AtomSets: resolveAtomSets(mol, input.AtomSets),
		BondSets: resolveBondSets(mol, input.BondSets),

		LabelFontSize:    input.LabelFontSize,
		ShowAtomNumbers:  input.ShowAtomNumbers,
		Width:            input.Width,
		Height:           input.Height,
		IncludeXMLHeader: input.IncludeXMLHeader,
	})
}

// tryResolveAtom resolves an atom reference: the 1-based position must be
// in bounds and the element symbol must match the parsed atom exactly.
// Mismatches mean the caller's numbering is stale, not that the call is
// wrong, so the reference is dropped without error.
func tryResolveAtom(mol *Molecule, ref AtomRef) (int, bool) {
	symbol, ok := mol.Symbol(ref.Position)
	if !ok || symbol != ref.Element {
		return 0, false
	}
	return ref.Position, true
}

// tryResolveBond resolves a bond reference: both endpoints must resolve
// and the atoms must be directly bonded.
func tryResolveBond(mol *Molecule, ref BondRef) ([2]int, bool) {
	from, ok := tryResolveAtom(mol, ref.From)
	if !ok {
		return [2]int{}, false
	}
	to, ok := tryResolveAtom(mol, ref.To)
	if !ok {
		return [2]int{}, false
	}
	if !mol.Bonded(from, to) {
		return [2]int{}, false
	}
	return [2]int{from, to}, true
}

// resolveLabels keeps the labels whose atom reference resolves. Labels
// with empty text are dropped up front.
func resolveLabels(mol *Molecule, labels []AtomLabel) []RenderLabel {
	var resolved []RenderLabel
	for _, label := range labels {
		if label.Text == "" {
			continue
		}
		atom, ok := tryResolveAtom(mol, label.Atom)
		if !ok {
			continue
		}
		resolved = append(resolved, RenderLabel{Atom: atom, Text: label.Text, Color: label.Color})
	}
	return resolved
}

// resolveAtomSets validates set members and numbers the sets 1..n in
// input order. A set whose members all fail to resolve still declares its
// color; the engine assigns membership by set number, so a later set's
// assignment of a shared atom overwrites an earlier one.
func resolveAtomSets(mol *Molecule, sets []AtomSet) []RenderAtomSet {
	resolved := make([]RenderAtomSet, 0, len(sets))
	for i, set := range sets {
		out := RenderAtomSet{Seq: i + 1, Color: set.Color}
		for _, ref := range set.Members {
			if atom, ok := tryResolveAtom(mol, ref); ok {
				out.Atoms = append(out.Atoms, atom)
			}
		}
		resolved = append(resolved, out)
	}
	return resolved
}

// resolveBondSets is the bond analogue of resolveAtomSets.
func resolveBondSets(mol *Molecule, sets []BondSet) []RenderBondSet {
	resolved := make([]RenderBondSet, 0, len(sets))
	for i, set := range sets {
		out := RenderBondSet{Seq: i + 1, Color: set.Color}
		for _, ref := range set.Members {
			if bond, ok := tryResolveBond(mol, ref); ok {
				out.Bonds = append(out.Bonds, bond)
			}
		}
		resolved = append(resolved, out)
	}
	return resolved
}
