package chemops

import "context"

// Engine is the external chemistry capability: structure parsing,
// protonation calculation, and 2D rendering. Implementations wrap a real
// toolkit (the default wraps ChemAxon Marvin in a JVM bridge process)
// and need not be safe for concurrent use; the Service serializes calls.
type Engine interface {
	// Parse reads a structure in the named format and returns its
	// topology snapshot. Failures wrap ErrParse.
	Parse(ctx context.Context, structure, format string) (*Molecule, error)

	// MajorMicrospecies computes the dominant protonation/tautomeric
	// form and serializes it to the requested output format. Failures
	// wrap ErrProtonation.
	MajorMicrospecies(ctx context.Context, req MicrospeciesRequest) (string, error)

	// Render draws the structure with the resolved annotations and
	// returns the raw image (text for vector formats, binary for
	// rasters). Failures wrap ErrRender.
	Render(ctx context.Context, req RenderRequest) ([]byte, error)

	// Close releases engine resources.
	Close() error
}

// MicrospeciesRequest carries one protonation calculation.
type MicrospeciesRequest struct {
	Structure     string
	InputFormat   string
	OutputFormat  string
	PH            float64
	MajorTautomer bool
	KeepHydrogens bool
	// Dearomatize converts aromatic bonds to explicit single/double
	// bonds before protonation; the calculation operates on Kekulé
	// structures.
	Dearomatize bool
}

// RenderLabel is a label annotation resolved against the parsed
// structure (Atom is a validated 1-based position).
type RenderLabel struct {
	Atom  int    `json:"atom"`
	Text  string `json:"text"`
	Color int    `json:"color"`
}

// RenderAtomSet is a validated atom highlight group. Seq is the 1-based
// set number; Color is a packed RGB value declared as an explicit
// override, not a palette index.
type RenderAtomSet struct {
	Seq   int   `json:"seq"`
	Atoms []int `json:"atoms"`
	Color int   `json:"color"`
}

// RenderBondSet is a validated bond highlight group. Each bond is a pair
// of 1-based atom positions.
type RenderBondSet struct {
	Seq   int      `json:"seq"`
	Bonds [][2]int `json:"bonds"`
	Color int      `json:"color"`
}

// RenderRequest carries one depiction with all annotations already
// validated by the caller.
type RenderRequest struct {
	Structure   string
	Format      string
	ImageFormat string

	Labels   []RenderLabel
	AtomSets []RenderAtomSet
	BondSets []RenderBondSet

	LabelFontSize    float64
	ShowAtomNumbers  bool
	Width            int
	Height           int
	IncludeXMLHeader bool
}
