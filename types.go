package chemops

import (
	"fmt"
	"time"
)

// Structure format names understood by the engine. Any other format the
// underlying toolkit supports (e.g. "mol", "sdf", "cml") passes through
// unchanged; these constants only name the common cases.
const (
	FormatInChI  = "inchi"
	FormatSMILES = "smiles"
	FormatCML    = "cml"
	FormatMol    = "mol"
)

// Image format names for depictions.
const (
	ImageSVG   = "svg"
	ImagePNG   = "png"
	ImageJPEG  = "jpeg"
	ImagePDF   = "pdf"
	ImageEPS   = "eps"
	ImageEMF   = "emf"
	ImageMSBMP = "msbmp"
)

// Depiction defaults.
const (
	DefaultImageWidth    = 200
	DefaultImageHeight   = 200
	DefaultLabelFontSize = 0.4
)

// DefaultPH is the physiological pH used when callers do not care.
const DefaultPH = 7.4

// AtomRef identifies an atom by its 1-based position in a parsed
// structure. Element is a consistency check against the symbol at that
// position; a mismatch means the reference is stale and is skipped.
type AtomRef struct {
	Position int
	Element  string
}

// BondRef identifies a bond by its two endpoint atoms. It resolves only
// if both endpoints resolve and the atoms are directly bonded.
type BondRef struct {
	From AtomRef
	To   AtomRef
}

// AtomLabel attaches a text label with a packed RGB color to an atom.
// Labels with empty text are ignored.
type AtomLabel struct {
	Atom  AtomRef
	Text  string
	Color int
}

// AtomSet is a group of atoms highlighted with one color. Sets are
// 1-indexed in input order; when an atom appears in several sets the
// last assignment wins.
type AtomSet struct {
	Members []AtomRef
	Color   int
}

// BondSet is a group of bonds highlighted with one color, with the same
// ordering and overwrite semantics as AtomSet.
type BondSet struct {
	Members []BondRef
	Color   int
}

// ProtonationOptions configures a major-microspecies calculation.
type ProtonationOptions struct {
	InputFormat   string  // format of the input structure (e.g. "inchi")
	OutputFormat  string  // format of the result
	PH            float64 // pH at which to compute the major microspecies
	MajorTautomer bool    // use the major tautomeric form
	KeepHydrogens bool    // keep explicitly defined hydrogens
}

// DefaultProtonationOptions returns options for InChI in/out at
// physiological pH.
func DefaultProtonationOptions() ProtonationOptions {
	return ProtonationOptions{
		InputFormat:  FormatInChI,
		OutputFormat: FormatInChI,
		PH:           DefaultPH,
	}
}

// Validate checks that both formats are present. The pH is passed to the
// engine as-is; the toolkit defines what it accepts.
func (o ProtonationOptions) Validate() error {
	if o.InputFormat == "" {
		return fmt.Errorf("%w: input format", ErrEmptyFormat)
	}
	if o.OutputFormat == "" {
		return fmt.Errorf("%w: output format", ErrEmptyFormat)
	}
	return nil
}

// DepictionInput contains all parameters for rendering one molecule.
// Zero values for ImageFormat, Width, Height, and LabelFontSize select
// the package defaults.
type DepictionInput struct {
	Structure string // structure text (required)
	Format    string // format of Structure (required)

	ImageFormat string // "svg", "png", ... (default: "svg")

	Labels   []AtomLabel
	AtomSets []AtomSet
	BondSets []BondSet

	ShowAtomNumbers  bool
	Width            int     // pixels (default: 200)
	Height           int     // pixels (default: 200)
	IncludeXMLHeader bool    // emit the XML declaration for svg output
	LabelFontSize    float64 // label font size (default: 0.4)
}

// normalized returns a copy with defaults filled in.
func (in DepictionInput) normalized() DepictionInput {
	if in.ImageFormat == "" {
		in.ImageFormat = ImageSVG
	}
	if in.Width == 0 {
		in.Width = DefaultImageWidth
	}
	if in.Height == 0 {
		in.Height = DefaultImageHeight
	}
	if in.LabelFontSize == 0 {
		in.LabelFontSize = DefaultLabelFontSize
	}
	return in
}

// Validate checks required fields on a normalized input.
func (in DepictionInput) Validate() error {
	if in.Structure == "" {
		return ErrEmptyStructure
	}
	if in.Format == "" {
		return fmt.Errorf("%w: structure format", ErrEmptyFormat)
	}
	if !isValidImageFormat(in.ImageFormat) {
		return fmt.Errorf("%w: %q", ErrInvalidImageFormat, in.ImageFormat)
	}
	if in.Width < 1 || in.Height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, in.Width, in.Height)
	}
	return nil
}

// isValidImageFormat checks the format against the set the exporter
// supports.
func isValidImageFormat(format string) bool {
	switch format {
	case ImageSVG, ImagePNG, ImageJPEG, ImagePDF, ImageEPS, ImageEMF, ImageMSBMP:
		return true
	}
	return false
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-call engine timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("chemops: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithEngine replaces the default Marvin engine, e.g. with an adapter
// for another toolkit or a fake for tests.
func WithEngine(e Engine) Option {
	return func(s *Service) {
		s.engine = e
	}
}
