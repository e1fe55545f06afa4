package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	timeout string
}

// protonateFlags holds all flags for the protonate command.
type protonateFlags struct {
	common        commonFlags
	inFormat      string
	outFormat     string
	ph            float64
	majorTautomer bool
	keepHydrogens bool
	inputFile     string
	outputFile    string
	workers       int
}

// drawFlags holds all flags for the draw command.
type drawFlags struct {
	common          commonFlags
	inFormat        string
	imageFormat     string
	width           int
	height          int
	showAtomNumbers bool
	noXMLHeader     bool
	labelFontSize   float64
	labels          []string
	atomSets        []string
	bondSets        []string
	inputFile       string
	outputFile      string
}

// registerCommon adds the shared flags to a flag set.
func registerCommon(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file path or name")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "suppress progress output")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "verbose progress output")
	fs.StringVar(&f.timeout, "timeout", "", "per-call engine timeout (e.g. 90s, 2m)")
}

// newProtonateFlagSet builds the flag set for the protonate command.
func newProtonateFlagSet(f *protonateFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("protonate", flag.ContinueOnError)
	registerCommon(fs, &f.common)
	fs.StringVar(&f.inFormat, "in", "", "input structure format (e.g. inchi, smiles)")
	fs.StringVar(&f.outFormat, "out", "", "output structure format")
	fs.Float64Var(&f.ph, "ph", 0, "pH at which to compute the major microspecies")
	fs.BoolVar(&f.majorTautomer, "major-tautomer", false, "use the major tautomeric form")
	fs.BoolVar(&f.keepHydrogens, "keep-hydrogens", false, "keep explicitly defined hydrogens")
	fs.StringVarP(&f.inputFile, "input", "i", "", "file with one structure per line (- for stdin)")
	fs.StringVarP(&f.outputFile, "output", "o", "", "write results to file instead of stdout")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel engine instances for batch input (0 = auto)")
	return fs
}

// newDrawFlagSet builds the flag set for the draw command.
func newDrawFlagSet(f *drawFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	registerCommon(fs, &f.common)
	fs.StringVar(&f.inFormat, "in", "", "input structure format (e.g. inchi, smiles)")
	fs.StringVar(&f.imageFormat, "format", "", "image format (svg, png, jpeg, pdf, eps, emf, msbmp)")
	fs.IntVar(&f.width, "width", 0, "image width in pixels")
	fs.IntVar(&f.height, "height", 0, "image height in pixels")
	fs.BoolVar(&f.showAtomNumbers, "show-atom-numbers", false, "display atom indices")
	fs.BoolVar(&f.noXMLHeader, "no-xml-header", false, "omit the XML declaration in svg output")
	fs.Float64Var(&f.labelFontSize, "label-font-size", 0, "atom label font size (default 0.4)")
	fs.StringArrayVar(&f.labels, "label", nil, `atom label, e.g. "C1=A:#ff0000" (repeatable)`)
	fs.StringArrayVar(&f.atomSets, "atom-set", nil, `colored atom set, e.g. "C1,C2,C3=#ff0000" (repeatable)`)
	fs.StringArrayVar(&f.bondSets, "bond-set", nil, `colored bond set, e.g. "C1-C2=#0000ff" (repeatable)`)
	fs.StringVarP(&f.inputFile, "input", "i", "", "read the structure from a file (- for stdin)")
	fs.StringVarP(&f.outputFile, "output", "o", "", "write the image to a file (default: stdout)")
	return fs
}
