package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	chemops "github.com/moleculab/go-chemops"
	"github.com/moleculab/go-chemops/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput        = errors.New("no input structures")
	ErrTooManyInputs  = errors.New("draw accepts exactly one structure")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// runProtonate handles the protonate command: batch-capable, one result
// line per input structure, order preserved, fail-fast.
func runProtonate(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var flags protonateFlags
	fs := newProtonateFlagSet(&flags)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrDefault(flags.common.config)
	if err != nil {
		return err
	}
	applyEngineEnv(cfg)

	opts := chemops.ProtonationOptions{
		InputFormat:   cfg.Protonation.InputFormat,
		OutputFormat:  cfg.Protonation.OutputFormat,
		PH:            cfg.Protonation.PH,
		MajorTautomer: cfg.Protonation.MajorTautomer,
		KeepHydrogens: cfg.Protonation.KeepHydrogens,
	}
	if flags.inFormat != "" {
		opts.InputFormat = flags.inFormat
	}
	if flags.outFormat != "" {
		opts.OutputFormat = flags.outFormat
	}
	if fs.Changed("ph") {
		opts.PH = flags.ph
	}
	if fs.Changed("major-tautomer") {
		opts.MajorTautomer = flags.majorTautomer
	}
	if fs.Changed("keep-hydrogens") {
		opts.KeepHydrogens = flags.keepHydrogens
	}

	serviceOpts, err := serviceOptions(flags.common, cfg)
	if err != nil {
		return err
	}

	structures, err := gatherStructures(fs.Args(), flags.inputFile, stdin)
	if err != nil {
		return err
	}
	if len(structures) == 0 {
		return ErrNoInput
	}

	workers := flags.workers
	if workers == 0 {
		workers = cfg.Workers
	}
	workers = chemops.ResolvePoolSize(workers)
	if flags.common.verbose {
		fmt.Fprintf(stderr, "Protonating %d structure(s) at pH %.2f (%d worker(s))\n",
			len(structures), opts.PH, workers)
	}

	var results []string
	if len(structures) > 1 && workers > 1 {
		results, err = protonateParallel(ctx, structures, opts, workers, serviceOpts)
	} else {
		svc := chemops.New(serviceOpts...)
		defer svc.Close()
		results, err = svc.ProtonateBatch(ctx, structures, opts)
	}
	if err != nil {
		return err
	}

	return writeLines(flags.outputFile, results, stdout)
}

// protonateParallel runs the batch across a pool of engine instances.
// Output order matches input order; the first failure cancels the rest.
func protonateParallel(ctx context.Context, structures []string, opts chemops.ProtonationOptions, workers int, serviceOpts []chemops.Option) ([]string, error) {
	pool := chemops.NewServicePool(workers, serviceOpts...)
	defer pool.Close()

	results := make([]string, len(structures))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(pool.Size())

	for i, structure := range structures {
		i, structure := i, structure
		g.Go(func() error {
			svc := pool.Acquire()
			defer pool.Release(svc)

			out, err := svc.Protonate(ctx, structure, opts)
			if err != nil {
				return fmt.Errorf("structure %d: %w", i+1, err)
			}
			results[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// runDraw handles the draw command: one structure in, one image out.
func runDraw(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var flags drawFlags
	fs := newDrawFlagSet(&flags)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfigOrDefault(flags.common.config)
	if err != nil {
		return err
	}
	applyEngineEnv(cfg)

	structures, err := gatherStructures(fs.Args(), flags.inputFile, stdin)
	if err != nil {
		return err
	}
	if len(structures) == 0 {
		return ErrNoInput
	}
	if len(structures) > 1 {
		return fmt.Errorf("%w: got %d", ErrTooManyInputs, len(structures))
	}

	input := chemops.DepictionInput{
		Structure:        structures[0],
		Format:           flags.inFormat,
		ImageFormat:      cfg.Render.Format,
		Width:            cfg.Render.Width,
		Height:           cfg.Render.Height,
		ShowAtomNumbers:  cfg.Render.ShowAtomNumbers,
		IncludeXMLHeader: !cfg.Render.OmitXMLHeader,
		LabelFontSize:    flags.labelFontSize,
	}
	if flags.imageFormat != "" {
		input.ImageFormat = flags.imageFormat
	}
	if flags.width != 0 {
		input.Width = flags.width
	}
	if flags.height != 0 {
		input.Height = flags.height
	}
	if fs.Changed("show-atom-numbers") {
		input.ShowAtomNumbers = flags.showAtomNumbers
	}
	if flags.noXMLHeader {
		input.IncludeXMLHeader = false
	}

	for _, spec := range flags.labels {
		label, err := parseLabelSpec(spec)
		if err != nil {
			return err
		}
		input.Labels = append(input.Labels, label)
	}
	for _, spec := range flags.atomSets {
		set, err := parseAtomSetSpec(spec)
		if err != nil {
			return err
		}
		input.AtomSets = append(input.AtomSets, set)
	}
	for _, spec := range flags.bondSets {
		set, err := parseBondSetSpec(spec)
		if err != nil {
			return err
		}
		input.BondSets = append(input.BondSets, set)
	}

	serviceOpts, err := serviceOptions(flags.common, cfg)
	if err != nil {
		return err
	}

	svc := chemops.New(serviceOpts...)
	defer svc.Close()

	if flags.common.verbose {
		fmt.Fprintf(stderr, "Rendering %s depiction (%dx%d)\n", input.ImageFormat, input.Width, input.Height)
	}

	image, err := svc.Draw(ctx, input)
	if err != nil {
		return err
	}

	if flags.outputFile == "" || flags.outputFile == "-" {
		if _, err := stdout.Write(image); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(flags.outputFile, image, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if !flags.common.quiet {
		fmt.Fprintf(stderr, "Created %s\n", flags.outputFile)
	}
	return nil
}

// loadConfigOrDefault loads the named config, or the defaults when no
// config is requested.
func loadConfigOrDefault(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(nameOrPath)
}

// applyEngineEnv exports the engine settings so the library's JVM bridge
// picks them up. Existing environment variables win over the config file.
func applyEngineEnv(cfg *config.Config) {
	if cfg.Engine.JavaBin != "" && os.Getenv(chemops.EnvJavaBin) == "" {
		os.Setenv(chemops.EnvJavaBin, cfg.Engine.JavaBin)
	}
	if cfg.Engine.Classpath != "" && os.Getenv(chemops.EnvClasspath) == "" {
		os.Setenv(chemops.EnvClasspath, cfg.Engine.Classpath)
	}
}

// serviceOptions translates CLI settings to library options.
func serviceOptions(common commonFlags, cfg *config.Config) ([]chemops.Option, error) {
	timeout := time.Duration(cfg.Engine.TimeoutSeconds) * time.Second
	if common.timeout != "" {
		d, err := time.ParseDuration(common.timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeout, common.timeout)
		}
		timeout = d
	}
	if timeout <= 0 {
		return nil, nil
	}
	return []chemops.Option{chemops.WithTimeout(timeout)}, nil
}

// gatherStructures collects input structures from positional arguments,
// an input file, or stdin (one structure per line, blanks skipped).
func gatherStructures(args []string, inputFile string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var r io.Reader
	switch {
	case inputFile == "" || inputFile == "-":
		r = stdin
	default:
		f, err := os.Open(inputFile) // #nosec G304 -- input path is user-provided
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		defer f.Close()
		r = f
	}

	var structures []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		structures = append(structures, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return structures, nil
}

// writeLines writes one result per line to the output file or writer.
func writeLines(outputFile string, lines []string, stdout io.Writer) error {
	out := strings.Join(lines, "\n") + "\n"
	if outputFile == "" || outputFile == "-" {
		if _, err := io.WriteString(stdout, out); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(out), 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
