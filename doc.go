// Package chemops computes protonation microspecies and 2D depictions of
// small molecules using an external chemistry engine.
//
// # Quick Start
//
// Create a service, run an operation, and close when done:
//
//	svc := chemops.New()
//	defer svc.Close()
//
//	out, err := svc.Protonate(ctx, "InChI=1S/C2H5NO2/c3-1-2(4)5/h1,3H2,(H,4,5)",
//	    chemops.ProtonationOptions{
//	        InputFormat:  chemops.FormatInChI,
//	        OutputFormat: chemops.FormatInChI,
//	        PH:           7.4,
//	    })
//
// Depictions accept optional atom labels and colored atom/bond sets:
//
//	img, err := svc.Draw(ctx, chemops.DepictionInput{
//	    Structure:   "C1=CC=CC=C1",
//	    Format:      chemops.FormatSMILES,
//	    ImageFormat: chemops.ImageSVG,
//	    AtomSets: []chemops.AtomSet{
//	        {Members: []chemops.AtomRef{{Position: 1, Element: "C"}}, Color: 0xff0000},
//	    },
//	})
//
// Annotation references that do not resolve against the parsed structure
// (index out of bounds, element mismatch, missing bond) are skipped
// silently; the operation still succeeds with the references that did
// resolve. This tolerates stale atom numbering between caller and server.
//
// # Engine Requirements
//
// The default engine launches a JVM bridge around the ChemAxon Marvin
// toolkit. Set CHEMOPS_JAVA_BIN to use a custom Java binary and
// CHEMOPS_CLASSPATH (or CLASSPATH) to locate the Marvin jars. JAVA_OPTS
// is split on whitespace and passed to the JVM. Alternative toolkits can
// be plugged in with WithEngine.
//
// # Parallel Processing
//
// A Service owns one engine process and is not safe for concurrent use.
// For parallel batch work, use ServicePool to manage multiple engine
// instances:
//
//	pool := chemops.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	out, err := svc.Protonate(ctx, structure, opts)
package chemops
