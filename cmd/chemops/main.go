package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

const usage = `chemops - protonation and depiction utilities for small molecules

Usage:
  chemops protonate [flags] [structure ...]   compute major microspecies at a pH
  chemops draw [flags] <structure>            render a 2D depiction
  chemops version                             print version
  chemops help                                print this help

Run "chemops <command> --help" for command flags.`

func main() {
	// Configure GOMAXPROCS for containers. Error ignored: maxprocs.Set
	// only fails if the GOMAXPROCS env is invalid, in which case Go
	// runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(ExitUsage)
	}

	var err error
	switch os.Args[1] {
	case "protonate":
		err = runProtonate(ctx, os.Args[2:], os.Stdin, os.Stdout, os.Stderr)
	case "draw":
		err = runDraw(ctx, os.Args[2:], os.Stdin, os.Stdout, os.Stderr)
	case "version":
		fmt.Println("chemops " + Version)
	case "help", "--help", "-h":
		fmt.Println(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s\n", os.Args[1], usage)
		os.Exit(ExitUsage)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, withHints(err))
		os.Exit(exitCodeFor(err))
	}
}
