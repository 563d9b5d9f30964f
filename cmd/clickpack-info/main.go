// Command clickpack-info loads a clickpack and prints its bank contents
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/lixenwraith/clicklive/clickpack"
)

const (
	exitOK       = 0
	exitUsage    = 2
	exitNoClicks = 3
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("clickpack-info", flag.ContinueOnError)
	fs.SetOutput(stderr)
	loadFor := fs.String("for", "all", "Bank to load: all, player1, player2, left1, right1, left2, right2")
	verbose := fs.Bool("v", false, "Print loader log to stderr")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: clickpack-info [-for bank] [-v] <clickpack dir>")
		return exitUsage
	}

	target, err := clickpack.ParseLoadFor(*loadFor)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if *verbose {
		log.SetOutput(stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	cp, err := clickpack.Load(fs.Arg(0), target)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, clickpack.ErrNoClicks) {
			return exitNoClicks
		}
		return 1
	}

	printSummary(stdout, cp)
	return exitOK
}

func printSummary(w io.Writer, cp *clickpack.Clickpack) {
	fmt.Fprintf(w, "clickpack %s (%s)\n", cp.Name(), cp.Path())
	fmt.Fprintf(w, "sounds: %d  noise: %v  platformer: %v\n\n", cp.NumSounds(), cp.HasNoise(), cp.HasPlatformerSounds())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "bank\t")
	for _, ct := range clickpack.ClickTypes {
		fmt.Fprintf(tw, "%s\t", ct)
	}
	fmt.Fprint(tw, "total\t\n")

	for _, bs := range cp.Summary() {
		fmt.Fprintf(tw, "%s\t", bs.Bank)
		for _, n := range bs.Buckets {
			fmt.Fprintf(tw, "%d\t", n)
		}
		fmt.Fprintf(tw, "%d\t\n", bs.Total)
	}
	tw.Flush()
}
