/*
Package generator is a generator for bidi pairing lookup tables.

It reads the UCD files BidiMirroring.txt and BidiBrackets.txt, searches for
the segment size producing the smallest tables, and writes Go source code
with three static arrays: mirror differences, segment data and segment
indexes (see package pairing).

Usage

   generator [-ucd dir] [-o dir] [-pkg name] [-table var] [-size n] [-strict] [-j n] [-trace D|I|E]

Without -ucd the excerpts of the UCD files bundled with this module are used.
This creates a file "pairinglookup.go" in the output directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/npillmayer/bidimirror/pairing"
	"github.com/npillmayer/bidimirror/pairing/emit"
	"github.com/npillmayer/bidimirror/ucd"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "generator: %v\n", err)
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

type settings struct {
	ucdDir   string
	outDir   string
	pkg      string
	prefix   string
	tableVar string
	size     int
	strict   bool
	jobs     int
	check    bool
	tlevel   string
}

func parseFlags(args []string) (settings, error) {
	var s settings
	fs := flag.NewFlagSet("generator", flag.ContinueOnError)
	fs.StringVar(&s.ucdDir, "ucd", "", "Directory containing BidiMirroring.txt and BidiBrackets.txt")
	fs.StringVar(&s.outDir, "o", ".", "Output directory")
	fs.StringVar(&s.pkg, "pkg", "bidi", "Package name to use in output file")
	fs.StringVar(&s.prefix, "prefix", "pair", "Prefix for generated identifiers")
	fs.StringVar(&s.tableVar, "table", "", "Name of a pairing.Table variable to generate")
	fs.IntVar(&s.size, "size", 0, "Use this segment size instead of searching for the best one")
	fs.BoolVar(&s.strict, "strict", false, "Fail if mirror and paired bracket disagree")
	fs.IntVar(&s.jobs, "j", 1, "Number of segment sizes to try concurrently")
	fs.BoolVar(&s.check, "check", false, "Cross-check bracket types with golang.org/x/text")
	fs.StringVar(&s.tlevel, "trace", "I", "Trace level")
	err := fs.Parse(args)
	return s, err
}

func run(args []string) error {
	s, err := parseFlags(args)
	if err != nil {
		return err
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(traceLevel(s.tlevel))
	trace := gtrace.CoreTracer
	trace.Infof("Generating bidi pairing lookup")
	//
	var src *ucd.Source
	if s.ucdDir == "" {
		trace.Infof("Using bundled UCD excerpts")
		src, err = ucd.Bundled()
	} else {
		src, err = ucd.LoadDir(s.ucdDir)
	}
	if err != nil {
		return err
	}
	if s.check {
		for _, d := range ucd.CrossCheck(src) {
			trace.Infof("x/text: %s", d)
		}
	}
	opts := []pairing.Option{pairing.Strict(s.strict), pairing.Parallelism(s.jobs)}
	var enc *pairing.Encoding
	if s.size > 0 {
		enc, err = pairing.Encode(src, pairing.ClampSegmentSize(s.size), opts...)
	} else {
		enc, err = pairing.Build(src, opts...)
	}
	if err != nil {
		return err
	}
	trace.Infof("Analysis: %s", enc.Stats())
	if err = enc.Table().Verify(src); err != nil {
		return err
	}
	path, err := emit.WriteFile(s.outDir, enc, emit.Options{
		Package:  s.pkg,
		Prefix:   s.prefix,
		TableVar: s.tableVar,
	})
	if err != nil {
		return err
	}
	trace.Infof("Wrote %s", path)
	return nil
}

func traceLevel(l string) tracing.TraceLevel {
	switch l {
	case "D":
		return tracing.LevelDebug
	case "I":
		return tracing.LevelInfo
	case "E":
		return tracing.LevelError
	}
	return tracing.LevelDebug
}
