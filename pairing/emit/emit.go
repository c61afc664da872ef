/*
Package emit writes encoded pairing data as Go source code.

The generated file contains three static arrays, in this order:

- the mirror differences (int16), index 0 being the "no mirror" difference 0

- the data of all distinct segments (uint8), each group of bytes introduced by
the name of a constant for its offset, e.g. pairData_0A2

- the segment indexes (uint16), one per segment position, referencing the
offset constants and commented with the code-point range they cover

A constant block with the covered range and the segment size precedes the
arrays, and a pairing.Table variable may follow them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/bidimirror/pairing"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// FileName is the name of the generated file within the output directory.
const FileName = "pairinglookup.go"

// Options control the generated source.
type Options struct {
	Package   string // package clause, defaults to "bidi"
	Prefix    string // prefix of identifiers, defaults to "pair"
	Generator string // name of the generator for the header line
	TableVar  string // if not empty, emit a *pairing.Table variable of this name
}

func (opts Options) withDefaults() Options {
	if opts.Package == "" {
		opts.Package = "bidi"
	}
	if opts.Prefix == "" {
		opts.Prefix = "pair"
	}
	if opts.Generator == "" {
		opts.Generator = "pairing/internal/generator"
	}
	return opts
}

// WriteError is an ArtifactWriteFailure.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Render writes the Go source for enc to w.
func Render(w io.Writer, enc *pairing.Encoding, opts Options) error {
	src, err := Source(enc, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

// Source returns the formatted Go source for enc.
func Source(enc *pairing.Encoding, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	buf := &bytes.Buffer{}
	printHeader(buf, enc, opts)
	printDifferences(buf, enc, opts)
	printData(buf, enc, opts)
	printIndexes(buf, enc, opts)
	if opts.TableVar != "" {
		printTable(buf, opts)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code is invalid: %w", err)
	}
	return src, nil
}

// WriteFile writes the Go source for enc to file FileName in directory dir
// and returns the path of the file. On failure no file is left behind.
func WriteFile(dir string, enc *pairing.Encoding, opts Options) (string, error) {
	path := filepath.Join(dir, FileName)
	src, err := Source(enc, opts)
	if err != nil {
		return path, err
	}
	if err = writeFile(path, src); err != nil {
		T().Errorf("emit: %v", err)
		return path, &WriteError{Path: path, Err: err}
	}
	T().Infof("emit: wrote %d bytes of source to %s", len(src), path)
	return path, nil
}

func writeFile(path string, src []byte) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	_, err = f.Write(src)
	return err
}

// --- Printing --------------------------------------------------------------

func printHeader(buf *bytes.Buffer, enc *pairing.Encoding, opts Options) {
	fmt.Fprintf(buf, "// Code generated by %s; DO NOT EDIT.\n\n", opts.Generator)
	fmt.Fprintf(buf, "package %s\n", opts.Package)
	if opts.TableVar != "" {
		fmt.Fprintf(buf, "\nimport \"github.com/npillmayer/bidimirror/pairing\"\n")
	}
	stats := enc.Stats()
	fmt.Fprintf(buf, "\n// Pairing lookup, %s.\n", stats)
	fmt.Fprintf(buf, "const (\n")
	fmt.Fprintf(buf, "\t%sFirstCodePoint = 0x%04X\n", opts.Prefix, enc.First)
	fmt.Fprintf(buf, "\t%sLastCodePoint = 0x%04X\n", opts.Prefix, enc.Last)
	fmt.Fprintf(buf, "\t%sSegmentSize = %d\n", opts.Prefix, enc.SegmentSize)
	fmt.Fprintf(buf, ")\n")
}

func printDifferences(buf *bytes.Buffer, enc *pairing.Encoding, opts Options) {
	fmt.Fprintf(buf, "\nvar %sDifferences = [...]int16{\n", opts.Prefix)
	deltas := enc.Deltas.Deltas()
	for i, d := range deltas {
		if i%10 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "%d,", d)
		if i%10 == 9 || i == len(deltas)-1 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n")
}

func dataName(seg *pairing.Segment, opts Options) string {
	return seg.Name(opts.Prefix + "Data")
}

func printData(buf *bytes.Buffer, enc *pairing.Encoding, opts Options) {
	fmt.Fprintf(buf, "\nconst (\n")
	for _, seg := range enc.Segments {
		fmt.Fprintf(buf, "\t%s = 0x%03X\n", dataName(seg, opts), seg.Offset)
	}
	fmt.Fprintf(buf, ")\n")
	fmt.Fprintf(buf, "\nvar %sData = [...]uint8{\n", opts.Prefix)
	for i, seg := range enc.Segments {
		if i > 0 {
			buf.WriteString("\n")
		}
		fmt.Fprintf(buf, "\t// %s\n", dataName(seg, opts))
		for j, b := range seg.Data {
			if j%16 == 0 {
				buf.WriteString("\t")
			}
			fmt.Fprintf(buf, "%d,", b)
			if j%16 == 15 || j == len(seg.Data)-1 {
				buf.WriteString("\n")
			} else {
				buf.WriteString(" ")
			}
		}
	}
	buf.WriteString("}\n")
}

func printIndexes(buf *bytes.Buffer, enc *pairing.Encoding, opts Options) {
	fmt.Fprintf(buf, "\nvar %sIndexes = [...]uint16{\n", opts.Prefix)
	for i, inx := range enc.Indexes {
		seg := enc.Segments[inx]
		start := enc.SegmentStart(i)
		end := start + rune(len(seg.Data)) - 1
		fmt.Fprintf(buf, "\t%s, // %%%04X..%04X\n", dataName(seg, opts), start, end)
	}
	buf.WriteString("}\n")
}

func printTable(buf *bytes.Buffer, opts Options) {
	p := opts.Prefix
	fmt.Fprintf(buf, "\nvar %s = &pairing.Table{\n", opts.TableVar)
	fmt.Fprintf(buf, "\tFirst: %sFirstCodePoint,\n\tLast: %sLastCodePoint,\n", p, p)
	fmt.Fprintf(buf, "\tSegmentSize: %sSegmentSize,\n", p)
	fmt.Fprintf(buf, "\tDifferences: %sDifferences[:],\n", p)
	fmt.Fprintf(buf, "\tData: %sData[:],\n", p)
	fmt.Fprintf(buf, "\tIndexes: %sIndexes[:],\n", p)
	fmt.Fprintf(buf, "}\n")
}
