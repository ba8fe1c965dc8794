// seehuhn.de/go/layers - remove optional content from PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pdf-hide-layers removes optional content from a PDF file.
//
// All page content belonging to one of the named optional content groups
// (layers) is deleted, together with the XObjects, annotations and
// optional content groups which are only used by these layers.
//
// Usage:
//
//	pdf-hide-layers -layer NAME [-layer NAME ...] [-o out.pdf] in.pdf
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/layers"
	"seehuhn.de/go/layers/logger"
	"seehuhn.de/go/layers/oc"
	"seehuhn.de/go/layers/tools/internal/buildinfo"
	"seehuhn.de/go/layers/tools/internal/pdfcpuio"
	"seehuhn.de/go/layers/tools/internal/profile"
)

const toolName = "pdf-hide-layers"

// layerList collects the values of a repeated -layer flag.
type layerList []string

func (l *layerList) String() string {
	return strings.Join(*l, ",")
}

func (l *layerList) Set(value string) error {
	if value == "" {
		return errEmptyLayerName
	}
	*l = append(*l, value)
	return nil
}

type options struct {
	in, out    string
	force      bool
	names      layerList
	strict     bool
	workers    int
	verbose    bool
	cpuprofile string
	memprofile string
}

func main() {
	var opt options
	flag.StringVar(&opt.out, "o", "out.pdf", "output file name, \"-\" for standard output")
	flag.BoolVar(&opt.force, "f", false, "overwrite output file if it exists")
	flag.Var(&opt.names, "layer", "name of a layer to remove (can be repeated)")
	flag.BoolVar(&opt.strict, "strict", false, "fail if any page cannot be parsed")
	flag.IntVar(&opt.workers, "workers", 0, "number of pages processed concurrently (0 for automatic)")
	flag.BoolVar(&opt.verbose, "v", false, "print progress information to standard error")
	flag.StringVar(&opt.cpuprofile, "cpuprofile", "", "write CPU profile to `file`")
	flag.StringVar(&opt.memprofile, "memprofile", "", "write heap profile to `file`")
	version := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *version {
		fmt.Println(buildinfo.Version(toolName))
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "error: exactly one input file must be given")
		flag.Usage()
		os.Exit(1)
	}
	opt.in = flag.Arg(0)

	if len(opt.names) == 0 {
		fmt.Fprintln(os.Stderr, "error: no layers given")
		flag.Usage()
		os.Exit(1)
	}

	err := run(context.Background(), &opt)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opt *options) (err error) {
	toStdout := opt.out == "-"
	if toStdout {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errTerminal
		}
	} else if !opt.force {
		if _, err := os.Stat(opt.out); !os.IsNotExist(err) {
			return fmt.Errorf("output file %q already exists", opt.out)
		}
	}

	stop, err := profile.Start(opt.cpuprofile, opt.memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	cfg, err := newConfig(opt)
	if err != nil {
		return err
	}
	rm, err := layers.New(cfg)
	if err != nil {
		return err
	}

	doc, err := pdfcpuio.Read(opt.in)
	if err != nil {
		return err
	}

	report, err := rm.Remove(ctx, doc, oc.NewNameSet(opt.names...))
	if err != nil {
		return err
	}
	if opt.verbose {
		printReport(report)
	}

	if toStdout {
		return doc.Write(os.Stdout)
	}
	return doc.WriteFile(opt.out)
}

func newConfig(opt *options) (*layers.Config, error) {
	cfg := layers.NewDefaultConfig()
	if opt.workers > 0 {
		cfg.MaxWorkers = opt.workers
	} else if opt.workers < 0 {
		return nil, fmt.Errorf("invalid number of workers %d", opt.workers)
	}
	if opt.strict {
		cfg.ParsingMode = layers.Strict
	}
	if opt.verbose {
		cfg.Logger = logger.Writer(os.Stderr, logger.DebugLevel)
	} else {
		cfg.Logger = logger.Writer(os.Stderr, logger.ErrorLevel)
	}
	return cfg, nil
}

func printReport(r *layers.Report) {
	fmt.Fprintf(os.Stderr, "%d pages, %d rewritten\n", r.Pages, r.Rewritten)
	if len(r.Failed) > 0 {
		fmt.Fprintf(os.Stderr, "pages left unchanged: %v\n", r.Failed)
	}
	fmt.Fprintf(os.Stderr, "removed %d XObjects, %d property entries, %d annotations, %d groups\n",
		r.XObjects, r.Properties, r.Annots, r.Groups)
}

var (
	errEmptyLayerName = errors.New("empty layer name")
	errTerminal       = errors.New("refusing to write PDF data to a terminal")
)
