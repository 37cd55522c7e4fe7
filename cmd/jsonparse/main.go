// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program jsonparse reads a single JSON document from a file or from standard
// input, validates it, and writes it back out in canonical form.
//
// Usage:
//
//	jsonparse [--max-depth=N] [--pretty] [--verbose] [<file>]
//
// If the input does not parse, jsonparse prints "Parse error." and exits with
// status 1. With --verbose, the location and cause of the failure are logged
// to stderr.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/tailscale/hujson"

	"github.com/creachadair/jsondoc/ast"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	file     string
	maxDepth int
	pretty   bool
	verbose  bool
}

func newApp(opts *options) *kingpin.Application {
	app := kingpin.New("jsonparse", "Parse and re-encode a JSON document.")
	app.Flag("max-depth", "Maximum nesting depth of arrays and objects.").
		Default(fmt.Sprint(ast.DefaultMaxDepth)).Envar("JSONPARSE_MAX_DEPTH").IntVar(&opts.maxDepth)
	app.Flag("pretty", "Indent the output for reading.").BoolVar(&opts.pretty)
	app.Flag("verbose", "Log details of parse failures to stderr.").Short('v').BoolVar(&opts.verbose)
	app.Arg("file", "Input file (default stdin).").StringVar(&opts.file)
	return app
}

// run executes the command with the given arguments and streams, and returns
// the process exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options
	app := newApp(&opts)
	app.UsageWriter(stderr).ErrorWriter(stderr)
	if _, err := app.Parse(args); err != nil {
		fmt.Fprintf(stderr, "jsonparse: %v\n", err)
		return 2
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	if opts.verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowWarn())
	}

	in := stdin
	if opts.file != "" && opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			level.Error(logger).Log("msg", "open input", "file", opts.file, "err", err)
			return 2
		}
		defer f.Close()
		in = f
	}

	doc := ast.ParseDepth(in, opts.maxDepth)
	if !doc.OK() {
		level.Debug(logger).Log("msg", "parse failed", "max_depth", opts.maxDepth, "err", doc.Err())
		fmt.Fprintln(stdout, "Parse error.")
		return 1
	}

	out := []byte(doc.JSON())
	if opts.pretty {
		pretty, err := hujson.Format(out)
		if err != nil {
			level.Error(logger).Log("msg", "reformat output", "err", err)
			return 1
		}
		out = bytes.TrimSpace(pretty)
	}
	if _, err := fmt.Fprintf(stdout, "%s\n", out); err != nil {
		level.Error(logger).Log("msg", "write output", "err", err)
		return 1
	}
	return 0
}
