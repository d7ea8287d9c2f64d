// SPDX-License-Identifier: MIT

// Command sexpr parses list-expression files & dumps the resulting values.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/sexpr/reader"
)

func main() {
	debug := flag.Bool("debug", false, "log reader decisions")
	tabs := flag.Bool("tabs", false, "treat tabs as whitespace")
	workers := flag.Int("workers", runtime.NumCPU(), "number of files parsed concurrently")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] FILE...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := logrus.New()
	if *debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, logger, flag.Args(), reader.WithLogger(logger), reader.WithDebug(*debug),
		reader.WithTabWhitespace(*tabs), reader.WithPoolSize(*workers))
	stop()

	os.Exit(code)
}

func run(ctx context.Context, logger logrus.FieldLogger, paths []string, opts ...reader.Option) (code int) {
	sources := make([]reader.Source, 0, len(paths))
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			logger.WithField("file", path).Errorf("failed to read: %v", err)
			code = 1

			continue
		}
		sources = append(sources, reader.Source{Name: path, Text: string(content)})
	}

	results, err := reader.ParseBatch(ctx, sources, opts...)
	if err != nil {
		logger.Errorf("parse aborted: %v", err)
		code = 1
	}

	for _, res := range results {
		if res.Err != nil {
			logger.WithField("file", res.Name).Errorf("failed to parse: %v", res.Err)
			code = 1

			continue
		}

		fmt.Printf(";; %s\n", res.Name)
		spew.Fdump(os.Stdout, res.Values)
	}

	return
}
