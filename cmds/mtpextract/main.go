// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mtpextract unpacks an MTP firmware container with the vendor ISP library.
//
// Synopsis:
//
//	mtpextract [OPTIONS] stuff.mtp
//
// The program, option and data segments are written to program.bin,
// option.bin and data.bin, then the MCU the container targets is printed.
// Failures are reported on stdout; the exit status is 0 unless the vendor
// library itself cannot be loaded.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
	"github.com/u-root/u-root/pkg/ulog"

	"github.com/linuxboot/mtpextract/pkg/isp"
	"github.com/linuxboot/mtpextract/pkg/mtp"
)

type options struct {
	DLL       string `long:"dll" description:"Path to the vendor ISP library"`
	OutputDir string `short:"o" long:"output-dir" description:"Directory receiving the segment files" default:"."`
	JSON      bool   `long:"json" description:"Print a JSON report instead of status lines"`
	Verbose   bool   `short:"v" long:"verbose" description:"Log progress to stderr"`
}

var openLibrary = isp.Open

func usage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Error: no MTP file specified\n")
	fmt.Fprintf(w, "Usage: %s stuff.mtp\n", prog)
}

func run(prog string, args []string, stdout io.Writer) int {
	opts := options{DLL: isp.DefaultLibrary}
	p := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	p.Name = prog
	p.Usage = "[OPTIONS] stuff.mtp"
	rest, err := p.ParseArgs(args)
	if err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, fe.Message)
			return 0
		}
		fmt.Fprintf(stdout, "Error: %v\n", err)
		usage(stdout, prog)
		return 0
	}
	if len(rest) != 1 {
		usage(stdout, prog)
		return 0
	}

	var logger ulog.Logger = ulog.Null
	if opts.Verbose {
		logger = ulog.Log
	}

	lib, err := openLibrary(opts.DLL)
	if err != nil {
		log.Printf("could not open vendor library: %v", err)
		return 1
	}
	defer lib.Close()
	logger.Printf("loaded %s", opts.DLL)

	path, cleanup, err := mtp.PrepareInput(rest[0], logger)
	if err != nil {
		// Let the library report on the file as given.
		logger.Printf("%v", err)
		path, cleanup = rest[0], func() {}
	}
	defer cleanup()

	d := &mtp.Driver{
		Library:   lib,
		OutputDir: opts.OutputDir,
		Stdout:    stdout,
		JSON:      opts.JSON,
		Log:       logger,
	}
	if err := d.Run(path).Err(); err != nil {
		logger.Printf("%v", err)
	}
	return 0
}

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout))
}
