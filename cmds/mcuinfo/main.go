// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mcuinfo prints the MCU an MTP firmware container targets, as reported by
// the vendor ISP library. No segment files are written.
//
// Synopsis:
//
//	mcuinfo [--dll PATH] [--json] stuff.mtp
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"

	"github.com/linuxboot/mtpextract/pkg/isp"
	"github.com/linuxboot/mtpextract/pkg/mtp"
)

var openLibrary = isp.Open

func run(prog string, args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(stdout)
	dll := fs.String("dll", isp.DefaultLibrary, "path to the vendor ISP library")
	asJSON := fs.Bool("json", false, "print the descriptor as JSON")
	fs.Usage = func() {
		fmt.Fprintf(stdout, "Usage: %s [OPTIONS] stuff.mtp\n", prog)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		// pflag has already printed the usage for --help.
		if err != flag.ErrHelp {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			fs.Usage()
		}
		return 0
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(stdout, "Error: no MTP file specified\n")
		fs.Usage()
		return 0
	}

	lib, err := openLibrary(*dll)
	if err != nil {
		log.Printf("could not open vendor library: %v", err)
		return 1
	}
	defer lib.Close()

	path, cleanup, err := mtp.PrepareInput(fs.Arg(0), nil)
	if err != nil {
		// Let the library report on the file as given.
		fmt.Fprintf(stdout, "<!> could not prepare '%s': %v\n", fs.Arg(0), err)
		path, cleanup = fs.Arg(0), func() {}
	}
	defer cleanup()

	// The descriptor reflects the most recently loaded container.
	if e, err := lib.LoadFile(path); err != nil {
		fmt.Fprintf(stdout, "<!> could not load '%s': %v\n", path, err)
	} else if e != nil && e.Status != 0 {
		fmt.Fprintf(stdout, "<!> LoadFile returned %d\n", e.Status)
	}

	m, err := lib.MCUInfo(isp.MCUInfoSize)
	if err != nil {
		fmt.Fprintf(stdout, "<!> could not query MCU info: %v\n", err)
	}
	if m == nil {
		m = &isp.MCUInfo{}
	}
	if *asJSON {
		j, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			log.Fatal(err)
		}
		fmt.Fprintf(stdout, "%s\n", j)
		return 0
	}
	mtp.WriteMCUTable(stdout, *m)
	return 0
}

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout))
}
