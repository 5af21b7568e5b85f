// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mtp extracts the segments of an MTP firmware container through the
// vendor ISP library and reports the MCU the container targets.
package mtp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/u-root/u-root/pkg/ulog"

	"github.com/linuxboot/mtpextract/pkg/isp"
)

// Output file names, written to Driver.OutputDir.
const (
	ProgramFile = "program.bin"
	OptionFile  = "option.bin"
	DataFile    = "data.bin"
)

// Driver runs one extraction. Every step is attempted regardless of the
// outcome of the previous one; failures end up in the Report.
type Driver struct {
	Library isp.Library

	// OutputDir receives the segment files. Empty means the current directory.
	OutputDir string

	// Stdout receives the status lines. Defaults to os.Stdout.
	Stdout io.Writer

	// JSON replaces the status lines with a single JSON document.
	JSON bool

	// Log receives progress messages. Defaults to ulog.Null.
	Log ulog.Logger
}

func (d *Driver) stdout() io.Writer {
	if d.Stdout == nil {
		return os.Stdout
	}
	return d.Stdout
}

func (d *Driver) log() ulog.Logger {
	if d.Log == nil {
		return ulog.Null
	}
	return d.Log
}

func (d *Driver) printf(format string, v ...interface{}) {
	if d.JSON {
		return
	}
	fmt.Fprintf(d.stdout(), format, v...)
}

// Run extracts path and writes program.bin, option.bin and data.bin.
//
// The extraction status is printed but not acted upon: the three files are
// written with whatever the library returned, and the MCU descriptor is
// queried afterwards in any case.
func (d *Driver) Run(path string) *Report {
	r := &Report{Input: path}

	e, err := d.Library.LoadFile(path)
	if err == nil && e == nil {
		err = errors.New("library returned no extraction")
	}
	if err != nil {
		d.printf("<!> could not load '%s': %v\n", path, err)
		r.addError(fmt.Errorf("could not load %s: %w", path, err))
		e = &isp.Extraction{Status: -1}
	}
	r.Status = e.Status
	d.printf("Result: %d\n", e.Status)
	d.printf("ProgramSize: %d\n", e.Program.Words)
	d.printf("OptionSize: %d\n", e.Option.Words)
	d.printf("DataSize: %d\n", e.Data.Words)

	for _, s := range []struct {
		name string
		file string
		seg  isp.Segment
	}{
		{"program", ProgramFile, e.Program},
		{"option", OptionFile, e.Option},
		{"data", DataFile, e.Data},
	} {
		sr := SegmentReport{
			Name:  s.name,
			File:  filepath.Join(d.OutputDir, s.file),
			Words: s.seg.Words,
			Bytes: s.seg.ByteLen(),
		}
		if len(s.seg.Data) != sr.Bytes {
			d.log().Printf("%s segment: library returned %d bytes for %d words", s.name, len(s.seg.Data), s.seg.Words)
		}
		if err := d.writeSegment(s.file, sr.File, s.seg.Bytes()); err != nil {
			sr.Err = err
			r.addError(err)
		}
		r.Segments = append(r.Segments, sr)
	}

	m, err := d.Library.MCUInfo(isp.MCUInfoSize)
	if err == nil && m == nil {
		err = errors.New("library returned no descriptor")
	}
	if err != nil {
		d.printf("<!> could not query MCU info: %v\n", err)
		r.addError(fmt.Errorf("could not query MCU info: %w", err))
		m = &isp.MCUInfo{}
	}
	r.MCU = *m
	d.printf("%s\n", m)

	if d.JSON {
		j, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			// Report only holds strings and integers.
			panic(err)
		}
		fmt.Fprintf(d.stdout(), "%s\n", j)
	}
	return r
}

// writeSegment creates or truncates path and writes data to it. name is the
// bare file name used in diagnostics.
func (d *Driver) writeSegment(name, path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		d.printf("<!> could not open '%s' for writing\n", name)
		return fmt.Errorf("could not open %s for writing: %w", path, err)
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		d.printf("<!> could not write '%s': %v\n", name, err)
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	d.log().Printf("wrote %s (%s)", path, humanize.Bytes(uint64(len(data))))
	return nil
}
