// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isp binds the vendor in-system-programming library (ISPDLL) that
// unpacks MTP firmware containers and describes the target MCU.
//
// The container format is private to the library; this package only moves
// its results into Go memory.
package isp

import "errors"

// DefaultLibrary is the file name the vendor ships the library under.
const DefaultLibrary = "ISPDLL.dll"

// ErrUnsupportedPlatform is returned by Open where the vendor library cannot be loaded.
var ErrUnsupportedPlatform = errors.New("isp: vendor library is only available on windows")

// Library is an abstraction of the vendor library. A real implementation is
// returned by Open; tests use isptest.Fake.
type Library interface {
	// LoadFile extracts the program, option and data segments of an MTP
	// container. A failing status code is reported in Extraction.Status,
	// not as an error.
	LoadFile(path string) (*Extraction, error)

	// MCUInfo fills an MCU descriptor. layoutSize is written verbatim into
	// the descriptor's leading size field so the library can check that it
	// understands the caller's layout.
	MCUInfo(layoutSize uint32) (*MCUInfo, error)

	Close() error
}

// Segment is a word-oriented buffer returned by LoadFile.
type Segment struct {
	// Words is the element count in 16-bit words, as reported by the library.
	Words uint16
	// Data holds the buffer contents copied out of library memory.
	Data []byte
}

// ByteLen returns the length of the segment in bytes.
func (s Segment) ByteLen() int {
	return int(s.Words) * 2
}

// Bytes returns exactly ByteLen bytes of the segment. Data is truncated if
// longer and zero-padded if shorter.
func (s Segment) Bytes() []byte {
	n := s.ByteLen()
	if len(s.Data) >= n {
		return s.Data[:n]
	}
	b := make([]byte, n)
	copy(b, s.Data)
	return b
}

// Extraction is the result of LoadFile.
type Extraction struct {
	Status  int32
	Program Segment
	Option  Segment
	Data    Segment
}
