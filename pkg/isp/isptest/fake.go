// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package isptest provides an in-memory isp.Library.
package isptest

import (
	"github.com/linuxboot/mtpextract/pkg/isp"
)

// Fake returns canned results and records how it was called.
type Fake struct {
	Extraction isp.Extraction
	MCU        isp.MCUInfo
	LoadErr    error
	MCUErr     error

	Paths       []string
	LayoutSizes []uint32
	Closed      bool
}

var _ isp.Library = (*Fake)(nil)

// LoadFile implements isp.Library.
func (f *Fake) LoadFile(path string) (*isp.Extraction, error) {
	f.Paths = append(f.Paths, path)
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	e := f.Extraction
	return &e, nil
}

// MCUInfo implements isp.Library. The returned descriptor echoes layoutSize
// unless the canned one carries its own size.
func (f *Fake) MCUInfo(layoutSize uint32) (*isp.MCUInfo, error) {
	f.LayoutSizes = append(f.LayoutSizes, layoutSize)
	if f.MCUErr != nil {
		return nil, f.MCUErr
	}
	m := f.MCU
	if m.Size == 0 {
		m.Size = layoutSize
	}
	return &m, nil
}

// Close implements isp.Library.
func (f *Fake) Close() error {
	f.Closed = true
	return nil
}
