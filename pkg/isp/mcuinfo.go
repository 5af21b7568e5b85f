// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isp

import (
	"bytes"
	"fmt"

	"github.com/lunixbochs/struc"
	"golang.org/x/text/encoding/charmap"
)

// MCUNameLength is the size of the fixed name field of MCUINFO.
const MCUNameLength = 32

// MCUInfoSize is the byte size of the MCUINFO layout this package
// understands. It is sent as the descriptor's leading size field.
const MCUInfoSize = 4 + MCUNameLength + 4*4

// mcuInfoRecord is the in-memory MCUINFO layout shared with the library.
type mcuInfoRecord struct {
	Size           uint32 `struc:"uint32,little"`
	Name           []byte `struc:"[32]byte"`
	PageSize       int32  `struc:"int32,little"`
	MaxProgramPage int32  `struc:"int32,little"`
	MaxLockPage    int32  `struc:"int32,little"`
	BootloaderSize int32  `struc:"int32,little"`
}

// MCUInfo describes the programming characteristics of the MCU an MTP
// container targets.
type MCUInfo struct {
	// Size is the leading size field of the descriptor as read back.
	Size           uint32 `json:"-"`
	Name           string `json:"name"`
	PageSize       int32  `json:"pageSize"`
	MaxProgramPage int32  `json:"maxProgramPage"`
	MaxLockPage    int32  `json:"maxLockPage"`
	BootloaderSize int32  `json:"bootloaderSize" unit:"bytes"`
}

func (m MCUInfo) String() string {
	return fmt.Sprintf("MCU:%s PageSize:%d MaxProgramPage:%d MaxLockPage:%d BootloaderSize:%d",
		m.Name, m.PageSize, m.MaxProgramPage, m.MaxLockPage, m.BootloaderSize)
}

// EncodeMCUInfoRequest returns a zeroed MCUINFO record whose size field is
// set to size. The record is never shorter than MCUInfoSize, so a library
// trusting a smaller size still writes into owned memory.
func EncodeMCUInfoRequest(size uint32) []byte {
	rec := mcuInfoRecord{
		Size: size,
		Name: make([]byte, MCUNameLength),
	}
	var buf bytes.Buffer
	if err := struc.Pack(&buf, &rec); err != nil {
		// The record has a fixed layout; packing cannot fail.
		panic(fmt.Errorf("packing MCUINFO: %w", err))
	}
	b := buf.Bytes()
	if n := int(size); n > len(b) {
		b = append(b, make([]byte, n-len(b))...)
	}
	return b
}

// DecodeMCUInfo converts an MCUINFO record filled in by the library.
func DecodeMCUInfo(b []byte) (*MCUInfo, error) {
	if len(b) < MCUInfoSize {
		return nil, fmt.Errorf("MCUINFO too short, required: %d, actual: %d", MCUInfoSize, len(b))
	}
	var rec mcuInfoRecord
	if err := struc.Unpack(bytes.NewReader(b[:MCUInfoSize]), &rec); err != nil {
		return nil, fmt.Errorf("could not unpack MCUINFO: %w", err)
	}
	name, err := decodeANSI(rec.Name)
	if err != nil {
		return nil, err
	}
	return &MCUInfo{
		Size:           rec.Size,
		Name:           name,
		PageSize:       rec.PageSize,
		MaxProgramPage: rec.MaxProgramPage,
		MaxLockPage:    rec.MaxLockPage,
		BootloaderSize: rec.BootloaderSize,
	}, nil
}

// decodeANSI converts a NUL terminated string in the Windows ANSI code page to UTF-8.
func decodeANSI(b []byte) (string, error) {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("could not decode MCU name %q: %w", b, err)
	}
	return string(s), nil
}
