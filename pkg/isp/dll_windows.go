// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package isp

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

type dllLibrary struct {
	dll        *windows.DLL
	loadFile   *windows.Proc
	getMCUInfo *windows.Proc
}

// Open loads the vendor library from path and resolves the exports it needs.
func Open(path string) (Library, error) {
	dll, err := windows.LoadDLL(path)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}
	l := &dllLibrary{dll: dll}
	if l.loadFile, err = dll.FindProc("LoadFile"); err != nil {
		dll.Release()
		return nil, fmt.Errorf("could not resolve LoadFile in %s: %w", path, err)
	}
	if l.getMCUInfo, err = dll.FindProc("GetMCUInfo"); err != nil {
		dll.Release()
		return nil, fmt.Errorf("could not resolve GetMCUInfo in %s: %w", path, err)
	}
	return l, nil
}

// LoadFile calls
//
//	int LoadFile(const char *path, BYTE *&program, WORD &programSize,
//	             BYTE *&option, WORD &optionSize, BYTE *&data, WORD &dataSize)
//
// and copies the three buffers before returning.
func (l *dllLibrary) LoadFile(path string) (*Extraction, error) {
	p, err := windows.BytePtrFromString(path)
	if err != nil {
		return nil, err
	}
	var (
		programBuf, optionBuf, dataBuf    *byte
		programSize, optionSize, dataSize uint16
	)
	r1, _, _ := l.loadFile.Call(
		uintptr(unsafe.Pointer(p)),
		uintptr(unsafe.Pointer(&programBuf)), uintptr(unsafe.Pointer(&programSize)),
		uintptr(unsafe.Pointer(&optionBuf)), uintptr(unsafe.Pointer(&optionSize)),
		uintptr(unsafe.Pointer(&dataBuf)), uintptr(unsafe.Pointer(&dataSize)),
	)
	return &Extraction{
		Status:  int32(r1),
		Program: copySegment(programBuf, programSize),
		Option:  copySegment(optionBuf, optionSize),
		Data:    copySegment(dataBuf, dataSize),
	}, nil
}

// copySegment copies words 16-bit elements out of library owned memory.
func copySegment(buf *byte, words uint16) Segment {
	s := Segment{Words: words}
	if buf != nil && words != 0 {
		s.Data = append([]byte(nil), unsafe.Slice(buf, int(words)*2)...)
	}
	return s
}

// MCUInfo calls void GetMCUInfo(MCUINFO *info). The return value, if any,
// is not part of the contract and is ignored.
func (l *dllLibrary) MCUInfo(layoutSize uint32) (*MCUInfo, error) {
	b := EncodeMCUInfoRequest(layoutSize)
	l.getMCUInfo.Call(uintptr(unsafe.Pointer(&b[0])))
	return DecodeMCUInfo(b)
}

func (l *dllLibrary) Close() error {
	return l.dll.Release()
}
