// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isp

import (
	"encoding/binary"
	"testing"

	"github.com/lunixbochs/struc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCUInfoSize(t *testing.T) {
	n, err := struc.Sizeof(&mcuInfoRecord{Name: make([]byte, MCUNameLength)})
	require.NoError(t, err)
	assert.Equal(t, MCUInfoSize, n)
}

func TestEncodeMCUInfoRequest(t *testing.T) {
	b := EncodeMCUInfoRequest(MCUInfoSize)
	require.Len(t, b, MCUInfoSize)
	assert.Equal(t, uint32(MCUInfoSize), binary.LittleEndian.Uint32(b))
	assert.Equal(t, make([]byte, MCUInfoSize-4), b[4:])
}

func TestEncodeMCUInfoRequestKeepsDeclaredSize(t *testing.T) {
	b := EncodeMCUInfoRequest(8)
	assert.Len(t, b, MCUInfoSize)
	assert.Equal(t, uint32(8), binary.LittleEndian.Uint32(b))

	b = EncodeMCUInfoRequest(MCUInfoSize + 12)
	assert.Len(t, b, MCUInfoSize+12)
	assert.Equal(t, uint32(MCUInfoSize+12), binary.LittleEndian.Uint32(b))
}

// filledMCUInfo builds a record the way the library leaves it.
func filledMCUInfo(name []byte, fields ...int32) []byte {
	b := make([]byte, MCUInfoSize)
	binary.LittleEndian.PutUint32(b, MCUInfoSize)
	copy(b[4:4+MCUNameLength], name)
	for i, v := range fields {
		binary.LittleEndian.PutUint32(b[4+MCUNameLength+4*i:], uint32(v))
	}
	return b
}

func TestDecodeMCUInfo(t *testing.T) {
	b := filledMCUInfo([]byte("HT68FB560\x00garbage"), 64, 256, 8, 2048)
	m, err := DecodeMCUInfo(b)
	require.NoError(t, err)
	assert.Equal(t, &MCUInfo{
		Size:           MCUInfoSize,
		Name:           "HT68FB560",
		PageSize:       64,
		MaxProgramPage: 256,
		MaxLockPage:    8,
		BootloaderSize: 2048,
	}, m)
	assert.Equal(t, "MCU:HT68FB560 PageSize:64 MaxProgramPage:256 MaxLockPage:8 BootloaderSize:2048", m.String())
}

func TestDecodeMCUInfoUnterminatedName(t *testing.T) {
	name := []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZ012345")
	m, err := DecodeMCUInfo(filledMCUInfo(name))
	require.NoError(t, err)
	assert.Equal(t, string(name), m.Name)
}

func TestDecodeMCUInfoANSIName(t *testing.T) {
	// 0xB5 is MICRO SIGN in Windows-1252.
	m, err := DecodeMCUInfo(filledMCUInfo([]byte{'H', 'T', 0xb5, 0}))
	require.NoError(t, err)
	assert.Equal(t, "HTµ", m.Name)
}

func TestDecodeMCUInfoNegativeFields(t *testing.T) {
	m, err := DecodeMCUInfo(filledMCUInfo(nil, -1, 0, 0, -2))
	require.NoError(t, err)
	assert.Equal(t, int32(-1), m.PageSize)
	assert.Equal(t, int32(-2), m.BootloaderSize)
}

func TestDecodeMCUInfoShort(t *testing.T) {
	_, err := DecodeMCUInfo(make([]byte, MCUInfoSize-1))
	assert.Error(t, err)
}

func TestEncodeDecodeRequest(t *testing.T) {
	m, err := DecodeMCUInfo(EncodeMCUInfoRequest(MCUInfoSize))
	require.NoError(t, err)
	assert.Equal(t, MCUInfo{Size: MCUInfoSize}, *m)
}
