// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linuxboot/mtpextract/pkg/isp"
)

func TestWriteMCUTable(t *testing.T) {
	var b bytes.Buffer
	WriteMCUTable(&b, isp.MCUInfo{
		Size:           isp.MCUInfoSize,
		Name:           "HT68FB560",
		PageSize:       64,
		MaxProgramPage: 256,
		MaxLockPage:    8,
		BootloaderSize: 12288,
	})
	assert.Equal(t, ""+
		"Name             : HT68FB560\n"+
		"Page Size        : 64\n"+
		"Max Program Page : 256\n"+
		"Max Lock Page    : 8\n"+
		"Bootloader Size  : 12,288 (12 KiB)\n",
		b.String())
}

func TestWriteMCUTableNoSizeForZero(t *testing.T) {
	var b bytes.Buffer
	WriteMCUTable(&b, isp.MCUInfo{PageSize: 1024})
	assert.Contains(t, b.String(), "Page Size        : 1,024\n")
	assert.Contains(t, b.String(), "Bootloader Size  : 0\n")
}
