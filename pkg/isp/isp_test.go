// Copyright 2026 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package isp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentBytes(t *testing.T) {
	for _, tc := range []struct {
		name string
		seg  Segment
		want []byte
	}{
		{"exact", Segment{Words: 2, Data: []byte{1, 2, 3, 4}}, []byte{1, 2, 3, 4}},
		{"truncated", Segment{Words: 1, Data: []byte{1, 2, 3, 4}}, []byte{1, 2}},
		{"padded", Segment{Words: 2, Data: []byte{1}}, []byte{1, 0, 0, 0}},
		{"nil buffer", Segment{Words: 1}, []byte{0, 0}},
		{"empty", Segment{}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.seg.Bytes()
			assert.Equal(t, tc.seg.ByteLen(), len(got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSegmentByteLenMaxWords(t *testing.T) {
	assert.Equal(t, 0x1fffe, Segment{Words: 0xffff}.ByteLen())
}
