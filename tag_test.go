// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLiteralTagRoundTrip(t *testing.T) {
	lengths := []int{1, 2, 59, 60, 61, 255, 256, 257, 65535, 65536, 65537,
		1 << 24, 1<<24 + 1, 1 << 30}
	for _, length := range lengths {
		buf := make([]byte, 5)
		n := encodeLiteralTag(buf, length)
		require.GreaterOrEqual(t, n, 1)
		tag := buf[0]
		require.Equal(t, byte(tagLiteral), tagType(tag))
		top := tag >> 2
		extra := literalTagExtraBytes(top)
		if extra == 0 {
			require.Equal(t, length, literalLenShort(top))
			require.Equal(t, 1, n)
			continue
		}
		require.Equal(t, n, 1+extra)
		var got uint32
		for i := 0; i < extra; i++ {
			got |= uint32(buf[1+i]) << (8 * uint(i))
		}
		require.Equal(t, uint32(length-1), got)
	}
}

func TestCopy1TagRoundTrip(t *testing.T) {
	for offset := 0; offset <= 2047; offset += 37 {
		for length := 4; length <= 11; length++ {
			buf := make([]byte, 2)
			n := encodeCopy1Tag(buf, offset, length)
			require.Equal(t, 2, n)
			require.Equal(t, byte(tagCopy1), tagType(buf[0]))
			require.Equal(t, length, copy1Length(buf[0]))
			require.Equal(t, offset, copy1Offset(buf[0], buf[1]))
		}
	}
}

func TestCopy2TagRoundTrip(t *testing.T) {
	offsets := []int{0, 1, 2047, 2048, 65535}
	for _, offset := range offsets {
		for length := 1; length <= 64; length++ {
			buf := make([]byte, 3)
			n := encodeCopy2Tag(buf, offset, length)
			require.Equal(t, 3, n)
			require.Equal(t, byte(tagCopy2), tagType(buf[0]))
			require.Equal(t, length, copy24Length(buf[0]))
			got := int(buf[1]) | int(buf[2])<<8
			require.Equal(t, offset, got)
		}
	}
}

func TestCopy4TagRoundTrip(t *testing.T) {
	offsets := []uint32{0, 1, 1 << 16, 1<<32 - 1}
	for _, offset := range offsets {
		for _, length := range []int{1, 2, 63, 64} {
			buf := make([]byte, 5)
			n := encodeCopy4Tag(buf, offset, length)
			require.Equal(t, 5, n)
			require.Equal(t, byte(tagCopy4), tagType(buf[0]))
			require.Equal(t, length, copy24Length(buf[0]))
			got := uint32(buf[1]) | uint32(buf[2])<<8 | uint32(buf[3])<<16 | uint32(buf[4])<<24
			require.Equal(t, offset, got)
		}
	}
}
