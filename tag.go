// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// Tag bits 0-1 classify the operation a tag byte encodes.
const (
	tagLiteral = 0x00
	tagCopy1   = 0x01
	tagCopy2   = 0x02
	tagCopy4   = 0x03
)

// tagType returns the operation type encoded in a tag byte's low two
// bits.
func tagType(tag byte) byte {
	return tag & 0x03
}

// literalTagExtraBytes reports how many little-endian extra length bytes
// follow a literal tag whose top six bits equal n (n = tag>>2). A literal
// with n < 60 carries its length inline and needs no extra bytes.
func literalTagExtraBytes(n byte) int {
	switch {
	case n < 60:
		return 0
	case n < 64:
		return int(n) - 59 // n in {60,61,62,63} -> {1,2,3,4}
	default:
		return -1 // n is only ever the top 6 bits of a byte; unreachable.
	}
}

// literalLenShort returns the literal length for a short-form literal
// tag (n = tag>>2, n < 60): length = n + 1.
func literalLenShort(n byte) int {
	return int(n) + 1
}

// encodeLiteralTag writes the tag byte (and any extra little-endian
// length bytes) for a literal of the given length into dst, returning
// the number of bytes written. It assumes len(dst) is large enough and
// 1 <= length <= 1<<32.
//
// Precondition: 1 <= length <= 2^32 (caller's responsibility; violations
// are programmer errors, not stream errors).
func encodeLiteralTag(dst []byte, length int) int {
	n := uint32(length - 1)
	switch {
	case n < 60:
		dst[0] = byte(n)<<2 | tagLiteral
		return 1
	case n < 1<<8:
		dst[0] = 60<<2 | tagLiteral
		dst[1] = byte(n)
		return 2
	case n < 1<<16:
		dst[0] = 61<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		return 3
	case n < 1<<24:
		dst[0] = 62<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		dst[3] = byte(n >> 16)
		return 4
	default:
		dst[0] = 63<<2 | tagLiteral
		dst[1] = byte(n)
		dst[2] = byte(n >> 8)
		dst[3] = byte(n >> 16)
		dst[4] = byte(n >> 24)
		return 5
	}
}

// encodeCopy1Tag writes a copy-1 op: offset in [0, 2047], length in
// [4, 11]. Returns the number of bytes written (always 2).
func encodeCopy1Tag(dst []byte, offset, length int) int {
	dst[0] = byte(offset>>8)<<5 | byte(length-4)<<2 | tagCopy1
	dst[1] = byte(offset)
	return 2
}

// encodeCopy2Tag writes a copy-2 op: offset in [0, 65535], length in
// [1, 64]. Returns the number of bytes written (always 3).
func encodeCopy2Tag(dst []byte, offset, length int) int {
	dst[0] = byte(length-1)<<2 | tagCopy2
	dst[1] = byte(offset)
	dst[2] = byte(offset >> 8)
	return 3
}

// encodeCopy4Tag writes a copy-4 op: offset in [0, 2^32-1], length in
// [1, 64]. Returns the number of bytes written (always 5).
func encodeCopy4Tag(dst []byte, offset uint32, length int) int {
	dst[0] = byte(length-1)<<2 | tagCopy4
	dst[1] = byte(offset)
	dst[2] = byte(offset >> 8)
	dst[3] = byte(offset >> 16)
	dst[4] = byte(offset >> 24)
	return 5
}

// copy1Length returns the copy length encoded in a copy-1 tag.
func copy1Length(tag byte) int {
	return int((tag>>2)&0x07) + 4
}

// copy1Offset combines a copy-1 tag's high offset bits with the
// following offset byte into the full 11-bit offset.
func copy1Offset(tag, b1 byte) int {
	return int(tag>>5)<<8 | int(b1)
}

// copy24Length returns the copy length encoded in a copy-2 or copy-4
// tag (the two share the same length field layout).
func copy24Length(tag byte) int {
	return int(tag>>2) + 1
}
