// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// IsValidCompressed reports whether src is a well-formed Snappy
// compressed stream: a legal varint length prefix followed by
// operations whose literal and copy lengths sum exactly to the declared
// uncompressed length, every copy offset in [1, current output
// position], and no trailing bytes after the last operation.
//
// IsValidCompressed shares tag classification with Decompress but is a
// separate traversal: it tracks the output cursor as a plain integer
// and never materializes output, so it carries none of the decoder's
// buffer-handling branches.
func IsValidCompressed(src []byte) bool {
	uncompressedLen, n, ok := getUvarint(src)
	if !ok {
		return false
	}

	var op uint64
	ip := n
	for ip < len(src) {
		tag := src[ip]
		ip++

		switch tagType(tag) {
		case tagLiteral:
			litN := tag >> 2
			var length uint64
			if extra := literalTagExtraBytes(litN); extra > 0 {
				if ip+extra > len(src) {
					return false
				}
				var raw uint32
				for i := 0; i < extra; i++ {
					raw |= uint32(src[ip+i]) << (8 * uint(i))
				}
				ip += extra
				length = uint64(raw) + 1
			} else {
				length = uint64(literalLenShort(litN))
			}
			if ip+int(length) > len(src) || op+length > uint64(uncompressedLen) {
				return false
			}
			op += length
			ip += int(length)

		case tagCopy1:
			if ip+1 > len(src) {
				return false
			}
			length := uint64(copy1Length(tag))
			offset := uint64(copy1Offset(tag, src[ip]))
			ip++
			if !validCopy(&op, offset, length, uint64(uncompressedLen)) {
				return false
			}

		case tagCopy2:
			if ip+2 > len(src) {
				return false
			}
			length := uint64(copy24Length(tag))
			offset := uint64(src[ip]) | uint64(src[ip+1])<<8
			ip += 2
			if !validCopy(&op, offset, length, uint64(uncompressedLen)) {
				return false
			}

		case tagCopy4:
			if ip+4 > len(src) {
				return false
			}
			length := uint64(copy24Length(tag))
			offset := uint64(src[ip]) | uint64(src[ip+1])<<8 | uint64(src[ip+2])<<16 | uint64(src[ip+3])<<24
			ip += 4
			if !validCopy(&op, offset, length, uint64(uncompressedLen)) {
				return false
			}
		}
	}
	return op == uint64(uncompressedLen) && ip == len(src)
}

// validCopy checks a back-reference's offset and length against the
// current output cursor *op and the declared total output length, and
// advances *op on success.
func validCopy(op *uint64, offset, length, uncompressedLen uint64) bool {
	if offset == 0 || offset > *op {
		return false
	}
	if *op+length > uncompressedLen {
		return false
	}
	*op += length
	return true
}
