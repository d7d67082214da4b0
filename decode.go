// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// GetUncompressedLength returns the uncompressed length encoded in the
// varint prefix of src, and reports whether the varint was well-formed.
// It does not otherwise validate src; a well-formed length prefix can
// still be followed by a corrupt or truncated stream. O(1).
func GetUncompressedLength(src []byte) (uint32, bool) {
	v, _, ok := getUvarint(src)
	return v, ok
}

// Decompress writes the decompression of src to dst and returns the
// number of bytes written. It returns ErrCorrupt if src is not a
// well-formed compressed stream, and ErrInsufficientBuffer if dst is
// smaller than the stream's declared uncompressed length (checked
// before any operation is consumed).
//
// Decompress is safe to call on adversarial input: every bounds and
// offset check below is mandatory, not best-effort. It never reads
// past len(src) or writes past len(dst).
func Decompress(dst, src []byte) (int, error) {
	uncompressedLen, n, ok := getUvarint(src)
	if !ok {
		return 0, ErrCorrupt
	}
	if uint64(len(dst)) < uint64(uncompressedLen) {
		return 0, ErrInsufficientBuffer
	}

	var op uint64 // output cursor; kept in 64 bits to detect overflow before truncation.
	ip := n       // input cursor.
	for ip < len(src) {
		tag := src[ip]
		ip++

		switch tagType(tag) {
		case tagLiteral:
			litN := tag >> 2
			var length uint64
			if extra := literalTagExtraBytes(litN); extra > 0 {
				if ip+extra > len(src) {
					return 0, ErrCorrupt
				}
				var raw uint32
				for i := 0; i < extra; i++ {
					raw |= uint32(src[ip+i]) << (8 * uint(i))
				}
				ip += extra
				length = uint64(raw) + 1 // extra bytes encode length-1.
			} else {
				length = uint64(literalLenShort(litN))
			}
			if ip+int(length) > len(src) || op+length > uint64(uncompressedLen) {
				return 0, ErrCorrupt
			}
			copy(dst[op:op+length], src[ip:ip+int(length)])
			op += length
			ip += int(length)

		case tagCopy1:
			if ip+1 > len(src) {
				return 0, ErrCorrupt
			}
			length := uint64(copy1Length(tag))
			offset := uint64(copy1Offset(tag, src[ip]))
			ip++
			if err := patternCopy(dst, &op, offset, length, uint64(uncompressedLen)); err != nil {
				return 0, err
			}

		case tagCopy2:
			if ip+2 > len(src) {
				return 0, ErrCorrupt
			}
			length := uint64(copy24Length(tag))
			offset := uint64(src[ip]) | uint64(src[ip+1])<<8
			ip += 2
			if err := patternCopy(dst, &op, offset, length, uint64(uncompressedLen)); err != nil {
				return 0, err
			}

		case tagCopy4:
			if ip+4 > len(src) {
				return 0, ErrCorrupt
			}
			length := uint64(copy24Length(tag))
			offset := uint64(src[ip]) | uint64(src[ip+1])<<8 | uint64(src[ip+2])<<16 | uint64(src[ip+3])<<24
			ip += 4
			if err := patternCopy(dst, &op, offset, length, uint64(uncompressedLen)); err != nil {
				return 0, err
			}
		}
	}
	if op != uint64(uncompressedLen) {
		return 0, ErrCorrupt
	}
	return int(op), nil
}

// patternCopy validates a back-reference (offset, length) against the
// current output cursor *op and declared output length uncompressedLen,
// then performs the overlap-aware copy (offset may be smaller than
// length, in which case the source region overlaps bytes the copy
// itself is still writing), advancing *op.
func patternCopy(dst []byte, op *uint64, offset, length, uncompressedLen uint64) error {
	if offset == 0 || offset > *op {
		return ErrCorrupt
	}
	if *op+length > uncompressedLen {
		return ErrCorrupt
	}
	start := *op - offset
	end := *op + length
	if offset >= length {
		// No overlap: source and destination regions are disjoint.
		copy(dst[*op:end], dst[start:start+length])
	} else {
		// offset < length: the destination overlaps the source, and the
		// pattern must be extended byte by byte, reading bytes this same
		// operation has already written.
		for i := uint64(0); i < length; i++ {
			dst[*op+i] = dst[start+i]
		}
	}
	*op = end
	return nil
}
