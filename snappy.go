// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package snappy implements the Snappy block format: a byte-oriented,
// LZ77-family compressor and decompressor tuned for throughput over
// ratio. It speaks only the raw block format (no streaming/framing
// layer); see https://github.com/google/snappy/blob/master/format_description.txt.
package snappy

import "errors"

// Three error kinds cover the entire failure surface of this package.
var (
	// ErrTooLarge is returned by Compress when src is longer than the
	// format can represent (2^32 - 1 bytes).
	ErrTooLarge = errors.New("snappy: input too large")

	// ErrInsufficientBuffer is returned when the caller-supplied
	// destination slice is smaller than required: below
	// MaxCompressedLen(len(src)) for Compress, or below the stream's
	// declared uncompressed length for Decompress.
	ErrInsufficientBuffer = errors.New("snappy: insufficient output buffer")

	// ErrCorrupt is returned by Decompress and reported (as false) by
	// IsValidCompressed for any structural defect in a compressed
	// stream: a malformed varint, a truncated operation, an illegal
	// offset, an output length mismatch, or trailing bytes after an
	// otherwise complete payload.
	ErrCorrupt = errors.New("snappy: corrupt input")
)

// maxUint32 is the largest value the uncompressed-length varint prefix
// can represent.
const maxUint32 = 1<<32 - 1

// MaxCompressedLen returns the maximum length of a compressed block
// given its uncompressed length n. It returns a value usable as a
// destination-buffer size even when n exceeds what Compress will accept;
// callers that need to reject oversize input ahead of time should
// compare n against maxUint32 themselves, or just call Compress and
// check for ErrTooLarge.
//
// The bound (32 + n + n/6) is the worst-case blowup: every 60
// bytes of literal costs one extra length byte in the worst case (62/60
// blowup on the trailing literal run), and a one-byte literal followed
// by a five-byte copy turns 6 input bytes into 7 output bytes in the
// worst case.
func MaxCompressedLen(n int) int {
	return 32 + n + n/6
}
