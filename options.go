// Copyright 2011 The Snappy-Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package snappy

// Level selects an encoder strategy. Both levels produce streams decoded
// by the same Decompress/IsValidCompressed. CompressLevel runs the same
// single-pass encoder for every level, so both produce identical output.
type Level int

const (
	// LevelFast is the single-pass hash-table encoder. It is the default.
	LevelFast Level = iota

	// LevelBetter is reserved for a denser, double-hash match search.
	// It is experimental and not implemented here; CompressLevel falls
	// back to the LevelFast path for it.
	LevelBetter
)
