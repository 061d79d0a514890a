// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package rainbow

import (
	"encoding/binary"
	"fmt"

	"github.com/AleutianAI/crystalline/pkg/lattice"
)

// Wire format, all big-endian:
//
//	magic   4 bytes "CRRT"
//	version 1 byte
//	count   8 bytes
//	entries count × (prime 8, index 8, ring 1, pos 2)
//
// Angle, radius, quadrant, and polarity are derived from (ring, pos)
// on decode, so equal populations encode to equal bytes on every
// platform.

const (
	encodeMagic   = "CRRT"
	encodeVersion = 1
	headerSize    = 4 + 1 + 8
	entrySize     = 8 + 8 + 1 + 2
)

// Bytes encodes the table deterministically.
func (t *Table) Bytes() []byte {
	buf := make([]byte, headerSize+len(t.entries)*entrySize)
	copy(buf, encodeMagic)
	buf[4] = encodeVersion
	binary.BigEndian.PutUint64(buf[5:], uint64(len(t.entries)))
	off := headerSize
	for i := range t.entries {
		e := &t.entries[i]
		binary.BigEndian.PutUint64(buf[off:], e.Prime)
		binary.BigEndian.PutUint64(buf[off+8:], e.Index)
		buf[off+16] = byte(e.Position.Ring)
		binary.BigEndian.PutUint16(buf[off+17:], uint16(e.Position.Pos))
		off += entrySize
	}
	return buf
}

// Decode rebuilds a table from Bytes output, re-deriving positions
// and verifying every cache invariant.
func Decode(data []byte) (*Table, error) {
	if len(data) < headerSize || string(data[:4]) != encodeMagic {
		return nil, fmt.Errorf("%w: bad header", ErrCorrupt)
	}
	if data[4] != encodeVersion {
		return nil, fmt.Errorf("%w: unknown version %d", ErrCorrupt, data[4])
	}
	count := binary.BigEndian.Uint64(data[5:])
	// Bound count before multiplying so a crafted header cannot wrap
	// the length check.
	payload := uint64(len(data) - headerSize)
	if count > payload/entrySize || payload != count*entrySize {
		return nil, fmt.Errorf("%w: length mismatch", ErrCorrupt)
	}

	t := New(int(count))
	off := headerSize
	for i := uint64(0); i < count; i++ {
		prime := binary.BigEndian.Uint64(data[off:])
		index := binary.BigEndian.Uint64(data[off+8:])
		ring := int(data[off+16])
		pos := int(binary.BigEndian.Uint16(data[off+17:]))
		off += entrySize

		if index != i+1 {
			return nil, fmt.Errorf("%w: entry %d has index %d", ErrCorrupt, i, index)
		}
		want := lattice.IndexToPosition(index - 1)
		if ring != want.Ring || pos != want.Pos {
			return nil, fmt.Errorf("%w: entry %d position (%d, %d) does not match its index",
				ErrCorrupt, i, ring, pos)
		}
		if err := t.Insert(prime); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
		}
	}
	return t, nil
}
