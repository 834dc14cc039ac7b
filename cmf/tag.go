// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmf

import "github.com/pkt-cash/pktd/btcutil/er"

// extendedTag is the sentinel tag value (the upper 5 bits of the framing
// byte all set) that signals the real tag follows as a varint.
const extendedTag = 31

// maxTag is the largest tag value CMF can represent on the wire.
const maxTag = 0xFFFF

// putTagType writes the framing byte (and, for tag >= extendedTag, the
// follow-on varint) for a field with the given tag and ValueType into buf.
// It returns the number of bytes written. Callers must have already
// rejected tag > maxTag.
func putTagType(buf []byte, tag uint32, typ ValueType) int {
	if tag < extendedTag {
		buf[0] = byte(tag)<<3 | byte(typ)
		return 1
	}
	buf[0] = byte(extendedTag)<<3 | byte(typ)
	return 1 + putVarint(buf[1:], uint64(tag))
}

// tagTypeSize returns the number of bytes putTagType would write for tag.
func tagTypeSize(tag uint32) int {
	if tag < extendedTag {
		return 1
	}
	return 1 + varintSize(uint64(tag))
}

// getTagType decodes a framing byte (and, for an extended tag, the
// follow-on varint) from buf starting at offset. It returns the tag, the
// ValueType, and the new offset.
func getTagType(buf []byte, offset int) (uint32, ValueType, int, er.R) {
	if offset >= len(buf) {
		return 0, 0, offset, ErrTruncated.Default()
	}
	b := buf[offset]
	pos := offset + 1
	typ := ValueType(b & 0x7)
	if !typ.valid() {
		return 0, 0, offset, ErrReservedType.Default()
	}
	tag := uint32(b >> 3)
	if tag != extendedTag {
		return tag, typ, pos, nil
	}
	v, newPos, err := getVarint(buf, pos)
	if err != nil {
		return 0, 0, offset, err
	}
	if v > maxTag {
		return 0, 0, offset, ErrMalformedTag.Default()
	}
	return uint32(v), typ, newPos, nil
}
