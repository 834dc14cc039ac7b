// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmf

import "github.com/pkt-cash/pktd/btcutil/er"

// PutUint16LE writes v into buf in little-endian byte order.
func PutUint16LE(buf []byte, v uint16) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
}

// GetUint16LE reads a little-endian uint16 from buf.
func GetUint16LE(buf []byte) uint16 {
	return uint16(buf[0]) | uint16(buf[1])<<8
}

// PutUint32LE writes v into buf in little-endian byte order.
func PutUint32LE(buf []byte, v uint32) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
}

// GetUint32LE reads a little-endian uint32 from buf.
func GetUint32LE(buf []byte) uint32 {
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

// PutUint64LE writes v into buf in little-endian byte order.
func PutUint64LE(buf []byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * uint(i)))
	}
}

// GetUint64LE reads a little-endian uint64 from buf.
func GetUint64LE(buf []byte) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(buf[i]) << (8 * uint(i))
	}
	return v
}

// GetCompactSize decodes a Bitcoin "compact size" length prefix from buf
// starting at offset, returning the value and the new offset: a lead byte
// below 253 is the value itself; 253/254/255 escape to a following
// 2/4/8-byte little-endian integer.
func GetCompactSize(buf []byte, offset int) (uint64, int, er.R) {
	if offset >= len(buf) {
		return 0, offset, ErrTruncated.Default()
	}
	lead := buf[offset]
	pos := offset + 1
	switch {
	case lead < 253:
		return uint64(lead), pos, nil
	case lead == 253:
		if pos+2 > len(buf) {
			return 0, offset, ErrTruncated.Default()
		}
		return uint64(GetUint16LE(buf[pos:])), pos + 2, nil
	case lead == 254:
		if pos+4 > len(buf) {
			return 0, offset, ErrTruncated.Default()
		}
		return uint64(GetUint32LE(buf[pos:])), pos + 4, nil
	default: // 255
		if pos+8 > len(buf) {
			return 0, offset, ErrTruncated.Default()
		}
		return GetUint64LE(buf[pos:]), pos + 8, nil
	}
}

// PutCompactSize appends the Bitcoin "compact size" encoding of v to buf
// and returns the result.
func PutCompactSize(buf []byte, v uint64) []byte {
	switch {
	case v < 253:
		return append(buf, byte(v))
	case v <= 0xFFFF:
		var tmp [2]byte
		PutUint16LE(tmp[:], uint16(v))
		return append(append(buf, 253), tmp[:]...)
	case v <= 0xFFFFFFFF:
		var tmp [4]byte
		PutUint32LE(tmp[:], uint32(v))
		return append(append(buf, 254), tmp[:]...)
	default:
		var tmp [8]byte
		PutUint64LE(tmp[:], v)
		return append(append(buf, 255), tmp[:]...)
	}
}
