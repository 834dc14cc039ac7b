// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmf

import "github.com/pkt-cash/pktd/btcutil/er"

// maxVarintBytes is the longest a CMF varint is allowed to be on the wire:
// a parser gives up with ErrVarintOverflow once a tenth byte would be
// needed. Because each continuation byte subtracts 1 from the remaining
// magnitude after shifting (see putVarint), 9 bytes reach just over half
// of the uint64 range (up to 9295997013522923647) rather than all of it —
// encoding the small remainder above that threshold genuinely requires a
// tenth byte. That matches the source format's own ingestion bound; values
// in that sliver are rejected symmetrically by both Builder and Parser, so
// round-tripping still holds for every value this package will accept.
const maxVarintBytes = 9

// maxVarintEncodeBytes is the buffer size putVarint needs to never
// overrun: the true worst case, encoding math.MaxUint64, takes 10 bytes,
// one more than a parser will ever agree to read back.
const maxVarintEncodeBytes = 10

// putVarint encodes v into buf (which must have room for at least
// maxVarintEncodeBytes) using CMF's unique-length base-128 encoding: each
// byte holds 7 data bits, all but the last have bit 7 set as a
// continuation flag. Unlike a plain base-128 varint, encoding subtracts 1
// on each continuation (and decoding adds it back), which is what gives
// every value exactly one valid encoding (no redundant
// leading-zero-continuation byte is possible).
// It returns the number of bytes written.
func putVarint(buf []byte, v uint64) int {
	var tmp [maxVarintEncodeBytes]byte
	pos := 0
	for {
		b := byte(v & 0x7F)
		if pos != 0 {
			b |= 0x80
		}
		tmp[pos] = b
		if v <= 0x7F {
			break
		}
		v = (v >> 7) - 1
		pos++
	}
	n := pos + 1
	// tmp holds the digits least-significant-first; the wire form is
	// most-significant-first.
	for i := 0; i < n; i++ {
		buf[i] = tmp[n-1-i]
	}
	return n
}

// varintSize returns the number of bytes putVarint would write for v,
// without doing the write.
func varintSize(v uint64) int {
	n := 1
	for v > 0x7F {
		v = (v >> 7) - 1
		n++
	}
	return n
}

// getVarint decodes a CMF varint from buf starting at offset. It returns
// the decoded value and the new offset. Reading never examines more than
// maxVarintBytes bytes; running out of input before a terminating
// (continuation-bit-clear) byte is ErrTruncated, and a varint that is
// still continuing after maxVarintBytes bytes is ErrVarintOverflow.
func getVarint(buf []byte, offset int) (uint64, int, er.R) {
	var result uint64
	pos := offset
	for i := 0; i < maxVarintBytes; i++ {
		if pos >= len(buf) {
			return 0, offset, ErrTruncated.Default()
		}
		b := buf[pos]
		pos++
		result = (result << 7) | uint64(b&0x7F)
		if b&0x80 == 0 {
			return result, pos, nil
		}
		result++
	}
	return 0, offset, ErrVarintOverflow.Default()
}
