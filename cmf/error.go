// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmf

import "github.com/pkt-cash/pktd/btcutil/er"

// Err identifies the family of errors the cmf package can return.
var Err = er.NewErrorType("cmf.Err")

var (
	// ErrTruncated is returned when the input ends before a varint,
	// framing byte, or length-prefixed payload is complete.
	ErrTruncated = Err.Code("ErrTruncated")

	// ErrVarintOverflow is returned when a varint would need more than
	// 9 bytes to terminate.
	ErrVarintOverflow = Err.Code("ErrVarintOverflow")

	// ErrMalformedTag is returned when an extended tag decodes to a
	// value greater than 0xFFFF.
	ErrMalformedTag = Err.Code("ErrMalformedTag")

	// ErrReservedType is returned when a framing byte names ValueType
	// 6 or 7, both of which are reserved and undefined on the wire.
	ErrReservedType = Err.Code("ErrReservedType")

	// ErrIntOverflow is returned by Builder.AddInt when the magnitude of
	// a signed value cannot be represented (math.MinInt64).
	ErrIntOverflow = Err.Code("ErrIntOverflow")

	// ErrWrongType is returned when a typed accessor on Value is called
	// against a Value holding a different ValueType.
	ErrWrongType = Err.Code("ErrWrongType")

	// ErrInvalidUTF8 is returned by Data when a String field's payload is
	// not valid UTF-8.
	ErrInvalidUTF8 = Err.Code("ErrInvalidUTF8")
)
