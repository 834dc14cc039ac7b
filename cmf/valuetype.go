// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmf

import (
	"fmt"

	"github.com/pkt-cash/pktd/btcutil/er"
)

// ValueType identifies the wire kind of a field's value. The numeric values
// are wire-visible: they occupy the low 3 bits of a field's framing byte.
type ValueType uint8

const (
	// PositiveNumber is a varint-encoded non-negative integer.
	PositiveNumber ValueType = 0
	// NegativeNumber is a varint-encoded magnitude with an implied
	// negative sign.
	NegativeNumber ValueType = 1
	// String is a varint length prefix followed by that many UTF-8 bytes.
	String ValueType = 2
	// ByteArray is a varint length prefix followed by that many raw bytes.
	ByteArray ValueType = 3
	// BoolTrue carries no payload.
	BoolTrue ValueType = 4
	// BoolFalse carries no payload.
	BoolFalse ValueType = 5
)

func (t ValueType) String() string {
	switch t {
	case PositiveNumber:
		return "PositiveNumber"
	case NegativeNumber:
		return "NegativeNumber"
	case String:
		return "String"
	case ByteArray:
		return "ByteArray"
	case BoolTrue:
		return "BoolTrue"
	case BoolFalse:
		return "BoolFalse"
	default:
		return fmt.Sprintf("ValueType(%d)", uint8(t))
	}
}

// valid reports whether t is one of the six defined wire value types. 6 and
// 7 are reserved and must be rejected by a parser.
func (t ValueType) valid() bool {
	return t <= BoolFalse
}

// Value is the heterogeneous result of materialising a parsed field. Which
// of the typed accessors below succeed for a given Value is determined by
// Type; the others return ErrWrongType.
type Value struct {
	typ   ValueType
	u     uint64
	bytes []byte // owned copy made by Parser.Data
	str   string
}

// Type returns the wire ValueType this Value was decoded from.
func (v Value) Type() ValueType { return v.typ }

// Uint returns the value as an unsigned 64-bit integer. Valid for
// PositiveNumber.
func (v Value) Uint() (uint64, er.R) {
	if v.typ != PositiveNumber {
		return 0, ErrWrongType.Default()
	}
	return v.u, nil
}

// Int returns the value as a signed 64-bit integer. Valid for
// PositiveNumber and NegativeNumber.
func (v Value) Int() (int64, er.R) {
	switch v.typ {
	case PositiveNumber:
		return int64(v.u), nil
	case NegativeNumber:
		return -int64(v.u), nil
	default:
		return 0, ErrWrongType.Default()
	}
}

// Bool returns the value as a boolean. Valid for BoolTrue and BoolFalse.
func (v Value) Bool() (bool, er.R) {
	switch v.typ {
	case BoolTrue:
		return true, nil
	case BoolFalse:
		return false, nil
	default:
		return false, ErrWrongType.Default()
	}
}

// Bytes returns the value as a byte slice. Valid for ByteArray and String.
func (v Value) Bytes() ([]byte, er.R) {
	switch v.typ {
	case ByteArray:
		return v.bytes, nil
	case String:
		return []byte(v.str), nil
	default:
		return nil, ErrWrongType.Default()
	}
}

// Str returns the value as a string. Valid for String only.
func (v Value) Str() (string, er.R) {
	if v.typ != String {
		return "", ErrWrongType.Default()
	}
	return v.str, nil
}
