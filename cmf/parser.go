// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmf

import (
	"unicode/utf8"

	"github.com/pkt-cash/pktd/btcutil/er"
)

// Event is the outcome of a call to Parser.Next.
type Event int

const (
	// FoundTag means a field was decoded; Tag and Data are now valid.
	FoundTag Event = iota
	// EndOfDocument means the parser reached the end of the input with
	// no partial field pending. It is only ever returned when position
	// equalled the input length at entry to Next.
	EndOfDocument
	// ErrorEvent means the input was malformed; the parser's position is
	// restored to the start of the failing field.
	ErrorEvent
)

// Parser iterates the fields of a CMF message out of a byte slice it
// borrows for its entire lifetime. String and ByteArray payloads are not
// copied until Data is called, so the backing slice must outlive any
// unmaterialised field the caller intends to read later.
type Parser struct {
	buf []byte
	pos int

	tag     uint32
	typ     ValueType
	fieldAt int // start offset of the most recently found field
	payload []byte
	num     uint64
}

// NewParser returns a Parser over buf starting at offset 0.
func NewParser(buf []byte) *Parser {
	return &Parser{buf: buf}
}

// Consumed returns the current byte offset into the input.
func (p *Parser) Consumed() int { return p.pos }

// Consume advances the offset by n bytes without decoding, for
// caller-directed skipping over a field whose payload is uninteresting.
func (p *Parser) Consume(n int) {
	p.pos += n
}

// Tag returns the tag of the most recently found field. Valid only after
// Next has returned FoundTag.
func (p *Parser) Tag() uint32 { return p.tag }

// Type returns the ValueType of the most recently found field. Valid only
// after Next has returned FoundTag.
func (p *Parser) Type() ValueType { return p.typ }

// FieldStart returns the offset at which the most recently found field
// began, before its framing byte. Callers that need the byte prefix up to
// (but excluding) a particular field — such as recovering the signed body
// of a v4 transaction up to its first witness tag — use this instead of
// Consumed().
func (p *Parser) FieldStart() int { return p.fieldAt }

// Next decodes the next field and returns FoundTag, EndOfDocument, or
// ErrorEvent. On ErrorEvent the returned er.R describes the failure and
// Consumed() is unchanged from the value it held at entry.
func (p *Parser) Next() (Event, er.R) {
	if p.pos >= len(p.buf) {
		return EndOfDocument, nil
	}
	start := p.pos
	tag, typ, pos, err := getTagType(p.buf, p.pos)
	if err != nil {
		p.pos = start
		return ErrorEvent, err
	}
	switch typ {
	case PositiveNumber, NegativeNumber:
		v, newPos, err := getVarint(p.buf, pos)
		if err != nil {
			p.pos = start
			return ErrorEvent, err
		}
		p.num = v
		pos = newPos
	case String, ByteArray:
		l, newPos, err := getVarint(p.buf, pos)
		if err != nil {
			p.pos = start
			return ErrorEvent, err
		}
		if l > uint64(len(p.buf)-newPos) {
			p.pos = start
			return ErrorEvent, ErrTruncated.Default()
		}
		p.payload = p.buf[newPos : newPos+int(l)]
		pos = newPos + int(l)
	case BoolTrue, BoolFalse:
		// no payload
	default:
		p.pos = start
		return ErrorEvent, ErrReservedType.Default()
	}
	p.tag = tag
	p.typ = typ
	p.fieldAt = start
	p.pos = pos
	return FoundTag, nil
}

// Data materialises the value of the most recently found field into a
// Value. For String and ByteArray this is where the borrowed slice is
// first copied (Bytes) or validated as UTF-8 and copied (Str); calling
// Data more than once for the same field repeats that work.
func (p *Parser) Data() (Value, er.R) {
	switch p.typ {
	case PositiveNumber:
		return Value{typ: PositiveNumber, u: p.num}, nil
	case NegativeNumber:
		return Value{typ: NegativeNumber, u: p.num}, nil
	case BoolTrue:
		return Value{typ: BoolTrue}, nil
	case BoolFalse:
		return Value{typ: BoolFalse}, nil
	case ByteArray:
		owned := make([]byte, len(p.payload))
		copy(owned, p.payload)
		return Value{typ: ByteArray, bytes: owned}, nil
	case String:
		if !utf8.Valid(p.payload) {
			return Value{}, ErrInvalidUTF8.Default()
		}
		return Value{typ: String, str: string(p.payload)}, nil
	default:
		return Value{}, ErrReservedType.Default()
	}
}
