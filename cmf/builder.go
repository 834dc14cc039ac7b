// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cmf

import (
	"bytes"
	"math"

	"github.com/pkt-cash/pktd/btcutil/er"
)

// Sink is the capability a Builder appends encoded fields to. Any
// io.Writer-shaped type (a bytes.Buffer, a file, a network connection)
// satisfies it; the Builder never inspects or rewinds what it has written.
type Sink interface {
	Write(p []byte) (int, error)
}

// scratchSize covers the worst case a single field's framing can need:
// 1 framing byte + up to 3 bytes of extended tag varint + up to 9 bytes of
// value varint (String/ByteArray length prefixes are the same shape).
const scratchSize = 1 + 3 + maxVarintBytes

// Builder appends CMF fields to a Sink. It holds no buffered state beyond
// the field currently being written and never looks at previously written
// bytes, matching the one-shot append contract of the source format.
type Builder struct {
	sink    Sink
	scratch [scratchSize]byte
}

// NewBuilder returns a Builder that appends to an existing Sink the caller
// owns; the Builder never closes it.
func NewBuilder(sink Sink) *Builder {
	return &Builder{sink: sink}
}

// NewBufferBuilder returns a Builder over a freshly allocated, in-memory
// buffer the Builder itself owns. Use Bytes to retrieve the result.
func NewBufferBuilder() (*Builder, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewBuilder(buf), buf
}

func (b *Builder) writeTagType(tag uint32, typ ValueType) er.R {
	if tag > maxTag {
		return ErrMalformedTag.Default()
	}
	n := putTagType(b.scratch[:], tag, typ)
	if _, err := b.sink.Write(b.scratch[:n]); err != nil {
		return er.E(err)
	}
	return nil
}

func (b *Builder) writeVarint(v uint64) er.R {
	if varintSize(v) > maxVarintBytes {
		return ErrVarintOverflow.Default()
	}
	n := putVarint(b.scratch[:], v)
	if _, err := b.sink.Write(b.scratch[:n]); err != nil {
		return er.E(err)
	}
	return nil
}

// AddUint appends a PositiveNumber field.
func (b *Builder) AddUint(tag uint32, v uint64) er.R {
	if err := b.writeTagType(tag, PositiveNumber); err != nil {
		return err
	}
	return b.writeVarint(v)
}

// AddInt appends a PositiveNumber or NegativeNumber field depending on
// sign; zero is encoded as PositiveNumber. math.MinInt64 has no
// representable positive magnitude and is rejected with ErrIntOverflow
// rather than silently reinterpreted as unsigned.
func (b *Builder) AddInt(tag uint32, v int64) er.R {
	if v == math.MinInt64 {
		return ErrIntOverflow.Default()
	}
	if v >= 0 {
		return b.AddUint(tag, uint64(v))
	}
	if err := b.writeTagType(tag, NegativeNumber); err != nil {
		return err
	}
	return b.writeVarint(uint64(-v))
}

// AddBytes appends a ByteArray field.
func (b *Builder) AddBytes(tag uint32, v []byte) er.R {
	if err := b.writeTagType(tag, ByteArray); err != nil {
		return err
	}
	if err := b.writeVarint(uint64(len(v))); err != nil {
		return err
	}
	if _, err := b.sink.Write(v); err != nil {
		return er.E(err)
	}
	return nil
}

// AddString appends a String field; v is written as its raw UTF-8 bytes.
func (b *Builder) AddString(tag uint32, v string) er.R {
	if err := b.writeTagType(tag, String); err != nil {
		return err
	}
	if err := b.writeVarint(uint64(len(v))); err != nil {
		return err
	}
	if _, err := b.sink.Write([]byte(v)); err != nil {
		return er.E(err)
	}
	return nil
}

// AddBool appends a BoolTrue or BoolFalse field; it carries no payload
// bytes beyond the framing byte.
func (b *Builder) AddBool(tag uint32, v bool) er.R {
	typ := BoolFalse
	if v {
		typ = BoolTrue
	}
	return b.writeTagType(tag, typ)
}
