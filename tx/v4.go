// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import (
	"github.com/bitcoinclassic/transactions/cmf"
	"github.com/pkt-cash/pktd/btcutil/er"
)

// v4 tag vocabulary, per the wire format this package reads and writes.
const (
	tagTxEnd                     uint32 = 0
	tagTxInPrevHash              uint32 = 1
	tagTxInPrevIndex             uint32 = 2
	tagTxInPrevHeight            uint32 = 3
	tagTxInputStackItem          uint32 = 4
	tagTxOutValue                uint32 = 5
	tagTxOutScript               uint32 = 6
	tagLockByBlock               uint32 = 7
	tagLockByTime                uint32 = 8
	tagCoinbaseMessage           uint32 = 9
	tagScriptVersion             uint32 = 10
	tagTxInputStackItemContinued uint32 = 11
)

// v4header is the 4-byte prefix naming the v4 wire format.
var v4header = [4]byte{4, 0, 0, 0}

// parseV4 runs the §4.7 state machine over a v4 CMF message. data excludes
// the 4-byte version header already consumed by Read.
func parseV4(data []byte, lint Lint) (*Transaction, er.R) {
	p := cmf.NewParser(data)

	var (
		inputs   []TxIn
		outputs  []TxOut
		coinbase []byte
		warnings []er.R
		inBody   = true
		inputIdx = -1
		// pendingValues holds TxOutValue arrivals with no output yet
		// waiting for one; pendingOutIdxs holds the indices of outputs
		// still waiting for their TxOutValue. Both are FIFO: a field
		// binds to the oldest outstanding counterpart, which reproduces
		// correct pairing for the ordinary alternating script/value
		// stream as well as for scripts or values that arrive in a run.
		pendingValues  []uint64
		pendingOutIdxs []int
	)

	// warn records a Strict-mode rule violation (§4.7). Under Lenient
	// parsing it is appended to warnings and parsing continues; under
	// Strict parsing it aborts the parse immediately.
	warn := func(err er.R) er.R {
		if lint == StrictParsing {
			return err
		}
		warnings = append(warnings, err)
		return nil
	}

	for {
		ev, err := p.Next()
		if err != nil {
			return nil, err
		}
		if ev == cmf.EndOfDocument {
			break
		}
		tagVal := p.Tag()
		if tagVal == tagTxEnd {
			break // trailing bytes after TxEnd are ignored
		}

		switch tagVal {
		case tagTxInPrevHash:
			if !inBody {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
			}
			hash, derr := dataBytes(p)
			if derr != nil {
				return nil, derr
			}
			var in TxIn
			copy(in.PrevTxID[:], hash)
			inputs = append(inputs, in)

		case tagTxInPrevIndex:
			if !inBody {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
			}
			u, derr := dataUint(p)
			if derr != nil {
				return nil, derr
			}
			if len(inputs) == 0 {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
				break
			}
			inputs[len(inputs)-1].PrevIndex = uint32(u)

		case tagTxInputStackItem, tagTxInputStackItemContinued:
			inBody = false
			if tagVal == tagTxInputStackItem {
				inputIdx++
			} else if inputIdx < 0 {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
				inputIdx = 0
			}
			item, derr := dataBytes(p)
			if derr != nil {
				return nil, derr
			}
			if inputIdx >= len(inputs) {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
				break
			}
			inputs[inputIdx].ScriptItems = append(inputs[inputIdx].ScriptItems, item)
			inputs[inputIdx].Script = append(inputs[inputIdx].Script, flattenPush(item)...)

		case tagTxOutValue:
			if !inBody {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
			}
			u, derr := dataUint(p)
			if derr != nil {
				return nil, derr
			}
			// Per the original source, a TxOutValue binds to the
			// oldest output still waiting for one; if none is waiting
			// it is held pending for the next TxOutScript to claim.
			if len(pendingOutIdxs) > 0 {
				outputs[pendingOutIdxs[0]].Value = u
				pendingOutIdxs = pendingOutIdxs[1:]
			} else {
				pendingValues = append(pendingValues, u)
			}

		case tagTxOutScript:
			if !inBody {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
			}
			script, derr := dataBytes(p)
			if derr != nil {
				return nil, derr
			}
			// A TxOutScript always creates a new output, even if a prior
			// one is still waiting on its TxOutValue: the original source
			// never drops a script in favour of the other half of an
			// earlier, incomplete pair.
			out := TxOut{Script: script}
			if len(pendingValues) > 0 {
				out.Value = pendingValues[0]
				pendingValues = pendingValues[1:]
				outputs = append(outputs, out)
			} else {
				outputs = append(outputs, out)
				pendingOutIdxs = append(pendingOutIdxs, len(outputs)-1)
			}

		case tagCoinbaseMessage:
			if !inBody {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
			}
			if len(inputs) != 0 {
				if werr := warn(ErrStrictValidation.Default()); werr != nil {
					return nil, werr
				}
			}
			msg, derr := dataBytes(p)
			if derr != nil {
				return nil, derr
			}
			coinbase = msg

		case tagTxInPrevHeight, tagScriptVersion, tagLockByBlock, tagLockByTime:
			// TxInPrevHeight is accepted and skipped per spec; the
			// others are reserved for a future format revision.
			if _, derr := p.Data(); derr != nil {
				return nil, derr
			}

		default:
			if werr := warn(ErrStrictValidation.Default()); werr != nil {
				return nil, werr
			}
			if _, derr := p.Data(); derr != nil {
				return nil, derr
			}
		}
	}

	if lint == StrictParsing {
		if (len(coinbase) == 0 && len(inputs) == 0) || len(outputs) == 0 {
			return nil, ErrStrictValidation.Default()
		}
	}

	for i := range inputs {
		if len(inputs[i].ScriptItems) != 0 || len(inputs[i].Script) == 0 {
			continue
		}
		if items, splitErr := splitScript(inputs[i].Script); splitErr == nil {
			inputs[i].ScriptItems = items
		}
	}

	return &Transaction{
		Version:         4,
		Inputs:          inputs,
		Outputs:         outputs,
		NLockTime:       0,
		CoinbaseMessage: coinbase,
		Warnings:        warnings,
	}, nil
}

func dataBytes(p *cmf.Parser) ([]byte, er.R) {
	v, err := p.Data()
	if err != nil {
		return nil, err
	}
	return v.Bytes()
}

func dataUint(p *cmf.Parser) (uint64, er.R) {
	v, err := p.Data()
	if err != nil {
		return 0, err
	}
	return v.Uint()
}

// flattenPush re-encodes a single push item the way it would appear inside
// a concatenated scriptSig, for callers that want Script rather than
// ScriptItems from a v4-sourced TxIn. It always chooses the canonical
// minimal-width encoding, the same one the script item splitter expects on
// the way back in.
func flattenPush(item []byte) []byte {
	n := len(item)
	switch {
	case n == 1 && item[0] == 0:
		return []byte{0}
	case n < 76:
		return append([]byte{byte(n)}, item...)
	case n <= 0xFF:
		return append([]byte{76, byte(n)}, item...)
	case n <= 0xFFFF:
		var lenBuf [2]byte
		cmf.PutUint16LE(lenBuf[:], uint16(n))
		return append(append([]byte{77}, lenBuf[:]...), item...)
	default:
		var lenBuf [4]byte
		cmf.PutUint32LE(lenBuf[:], uint32(n))
		return append(append([]byte{78}, lenBuf[:]...), item...)
	}
}

// writeV4 serialises t per §4.7: the 4-byte version header, the body
// (TxInPrevHash/TxInPrevIndex pairs, then TxOutScript/TxOutValue pairs),
// optionally the witness section (stack items), and always a terminating
// TxEnd when signatures are included. The byte prefix written before the
// first witness tag is the signed body whose hash is the transaction id.
func writeV4(t *Transaction, withSignatures bool) ([]byte, er.R) {
	b, buf := cmf.NewBufferBuilder()
	buf.Write(v4header[:])

	for _, in := range t.Inputs {
		if err := b.AddBytes(tagTxInPrevHash, in.PrevTxID[:]); err != nil {
			return nil, err
		}
		if in.PrevIndex != 0 {
			if err := b.AddUint(tagTxInPrevIndex, uint64(in.PrevIndex)); err != nil {
				return nil, err
			}
		}
	}
	if len(t.Inputs) == 0 && len(t.CoinbaseMessage) > 0 {
		if err := b.AddBytes(tagCoinbaseMessage, t.CoinbaseMessage); err != nil {
			return nil, err
		}
	}
	for _, out := range t.Outputs {
		if err := b.AddBytes(tagTxOutScript, out.Script); err != nil {
			return nil, err
		}
		if err := b.AddUint(tagTxOutValue, out.Value); err != nil {
			return nil, err
		}
	}

	if withSignatures {
		for _, in := range t.Inputs {
			items := in.ScriptItems
			if len(items) == 0 && len(in.Script) > 0 {
				split, err := splitScript(in.Script)
				if err != nil {
					return nil, err
				}
				items = split
			}
			for i, item := range items {
				tagVal := tagTxInputStackItemContinued
				if i == 0 {
					tagVal = tagTxInputStackItem
				}
				if err := b.AddBytes(tagVal, item); err != nil {
					return nil, err
				}
			}
		}
		if err := b.AddBool(tagTxEnd, true); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
