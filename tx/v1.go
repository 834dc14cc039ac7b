// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import (
	"github.com/bitcoinclassic/transactions/cmf"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkt-cash/pktd/btcutil/er"
)

// parseV1 decodes the legacy Bitcoin consensus transaction encoding:
// varint-prefixed input and output lists followed by a 4-byte locktime.
// data excludes the 4-byte version header already consumed by Read.
func parseV1(version int, data []byte, lint Lint) (*Transaction, er.R) {
	length := len(data)
	pos := 0

	inCount, newPos, err := cmf.GetCompactSize(data, pos)
	if err != nil {
		return nil, ErrTruncatedInput.Default()
	}
	pos = newPos

	var warnings []er.R
	inputs := make([]TxIn, 0, inCount)
	for i := uint64(0); i < inCount; i++ {
		if pos+32+4 > length {
			return nil, ErrTruncatedInput.Default()
		}
		var prevTxID chainhash.Hash
		for j := 0; j < 32; j++ {
			prevTxID[j] = data[pos+31-j]
		}
		pos += 32
		prevIndex := cmf.GetUint32LE(data[pos:])
		pos += 4

		scriptLen, newPos, err := cmf.GetCompactSize(data, pos)
		if err != nil || scriptLen >= uint64(length-newPos) {
			return nil, ErrTruncatedInput.Default()
		}
		pos = newPos
		script := data[pos : pos+int(scriptLen)]
		pos += int(scriptLen)

		if pos+4 > length {
			return nil, ErrTruncatedInput.Default()
		}
		sequence := cmf.GetUint32LE(data[pos:])
		pos += 4

		items, splitErr := splitScript(script)
		if splitErr != nil {
			if lint == StrictParsing {
				return nil, splitErr
			}
			warnings = append(warnings, splitErr)
		}
		inputs = append(inputs, TxIn{
			PrevTxID:    prevTxID,
			PrevIndex:   prevIndex,
			Sequence:    sequence,
			Script:      script,
			ScriptItems: items,
		})
	}

	outCount, newPos, err := cmf.GetCompactSize(data, pos)
	if err != nil {
		return nil, ErrTruncatedInput.Default()
	}
	pos = newPos

	outputs := make([]TxOut, 0, outCount)
	for i := uint64(0); i < outCount; i++ {
		if pos+8 > length {
			return nil, ErrTruncatedInput.Default()
		}
		value := cmf.GetUint64LE(data[pos:])
		pos += 8

		scriptLen, newPos, err := cmf.GetCompactSize(data, pos)
		if err != nil || scriptLen >= uint64(length-newPos) {
			return nil, ErrTruncatedInput.Default()
		}
		pos = newPos
		script := data[pos : pos+int(scriptLen)]
		pos += int(scriptLen)

		outputs = append(outputs, TxOut{Value: value, Script: script})
	}

	if pos+4 != length {
		return nil, ErrLengthMismatch.Default()
	}
	nLockTime := cmf.GetUint32LE(data[pos:])

	return &Transaction{
		Version:   version,
		Inputs:    inputs,
		Outputs:   outputs,
		NLockTime: nLockTime,
		Warnings:  warnings,
	}, nil
}
