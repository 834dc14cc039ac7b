// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkt-cash/pktd/btcutil/er"
)

// Lint selects how aggressively Read enforces the structural rules of
// §4.7: Strict turns any accumulated warning into a failure, Lenient
// returns a best-effort Transaction alongside the warnings.
type Lint int

const (
	// LenientParsing tolerates rule violations, returning a best-effort
	// Transaction plus Warnings.
	LenientParsing Lint = iota
	// StrictParsing fails the read if any warning was accumulated.
	StrictParsing
)

// TxIn is one spent output being consumed by a Transaction.
type TxIn struct {
	// PrevTxID is the 32-byte id of the transaction holding the output
	// being spent, in display (big-endian) byte order.
	PrevTxID chainhash.Hash
	// PrevIndex is the output index within the previous transaction.
	PrevIndex uint32
	// Sequence is the input's raw sequence field; see DecodeSequence for
	// its relative-locktime interpretation.
	Sequence uint32
	// Script is the raw, unparsed signature script (v1) or concatenated
	// witness stack items (v4).
	Script []byte
	// ScriptItems is Script split into its push-only items by
	// splitScript; empty if splitting failed under Lenient parsing.
	ScriptItems [][]byte
}

// TxOut is one newly created output.
type TxOut struct {
	// Value is the amount in satoshis.
	Value uint64
	// Script is the output's locking script.
	Script []byte
}

// Transaction is the logical, format-independent view of a Bitcoin
// transaction: the union of what the legacy v1/v2 encoding and the v4 CMF
// encoding can both represent.
type Transaction struct {
	// Version is 1, 2, or 4, reflecting which wire format Read parsed.
	Version int
	Inputs  []TxIn
	Outputs []TxOut
	// NLockTime is the transaction-wide absolute locktime.
	NLockTime uint32
	// CoinbaseMessage is only non-empty when Inputs is empty.
	CoinbaseMessage []byte

	// Warnings accumulates non-fatal anomalies found during a Lenient
	// parse (unknown tags, rule violations that Strict mode would have
	// failed on). Always empty after a successful Strict parse.
	Warnings []er.R
}

// Read decodes a Transaction from its on-wire form: a 4-byte header naming
// the version, followed by either the legacy consensus body (versions 1
// and 2) or a v4 CMF message (version 4).
func Read(data []byte, lint Lint) (*Transaction, er.R) {
	if len(data) <= 4 || data[1] != 0 || data[2] != 0 || data[3] != 0 {
		return nil, ErrUnknownVersion.Default()
	}
	switch {
	case data[0] == 1 || data[0] == 2:
		return parseV1(int(data[0]), data[4:], lint)
	case data[0] == 4:
		return parseV4(data[4:], lint)
	default:
		return nil, ErrUnknownVersion.Default()
	}
}

// WriteV4 serialises t in the v4 CMF wire format, either with or without
// the witness (signature) section. With withSignatures set it fails with
// ErrInvalidScriptForSplit when an input has no ScriptItems and a Script
// that is not push-only; writing into the in-memory buffer itself does
// not fail.
func (t *Transaction) WriteV4(withSignatures bool) ([]byte, er.R) {
	return writeV4(t, withSignatures)
}

// TxID hashes the signed body of a v4-serialised transaction (everything
// up to the first witness tag) with double-SHA256, mirroring how the
// legacy source's comment describes the transaction id: the data that
// unlocking scripts sign over, not the witness itself. It re-serialises t
// as v4 first, so it is meaningful for any Transaction regardless of which
// format it was originally read from.
func (t *Transaction) TxID() (chainhash.Hash, er.R) {
	body, err := t.WriteV4(false)
	if err != nil {
		return chainhash.Hash{}, err
	}
	return chainhash.DoubleHashH(body), nil
}
