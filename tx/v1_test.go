// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import (
	"testing"

	"github.com/bitcoinclassic/transactions/cmf"
	"github.com/stretchr/testify/require"
)

func le32(v uint32) []byte {
	buf := make([]byte, 4)
	cmf.PutUint32LE(buf, v)
	return buf
}

func le64(v uint64) []byte {
	buf := make([]byte, 8)
	cmf.PutUint64LE(buf, v)
	return buf
}

// buildV1 assembles a minimal legacy-encoding transaction with one input
// and one output, for use as a test fixture.
func buildV1(version uint32, prevTxID [32]byte, prevIndex uint32, inScript []byte,
	sequence uint32, value uint64, outScript []byte, nLockTime uint32) []byte {

	var buf []byte
	buf = append(buf, le32(version)...)
	buf = cmf.PutCompactSize(buf, 1) // input count
	// on-wire prevTxID is byte-reversed relative to display order
	reversed := make([]byte, 32)
	for i := 0; i < 32; i++ {
		reversed[i] = prevTxID[31-i]
	}
	buf = append(buf, reversed...)
	buf = append(buf, le32(prevIndex)...)
	buf = cmf.PutCompactSize(buf, uint64(len(inScript)))
	buf = append(buf, inScript...)
	buf = append(buf, le32(sequence)...)
	buf = cmf.PutCompactSize(buf, 1) // output count
	buf = append(buf, le64(value)...)
	buf = cmf.PutCompactSize(buf, uint64(len(outScript)))
	buf = append(buf, outScript...)
	buf = append(buf, le32(nLockTime)...)
	return buf
}

func TestReadV1RoundTripsFields(t *testing.T) {
	var prevID [32]byte
	for i := range prevID {
		prevID[i] = byte(i)
	}
	inScript := []byte{0x01, 0xAB}
	outScript := []byte{0x03, 0x01, 0x02, 0x03}

	raw := buildV1(1, prevID, 7, inScript, 0xFFFFFFFE, 5000, outScript, 600000)

	txn, err := Read(raw, StrictParsing)
	require.Nil(t, err)
	require.Equal(t, 1, txn.Version)
	require.Len(t, txn.Inputs, 1)
	require.Equal(t, prevID, [32]byte(txn.Inputs[0].PrevTxID))
	require.Equal(t, uint32(7), txn.Inputs[0].PrevIndex)
	require.Equal(t, uint32(0xFFFFFFFE), txn.Inputs[0].Sequence)
	require.Equal(t, inScript, txn.Inputs[0].Script)
	require.Equal(t, [][]byte{{0xAB}}, txn.Inputs[0].ScriptItems)
	require.Len(t, txn.Outputs, 1)
	require.Equal(t, uint64(5000), txn.Outputs[0].Value)
	require.Equal(t, outScript, txn.Outputs[0].Script)
	require.Equal(t, uint32(600000), txn.NLockTime)
	require.Empty(t, txn.Warnings)
}

func TestReadV1TruncatedInput(t *testing.T) {
	var prevID [32]byte
	raw := buildV1(1, prevID, 0, []byte{0x01, 0xAB}, 0, 1, []byte{0x00}, 0)
	_, err := Read(raw[:len(raw)-6], StrictParsing)
	require.NotNil(t, err)
}

func TestReadV1LenientAccumulatesScriptWarning(t *testing.T) {
	var prevID [32]byte
	badScript := []byte{0xAC} // OP_CHECKSIG, not a push opcode
	raw := buildV1(1, prevID, 0, badScript, 0, 1, []byte{0x00}, 0)

	txn, err := Read(raw, LenientParsing)
	require.Nil(t, err)
	require.Len(t, txn.Warnings, 1)
	require.True(t, ErrInvalidScriptForSplit.Is(txn.Warnings[0]))

	_, strictErr := Read(raw, StrictParsing)
	require.NotNil(t, strictErr)
	require.True(t, ErrInvalidScriptForSplit.Is(strictErr))
}

func TestReadUnknownVersion(t *testing.T) {
	raw := append(le32(3), 0x00)
	_, err := Read(raw, LenientParsing)
	require.NotNil(t, err)
	require.True(t, ErrUnknownVersion.Is(err))
}

func TestReadHeaderPaddingMustBeZero(t *testing.T) {
	raw := []byte{1, 1, 0, 0, 0x00}
	_, err := Read(raw, LenientParsing)
	require.NotNil(t, err)
	require.True(t, ErrUnknownVersion.Is(err))
}
