// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import (
	"testing"

	"github.com/bitcoinclassic/transactions/cmf"
	"github.com/stretchr/testify/require"
)

func TestSplitScriptPushOnly(t *testing.T) {
	script := []byte{
		0x00,                   // empty push
		0x03, 0x01, 0x02, 0x03, // direct push of 3 bytes
	}
	items, err := splitScript(script)
	require.Nil(t, err)
	require.Equal(t, [][]byte{{0}, {1, 2, 3}}, items)
}

func TestSplitScriptPushData1(t *testing.T) {
	payload := make([]byte, 80)
	for i := range payload {
		payload[i] = byte(i)
	}
	script := append([]byte{76, byte(len(payload))}, payload...)
	items, err := splitScript(script)
	require.Nil(t, err)
	require.Len(t, items, 1)
	require.Equal(t, payload, items[0])
}

func TestSplitScriptPushData2LittleEndian(t *testing.T) {
	payload := make([]byte, 300)
	script := append([]byte{77, 0x2C, 0x01}, payload...) // 300 = 0x012C, LE: 2C 01
	items, err := splitScript(script)
	require.Nil(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0], 300)
}

func TestSplitScriptPushData4LittleEndian(t *testing.T) {
	payload := make([]byte, 70000) // exceeds the 2-byte PUSHDATA2 range
	for i := range payload {
		payload[i] = byte(i)
	}
	lenBuf := make([]byte, 4)
	cmf.PutUint32LE(lenBuf, uint32(len(payload)))
	script := append(append([]byte{78}, lenBuf...), payload...)

	items, err := splitScript(script)
	require.Nil(t, err)
	require.Len(t, items, 1)
	require.Equal(t, payload, items[0])
}

func TestSplitScriptRejectsNonPushOpcode(t *testing.T) {
	_, err := splitScript([]byte{0xAC}) // OP_CHECKSIG
	require.NotNil(t, err)
	require.True(t, ErrInvalidScriptForSplit.Is(err))
}

func TestSplitScriptTruncated(t *testing.T) {
	_, err := splitScript([]byte{0x05, 0x01, 0x02}) // claims 5 bytes, has 2
	require.NotNil(t, err)
	require.True(t, ErrTruncatedInput.Is(err))
}
