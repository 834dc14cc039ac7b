// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import "github.com/pkt-cash/pktd/btcutil/er"

// splitScript converts a raw input script into its ordered list of push
// items. It accepts only the pure-push opcode subset a signature script or
// scriptSig is built from: a zero byte (empty push), direct pushes of 1-75
// bytes, and OP_PUSHDATA1/2/4 (opcodes 76-78) with their 1/2/4-byte
// little-endian length prefix. Any other opcode is rejected.
func splitScript(script []byte) ([][]byte, er.R) {
	var items [][]byte
	pos := 0
	length := len(script)
	for pos < length {
		op := script[pos]
		switch {
		case op == 0:
			items = append(items, []byte{0})
			pos++
		case op < 76:
			n := int(op)
			if pos+1+n > length {
				return nil, ErrTruncatedInput.Default()
			}
			items = append(items, script[pos+1:pos+1+n])
			pos += 1 + n
		case op <= 78:
			width := 1
			switch op {
			case 77:
				width = 2
			case 78:
				width = 4
			}
			if pos+1+width > length {
				return nil, ErrTruncatedInput.Default()
			}
			n := 0
			for i := 0; i < width; i++ {
				n |= int(script[pos+1+i]) << (8 * uint(i))
			}
			start := pos + 1 + width
			if start+n > length {
				return nil, ErrTruncatedInput.Default()
			}
			items = append(items, script[start:start+n])
			pos = start + n
		default:
			return nil, ErrInvalidScriptForSplit.Default()
		}
	}
	return items, nil
}
