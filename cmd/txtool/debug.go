// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/bitcoinclassic/transactions/tx"
)

// debugString renders t the way the legacy tool's debug output did:
// per-input locktime/sighash annotations followed by a script
// disassembly, then the output list and transaction-wide fields.
func debugString(t *tx.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{\ninputs: [\n")
	for _, in := range t.Inputs {
		fmt.Fprintf(&b, "  {\n    txid: %x\n", in.PrevTxID[:])
		fmt.Fprintf(&b, "    vout: %d\n", in.PrevIndex)
		writeSequence(&b, in.Sequence)
		writeInScript(&b, in.ScriptItems)
		fmt.Fprintf(&b, "  }\n")
	}
	fmt.Fprintf(&b, "]\n")
	if len(t.CoinbaseMessage) > 0 {
		fmt.Fprintf(&b, "coinbase-message: %q\n", t.CoinbaseMessage)
	}
	fmt.Fprintf(&b, "outputs: [\n")
	for _, out := range t.Outputs {
		fmt.Fprintf(&b, "  {\n    amount: %d\n", out.Value)
		fmt.Fprintf(&b, "    script: %s\n", disassembleScript(out.Script))
		fmt.Fprintf(&b, "  }\n")
	}
	fmt.Fprintf(&b, "]\nversion: %d\nnLockTime: %d\n}\n", t.Version, t.NLockTime)
	return b.String()
}

func writeSequence(b *strings.Builder, sequence uint32) {
	lock := tx.DecodeSequence(sequence)
	switch {
	case lock.Disabled:
		fmt.Fprintf(b, "    sequence: %#x\n", sequence)
	case lock.TimeBased:
		fmt.Fprintf(b, "    time-based-relative-locktime: %d (%d sec)\n", lock.Count, lock.Seconds())
	case lock.Count != 0:
		fmt.Fprintf(b, "    block-based-relative-locktime: %d\n", lock.Count)
	}
}

func writeInScript(b *strings.Builder, items [][]byte) {
	fmt.Fprintf(b, "    script: ")
	if len(items) == 2 {
		sig := items[0]
		if len(sig) > 0 {
			base, anyoneCanPay, forkID := tx.DecodeSigHashType(sig[len(sig)-1])
			suffix := ""
			if anyoneCanPay {
				suffix += "|ANYONECANPAY"
			}
			if forkID {
				suffix += "|FORKID"
			}
			fmt.Fprintf(b, "%x [%s%s] %x\n", sig, base, suffix, items[1])
			return
		}
	}
	for i, item := range items {
		if i > 0 {
			fmt.Fprintf(b, " ")
		}
		fmt.Fprintf(b, "%x", item)
	}
	fmt.Fprintf(b, "\n")
}

func disassembleScript(script []byte) string {
	var b strings.Builder
	pos := 0
	for pos < len(script) {
		op := script[pos]
		switch {
		case op == 0:
			b.WriteString("OP_FALSE ")
			pos++
		case op < 76:
			n := int(op)
			if pos+1+n > len(script) {
				b.WriteString("TRUNCATED")
				return b.String()
			}
			fmt.Fprintf(&b, "%x ", script[pos+1:pos+1+n])
			pos += 1 + n
		default:
			fmt.Fprintf(&b, "%s ", tx.OpcodeName(op))
			pos++
		}
	}
	return strings.TrimSpace(b.String())
}
