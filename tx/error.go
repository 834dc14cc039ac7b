// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tx

import "github.com/pkt-cash/pktd/btcutil/er"

// Err identifies the family of errors the tx package can return.
var Err = er.NewErrorType("tx.Err")

var (
	// ErrTruncatedInput is returned when the input ends before a
	// structure (an input, output, or header) completes.
	ErrTruncatedInput = Err.Code("ErrTruncatedInput")

	// ErrLengthMismatch is returned when a v1 transaction's declared
	// structure does not consume exactly its input length.
	ErrLengthMismatch = Err.Code("ErrLengthMismatch")

	// ErrUnknownVersion is returned when the 4-byte header names a
	// version other than 1, 2, or 4, or has non-zero padding bytes.
	ErrUnknownVersion = Err.Code("ErrUnknownVersion")

	// ErrInvalidScriptForSplit is returned by the script item splitter
	// when it encounters an opcode outside the pure-push subset.
	ErrInvalidScriptForSplit = Err.Code("ErrInvalidScriptForSplit")

	// ErrStrictValidation is returned when Strict-mode parsing of a v4
	// transaction accumulates one or more rule violations (see
	// Transaction.Warnings).
	ErrStrictValidation = Err.CodeWithDefault("ErrStrictValidation",
		errStrictValidationDefault{})
)

type errStrictValidationDefault struct{}

func (errStrictValidationDefault) Error() string {
	return "strict-mode transaction validation failed"
}
