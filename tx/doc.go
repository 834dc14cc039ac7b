// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package tx reads and writes Bitcoin transactions in two wire formats: the
// legacy consensus encoding (versions 1 and 2) and a CMF-based format
// (version 4) that separates the signed body from witness data so the
// unsigned body can be hashed and distributed independently of signatures.
package tx
