// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cmf implements the Compact Message Format: a schema-free,
// tag/type/value binary wire encoding. Every field is a (tag, type, value)
// triple; unknown tags are skippable and length-prefixed blobs make parsing
// streamable without a schema, comparable to a binary dialect of JSON.
//
// A Builder appends fields to a sink; a Parser iterates fields out of a
// byte slice lazily, borrowing String/ByteArray payloads from the input
// until Data is called.
package cmf
