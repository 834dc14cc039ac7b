// Copyright (c) 2024 The transactions developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command txtool reads a Bitcoin transaction (legacy consensus or v4 CMF
// form) and optionally rewrites it in the v4 format, with or without its
// witness section, and/or prints a human-readable disassembly.
package main

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/pkt-cash/pktd/pktlog/log"

	"github.com/bitcoinclassic/transactions/tx"
)

type config struct {
	RawTx bool `long:"rawtx" description:"Treat the input argument as hex-encoded transaction bytes instead of a file path"`
	Debug bool `short:"d" long:"debug" description:"Print a human-readable disassembly of the transaction"`
}

type args struct {
	Input         string `positional-arg-name:"input" required:"true"`
	OutWithSig    string `positional-arg-name:"out-with-sign"`
	OutWithoutSig string `positional-arg-name:"out-small"`
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config{}
	var positional args
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Name = "txtool"
	rest, errr := parser.Parse()
	if errr != nil {
		if e, ok := errr.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return 1
	}
	if len(rest) < 1 {
		fmt.Fprintln(os.Stderr, "an input transaction is required")
		parser.WriteHelp(os.Stderr)
		return 1
	}
	positional.Input = rest[0]
	if len(rest) > 1 {
		positional.OutWithSig = rest[1]
	}
	if len(rest) > 2 {
		positional.OutWithoutSig = rest[2]
	}

	raw, err := readInput(positional.Input, cfg.RawTx)
	if err != nil {
		log.Errorf("reading input: %v", err)
		return 1
	}

	lint := tx.LenientParsing
	transaction, txErr := tx.Read(raw, lint)
	if txErr != nil {
		log.Errorf("parsing transaction: %v", txErr)
		return 1
	}
	for _, w := range transaction.Warnings {
		log.Warnf("parse warning: %v", w)
	}

	if cfg.Debug {
		fmt.Println(debugString(transaction))
	}

	if positional.OutWithSig != "" {
		if writeErr := writeTransaction(positional.OutWithSig, transaction, true); writeErr != nil {
			log.Errorf("%v", writeErr)
			return 1
		}
	}
	if positional.OutWithoutSig != "" {
		if writeErr := writeTransaction(positional.OutWithoutSig, transaction, false); writeErr != nil {
			log.Errorf("%v", writeErr)
			return 1
		}
	}
	return 0
}

func readInput(input string, isRawHex bool) ([]byte, error) {
	if isRawHex {
		return hex.DecodeString(input)
	}
	return ioutil.ReadFile(input)
}

// writeTransaction serialises t as v4 and writes it to path, refusing to
// overwrite a file that already exists.
func writeTransaction(path string, t *tx.Transaction, withSig bool) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("output file %q already exists", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	out, txErr := t.WriteV4(withSig)
	if txErr != nil {
		return fmt.Errorf("serialising transaction: %v", txErr)
	}
	return ioutil.WriteFile(path, out, 0644)
}
