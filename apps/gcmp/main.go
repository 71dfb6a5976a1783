//
// main.go
//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"os"

	"github.com/markkurossi/gcmp"
	"github.com/markkurossi/gcmp/compare"
	"github.com/markkurossi/gcmp/env"
	"github.com/markkurossi/gcmp/integer"
	"github.com/markkurossi/gcmp/p2p"
	"github.com/rs/zerolog"
)

func main() {
	garbler := flag.Bool("g", false, "Garbler / Evaluator mode")
	addr := flag.String("addr", ":8080", "Garbler listen / connect address")
	width := flag.Int("w", 32, "Operand width in bits")
	signed := flag.Bool("s", false, "Signed operands")
	opName := flag.String("op", "cmp", "Operation: cmp or eq")
	revealName := flag.String("reveal", "both",
		"Result reveal: both, garbler, or evaluator")
	fVerbose := flag.Bool("v", false, "Verbose output")
	fDebug := flag.Bool("d", false, "Debug output")
	dot := flag.String("dot", "", "Write circuit in dot format to file")
	stats := flag.Bool("stats", false, "Print circuit statistics")
	dump := flag.Bool("dump", false, "Print circuit gates")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out: os.Stderr,
	}).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	if *fDebug {
		logger = logger.Level(zerolog.DebugLevel)
	}
	cfg := &env.Config{
		Log:     &logger,
		Verbose: *fVerbose,
	}

	op, err := compare.ParseOp(*opName)
	if err != nil {
		log.Fatal(err)
	}
	reveal, err := compare.ParseReveal(*revealName)
	if err != nil {
		log.Fatal(err)
	}

	if len(*dot) > 0 || *stats || *dump {
		err = dumpCircuit(op, *width, *signed, *dot, *stats, *dump)
		if err != nil {
			log.Fatal(err)
		}
		if len(flag.Args()) == 0 {
			return
		}
	}

	if len(flag.Args()) != 1 {
		fmt.Printf("Usage: gcmp [options] value\n")
		flag.PrintDefaults()
		os.Exit(1)
	}
	value, err := integer.Parse(flag.Arg(0), *width, *signed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Input: %v\n", gcmp.Native(value))

	if *garbler {
		err = garblerMode(cfg, *addr, op, reveal, value)
	} else {
		err = evaluatorMode(cfg, *addr, value)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func dumpCircuit(op compare.Op, width int, signed bool, dot string,
	stats, dump bool) error {

	circ, err := compare.NewCircuit(op, width, signed)
	if err != nil {
		return err
	}
	if stats {
		fmt.Printf("Circuit: %v\n", circ)
		circ.PrintStats(os.Stdout)
	}
	if dump {
		circ.Dump(os.Stdout)
	}
	if len(dot) > 0 {
		f, err := os.Create(dot)
		if err != nil {
			return err
		}
		circ.Dot(f)
		return f.Close()
	}
	return nil
}

func garblerMode(cfg *env.Config, addr string, op compare.Op,
	reveal compare.Reveal, value *integer.Value) error {

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	fmt.Printf("Listening for connections at %s\n", addr)

	for {
		nc, err := ln.Accept()
		if err != nil {
			return err
		}
		fmt.Printf("New connection from %s\n", nc.RemoteAddr())

		conn := p2p.NewConn(nc)
		result, err := compare.Garbler(cfg, conn, op, reveal, value)
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			cfg.GetLogger().Error().Err(err).
				Str("peer", nc.RemoteAddr().String()).Msg("comparison failed")
			continue
		}
		printResult(op, result)
	}
}

func evaluatorMode(cfg *env.Config, addr string, value *integer.Value) error {
	nc, err := net.Dial("tcp", addr)
	if err != nil {
		return err
	}
	conn := p2p.NewConn(nc)
	defer conn.Close()

	result, err := compare.Evaluator(cfg, conn, value)
	if err != nil {
		return err
	}
	if result != nil {
		printResult(result.Op, result)
	} else {
		printResult(compare.OpCompare, nil)
	}
	return nil
}

func printResult(op compare.Op, result *compare.Result) {
	if result == nil {
		fmt.Printf("Result: not revealed\n")
		return
	}
	switch op {
	case compare.OpEqual:
		fmt.Printf("Result: equal=%v\n", result.Equal)
	default:
		fmt.Printf("Result: garbler %s evaluator\n", relation(result.Ordering))
	}
}

func relation(o compare.Ordering) string {
	switch o {
	case compare.Less:
		return "<"
	case compare.Greater:
		return ">"
	default:
		return "=="
	}
}
