// Command fpqdemo exercises the library end-to-end against the
// concrete scenarios documented for the reachability core: an RPQ
// over a two-cycles graph and a CFPQ over a small grammar. It takes
// no flags and performs no I/O beyond stdout.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/fpq/cfpq"
	"github.com/katalvlaran/fpq/grammar"
	"github.com/katalvlaran/fpq/graphmodel"
	"github.com/katalvlaran/fpq/rpq"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "fpqdemo:", err)
		os.Exit(1)
	}
}

func run() error {
	g, err := graphmodel.TwoCycles(3, 2, [2]string{"X", "Y"})
	if err != nil {
		return err
	}

	pairs, err := rpq.Run(g, "X*|Y", []int{0}, []int{1, 2, 3, 4})
	if err != nil {
		return err
	}
	fmt.Println("RPQ X*|Y from node 0:")
	for _, p := range pairs {
		fmt.Printf("  (%d, %d)\n", p.From, p.To)
	}

	cycleGraph, err := graphmodel.Cycle(4, "b")
	if err != nil {
		return err
	}
	cfg, err := grammar.ParseText("S -> b | epsilon")
	if err != nil {
		return err
	}
	cfpqPairs, err := cfpq.Query(cycleGraph, cfg, nil, nil, "S", cfpq.AlgorithmHellings)
	if err != nil {
		return err
	}
	fmt.Println("CFPQ S -> b | epsilon over a 4-cycle:")
	for _, p := range cfpqPairs {
		fmt.Printf("  (%d, %d)\n", p.From, p.To)
	}

	return nil
}
