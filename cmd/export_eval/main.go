package main

import (
	"flag"
	"fmt"
	"os"

	"gridchess/engine"
)

// Writes the evaluator parameters as JSON. The output can be edited and fed
// back with bestmove -eval.
func main() {
	in := flag.String("in", "", "Optional params file to normalise instead of the defaults")
	out := flag.String("out", "", "Output file (default stdout)")
	flag.Parse()

	cfg := engine.DefaultConfig()
	if *in != "" {
		f, err := os.Open(*in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open %s: %v\n", *in, err)
			os.Exit(1)
		}
		p, err := engine.ReadEvalParams(f)
		_ = f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg.SetEvalParams(p)
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create %s: %v\n", *out, err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}
	if err := engine.WriteEvalParams(w, cfg.EvalParams()); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
}
