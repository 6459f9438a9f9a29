package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/leinonen/golisp-core/pkg/repl"
)

func main() {
	var (
		help     = flag.Bool("help", false, "Show help message")
		eval     = flag.String("e", "", "Evaluate code directly instead of starting the REPL")
		filename = flag.String("f", "", "File to execute")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                   # Start interactive REPL\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -f script.golisp  # Execute a file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -e '(+ 1 2 3)'    # Evaluate code directly\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	r := repl.New()

	if *eval != "" {
		result, err := r.EvalString(*eval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(result.String())
		return
	}

	if *filename != "" {
		if err := r.LoadFile(*filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing %s: %v\n", *filename, err)
			os.Exit(1)
		}
		return
	}

	if len(flag.Args()) > 0 {
		path := flag.Args()[0]
		if err := r.LoadFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error executing %s: %v\n", path, err)
			os.Exit(1)
		}
		return
	}

	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "REPL error: %v\n", err)
		os.Exit(1)
	}
}
