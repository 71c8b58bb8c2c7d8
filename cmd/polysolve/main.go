// Command polysolve finds the real rational roots of polynomial equations.
//
// Usage:
//
//	polysolve [-normalize] [equation ...]
//
// Every argument is solved in turn. Without arguments, every non-empty
// line of the standard input is solved instead:
//
//	$ polysolve "x^2 + 5x + 6 = 0"
//	x^2 + 5x + 6 = 0
//	=> x = {-3, -2}
//
// Failures are logged and do not stop the remaining equations, but make
// the exit status 1.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/govalues/polyroot"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("polysolve: ")

	normalize := flag.Bool("normalize", false, "scale coefficients to integers before solving")
	flag.Parse()

	os.Exit(run(flag.Args(), os.Stdin, os.Stdout, log.Default(), *normalize))
}

// run solves every equation from args, or from in if args is empty,
// and returns the exit status.
func run(args []string, in io.Reader, out io.Writer, logger *log.Logger, normalize bool) int {
	status := 0
	solveOne := func(input string) {
		if err := solve(out, input, normalize); err != nil {
			logger.Printf("%v", err)
			status = 1
		}
	}

	if len(args) > 0 {
		for _, input := range args {
			solveOne(input)
		}
		return status
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		solveOne(input)
	}
	if err := scanner.Err(); err != nil {
		logger.Printf("reading input: %v", err)
		return 1
	}
	return status
}

// solve prints the input equation followed by its roots.
func solve(out io.Writer, input string, normalize bool) error {
	p, err := polyroot.ParsePolynomial(input)
	if err != nil {
		return err
	}
	if normalize {
		p = p.Integral()
	}
	roots, err := polyroot.Solve(p)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, input)
	fmt.Fprintf(out, "=> x = {%v}\n\n", format(roots))
	return nil
}

func format(roots []polyroot.Rat) string {
	parts := make([]string, len(roots))
	for i, r := range roots {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}
