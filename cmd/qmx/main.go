// Command qmx is a thin CLI front end over package qmx, peripheral to
// the core minimizer per spec.md's scope (language bindings, CLIs,
// and logging are external collaborators, not the algorithm itself).
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/qmx"
)

func main() {
	var (
		onesArg string
		dcArg   string
		bits    int
		useXor  bool
		verbose bool
	)
	flag.StringVar(&onesArg, "ones", "", "comma-separated ON-set minterm indices, e.g. 1,2,5,6")
	flag.StringVar(&dcArg, "dc", "", "comma-separated don't-care minterm indices")
	flag.IntVar(&bits, "bits", 0, "bit width; 0 infers it from the largest minterm")
	flag.BoolVar(&useXor, "xor", false, "also recognize XOR/XNOR structure")
	flag.BoolVar(&verbose, "verbose", false, "log prime-implicant profile counters")
	flag.Parse()

	ones, err := parseInts(onesArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qmx: could not parse -ones: %v\n", err)
		os.Exit(1)
	}
	dc, err := parseInts(dcArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qmx: could not parse -dc: %v\n", err)
		os.Exit(1)
	}

	var numBits *int
	if bits > 0 {
		numBits = &bits
	}

	result, err := qmx.SimplifyWithProfile(ones, dc, numBits, useXor)
	if err != nil {
		fmt.Fprintf(os.Stderr, "qmx: %v\n", err)
		os.Exit(1)
	}

	if verbose {
		logrus.WithFields(logrus.Fields{
			"profile_cmp":  result.Profile.Cmp,
			"profile_xor":  result.Profile.Xor,
			"profile_xnor": result.Profile.Xnor,
			"terms":        len(result.Implicants),
		}).Info("minimization complete")
	}

	for _, implicant := range result.Implicants {
		fmt.Println(implicant)
	}
}

func parseInts(arg string) ([]int, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return nil, nil
	}
	fields := strings.Split(arg, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid minterm %q", f)
		}
		out = append(out, v)
	}
	return out, nil
}
