package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	dec "github.com/karimElmougi/firesim/pkg/decimal"
)

// Prints the per-period growth factor extracted for an annual factor and a
// period count, plus the recompounded value, for eyeballing root-extraction
// accuracy. Usage: print_growth <annual-factor> <periods-per-year>
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: print_growth <annual-factor> <periods-per-year>")
		os.Exit(1)
	}

	annual, err := decimal.NewFromString(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad annual factor %q: %v\n", os.Args[1], err)
		os.Exit(1)
	}
	periods, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "bad period count %q: %v\n", os.Args[2], err)
		os.Exit(1)
	}

	perPeriod, err := dec.NthRoot(annual, periods)
	if err != nil {
		fmt.Fprintf(os.Stderr, "root extraction failed: %v\n", err)
		os.Exit(1)
	}

	recompounded := perPeriod.Pow(decimal.NewFromInt(int64(periods)))
	fmt.Printf("annual factor:   %s\n", annual)
	fmt.Printf("periods:         %d\n", periods)
	fmt.Printf("per-period:      %s\n", perPeriod)
	fmt.Printf("recompounded:    %s\n", recompounded)
	fmt.Printf("residual:        %s\n", recompounded.Sub(annual))
}
