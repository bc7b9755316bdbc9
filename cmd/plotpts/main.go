// plotpts samples an expression of x over a range and writes x<TAB>y pairs
// to stdout. Undefined samples become blank lines (gnuplot's gap
// convention) unless -skip-gaps is set.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"sigma/eval"
)

func main() {
	var (
		expr     = flag.String("expr", "", "Expression of x to sample.")
		xmin     = flag.Float64("xmin", -10, "Range start.")
		xmax     = flag.Float64("xmax", 10, "Range end.")
		count    = flag.Int("n", 200, "Sample count.")
		radians  = flag.Bool("rad", false, "Radians mode (default degrees).")
		ans      = flag.Float64("ans", 0, "Value substituted for ANS.")
		skipGaps = flag.Bool("skip-gaps", false, "Drop undefined samples instead of emitting blank lines.")
	)
	flag.Parse()

	if *expr == "" {
		fatalf("usage: plotpts -expr 'sin(x)' [-xmin -10] [-xmax 10] [-n 200] [-rad] [-ans 0] [-skip-gaps]")
	}

	mode := eval.Degrees
	if *radians {
		mode = eval.Radians
	}

	sr, err := eval.NewSeries(*expr, mode, *ans, *xmin, *xmax, *count)
	if err != nil {
		fatalf("plotpts: %v", err)
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	gap := false
	for {
		p, ok := sr.Next()
		if !ok {
			break
		}
		if !p.Defined {
			if !*skipGaps && !gap {
				fmt.Fprintln(out)
				gap = true
			}
			continue
		}
		gap = false
		fmt.Fprintf(out, "%g\t%g\n", p.X, p.Y)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
