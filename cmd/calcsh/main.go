// calcsh is a line-oriented shell over the calculator engine, handy for
// scripting and for poking at the grammar without a window.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"sigma/eval"
	"sigma/history"
)

func main() {
	var (
		radians = flag.Bool("rad", false, "Start in radians mode.")
		histCap = flag.Int("history", 128, "History capacity.")
		quiet   = flag.Bool("q", false, "No prompt (for piped input).")
	)
	flag.Parse()

	sess := eval.NewSession()
	if *radians {
		sess.SetMode(eval.Radians)
	}
	hist := history.New(*histCap)

	in := bufio.NewScanner(os.Stdin)
	for {
		if !*quiet {
			fmt.Printf("%s> ", strings.ToLower(sess.Mode().String()))
		}
		if !in.Scan() {
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if !command(line, sess, hist) {
				return
			}
			continue
		}

		v, err := sess.Evaluate(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		res := strconv.FormatFloat(v, 'g', 12, 64)
		hist.Append(history.Entry{Expr: line, Result: res})
		fmt.Println(res)
	}
	if err := in.Err(); err != nil {
		fatalf("stdin: %v", err)
	}
}

// command handles a ":" directive; it returns false on :quit.
func command(line string, sess *eval.Session, hist *history.Log) bool {
	switch fields := strings.Fields(line); fields[0] {
	case ":deg":
		sess.SetMode(eval.Degrees)
	case ":rad":
		sess.SetMode(eval.Radians)
	case ":mode":
		fmt.Println(sess.Mode())
	case ":ans":
		fmt.Println(strconv.FormatFloat(sess.LastAnswer(), 'g', 12, 64))
	case ":history":
		for _, e := range hist.LastN(hist.Len()) {
			fmt.Printf("%s = %s\n", e.Expr, e.Result)
		}
	case ":quit", ":q":
		return false
	default:
		fmt.Fprintf(os.Stderr, "unknown command %s (try :deg :rad :mode :ans :history :quit)\n", fields[0])
	}
	return true
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}
