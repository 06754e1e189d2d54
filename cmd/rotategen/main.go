// Command rotategen generates Next/Prev navigation methods and variant
// iterators for Go enums.
//
// Usage:
//
//	rotategen [-type T[,U...] -policy rotate|shift|iter] [packages]
//
// Without -type, enums are discovered from rotategen directives in type doc
// comments:
//
//	//rotategen:rotate
//	type Direction int
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	rotategeninternal "github.com/msakuta/rotate-enum/internal/rotategen"
	"github.com/msakuta/rotate-enum/internal/rotategen/table"
)

var Version = "dev"

var (
	typeFlag   = flag.String("type", "", "comma-separated enum type names; empty means directive discovery")
	policyFlag = flag.String("policy", "", "policy for -type: rotate, shift, or iter")
	bFlag      = flag.String("b", "", "comma-separated build tags")
	tFlag      = flag.Bool("t", false, "include tests")
	oFlag      = flag.String("o", "rotate_gen.go", "output file name")
	cFlag      = flag.String("c", "auto", "colorize (auto|always|never)")
)

func init() {
	rotategeninternal.Version = Version
}

func main() {
	flag.Parse()

	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	color := false
	switch *cFlag {
	case "auto":
		color = isatty()
	case "always":
		color = true
	case "never":
		color = false
	default:
		fmt.Fprintln(os.Stderr, "invalid -c value:", *cFlag)
		os.Exit(1)
	}

	opts, err := parseOpts(*typeFlag, *policyFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	outs, err := rotategeninternal.Main(context.Background(), wd, os.Environ(), *bFlag, *tFlag, *oFlag, opts, flag.Args())
	if err != nil {
		message := err.Error()
		if color {
			message = colorize(message)
		}
		fmt.Fprintln(os.Stderr, message)
		os.Exit(1)
	}

	for out, code := range outs {
		if err := os.WriteFile(out, code, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if relOut, err := filepath.Rel(wd, out); err == nil {
			out = relOut
		}
		fmt.Println("Generated:", out)
	}
}

// parseOpts validates the -type/-policy pairing and builds the generator
// options.
func parseOpts(typeList, policyName string) (rotategeninternal.Options, error) {
	var opts rotategeninternal.Options

	if typeList == "" {
		if policyName != "" {
			return opts, fmt.Errorf("-policy requires -type")
		}
		return opts, nil
	}

	if policyName == "" {
		return opts, fmt.Errorf("-type requires -policy")
	}

	policy, err := table.ParsePolicy(policyName)
	if err != nil {
		return opts, err
	}

	opts.Types = strings.Split(typeList, ",")
	opts.Policy = policy
	return opts, nil
}

// isatty reports whether the program is running in a terminal. If it is true,
// we can use ANSI color codes.
func isatty() bool {
	_, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	return err == nil
}

// colorize adds ANSI color codes to the message.
func colorize(message string) string {
	const (
		red   = "\033[31m"
		reset = "\033[0m"
	)
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		lines[i] = red + line + reset
	}
	return strings.Join(lines, "\n")
}
