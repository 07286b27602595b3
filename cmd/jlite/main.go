// jlite - interpreter for a small Java-like statement language
//
// Runs a program from a file, from -e or from stdin, checks scenario
// files, or starts an interactive shell.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kolkov/jlite"
	"github.com/kolkov/jlite/internal/scenario"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: jlite [-e 'src' | file] [options]\n       jlite check scenario.yaml ...\n       jlite repl"
	longUsage  = `Options:
  -e src            run src instead of a file
  -json             print the result as JSON (entries or one diagnostic)
  -max-iter N       fail a for loop after N iterations (default 100000)

Debugging arguments:
  -d                list each instruction to stderr as it executes
  -v                log the halting diagnostic to stderr
  -trace            log decoding and execution to stderr

Commands:
  check             run scenario files and report mismatches
  repl              start an interactive shell

Other:
  -h, --help        show this help message
  -version          show jlite version and exit
`
)

// options holds the flags shared by all commands.
type options struct {
	source   string
	hasSrc   bool
	json     bool
	listing  bool
	level    zerolog.Level
	maxIter  int
	filename string
}

//nolint:gocyclo // CLI argument parsing is inherently branchy
func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "check":
			os.Exit(runCheck(os.Args[2:]))
		case "repl":
			opts := parseOptions(os.Args[2:])
			if err := runREPL(opts.config(os.Stdout)); err != nil {
				errorExit(err)
			}
			return
		}
	}

	opts := parseOptions(os.Args[1:])
	source := opts.source
	if !opts.hasSrc {
		var data []byte
		var err error
		if opts.filename == "" || opts.filename == "-" {
			data, err = io.ReadAll(os.Stdin)
		} else {
			data, err = os.ReadFile(opts.filename)
		}
		if err != nil {
			errorExitf("cannot read program: %v", err)
		}
		source = string(data)
	}

	stdout := bufio.NewWriter(os.Stdout)
	defer stdout.Flush()

	if opts.json {
		res := jlite.Evaluate(source, opts.config(nil))
		data, err := res.JSON()
		if err != nil {
			errorExit(err)
		}
		stdout.Write(data)
		stdout.WriteByte('\n')
		if !res.OK() {
			stdout.Flush()
			os.Exit(1)
		}
		return
	}

	if _, err := jlite.Run(source, opts.config(stdout)); err != nil {
		stdout.Flush()
		errorExit(locate(opts.filename, err))
	}
}

// parseOptions parses flags manually, in the style of the run flags of
// classic interpreters: flags first, then at most one file.
func parseOptions(args []string) options {
	opts := options{level: zerolog.Disabled}
	var i int
	for i = 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-e":
			if i+1 >= len(args) {
				errorExitf("flag needs an argument: -e")
			}
			i++
			opts.source = args[i]
			opts.hasSrc = true
		case "-json":
			opts.json = true
		case "-d":
			opts.listing = true
		case "-v":
			opts.level = zerolog.DebugLevel
		case "-trace":
			opts.level = zerolog.TraceLevel
		case "-max-iter":
			if i+1 >= len(args) {
				errorExitf("flag needs an argument: -max-iter")
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				errorExitf("invalid iteration limit: %s", args[i])
			}
			opts.maxIter = n
		case "-h", "--help":
			fmt.Printf("jlite %s\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(0)
		case "-version", "--version":
			fmt.Printf("jlite version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			os.Exit(0)
		default:
			errorExitf("flag provided but not defined: %s", arg)
		}
	}

	rest := args[i:]
	switch {
	case len(rest) > 1:
		errorExitf("%s", shortUsage)
	case len(rest) == 1:
		if opts.hasSrc {
			errorExitf("cannot use both -e and a program file")
		}
		opts.filename = rest[0]
	}
	return opts
}

// config builds the run configuration. Logs go to stderr.
func (o options) config(output io.Writer) *jlite.Config {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
		Level(o.level).With().Timestamp().Logger()
	config := &jlite.Config{
		Output:            output,
		Logger:            &logger,
		MaxLoopIterations: o.maxIter,
	}
	if o.listing {
		config.Listing = os.Stderr
	}
	return config
}

// runCheck runs every scenario in the given files and reports mismatches.
// It returns the process exit code.
func runCheck(paths []string) int {
	if len(paths) == 0 {
		errorExitf("usage: jlite check scenario.yaml ...")
	}
	passed, failed := 0, 0
	for _, path := range paths {
		suite, err := scenario.Load(path)
		if err != nil {
			errorExit(err)
		}
		for _, sc := range suite.Scenarios {
			out, err := jlite.Run(sc.Source, nil)
			kind := ""
			if err != nil {
				d, ok := jlite.AsDiagnostic(err)
				if !ok {
					errorExit(err)
				}
				kind = string(d.Kind)
			}
			if err := sc.Check(out, kind); err != nil {
				fmt.Printf("FAIL %s: %v\n", suite.Name, err)
				failed++
				continue
			}
			passed++
		}
	}
	fmt.Printf("%d passed, %d failed\n", passed, failed)
	if failed > 0 {
		return 1
	}
	return 0
}

// locate prefixes a diagnostic with the program file name.
func locate(filename string, err error) error {
	d, ok := jlite.AsDiagnostic(err)
	if !ok || filename == "" || filename == "-" || d.Line == 0 {
		return err
	}
	return fmt.Errorf("%s:%d: %s", filename, d.Line, d.Message)
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "jlite: "+format+"\n", args...)
	os.Exit(1)
}

// errorExit prints error and exits with code 1
func errorExit(err error) {
	fmt.Fprintf(os.Stderr, "jlite: %v\n", err)
	os.Exit(1)
}
