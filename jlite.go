package jlite

import (
	"io"

	"github.com/kolkov/jlite/internal/lexer"
)

// Version is the jlite version string.
const Version = "0.1.0"

// Run executes a jlite program and returns the printed entries in order.
// This is a convenience function for one-off execution.
//
// Parameters:
//   - source: newline-separated jlite statements
//   - config: execution configuration (can be nil for defaults)
//
// On failure the returned error is a *Diagnostic and no output is
// returned: a diagnostic replaces everything printed before it.
//
// Example:
//
//	out, err := jlite.Run("int x = 4;\nSystem.out.println(x);", nil)
//	// out: []string{"4"}
func Run(source string, config *Config) ([]string, error) {
	return Compile(source).Run(config)
}

// Compile splits source into statement lines. The returned Program can be
// run any number of times; each run starts with no variables bound.
// Statements are decoded as they execute, so errors surface from Run.
//
// Example:
//
//	prog := jlite.Compile("for (int i = 0; i < 3; i++) {\nSystem.out.println(i);\n}")
//	out, _ := prog.Run(nil)
//	// out: []string{"0", "1", "2"}
func Compile(source string) *Program {
	return &Program{
		lines:  lexer.Segment(source, ""),
		source: source,
	}
}

// Exec runs a jlite program and writes each printed entry to output,
// followed by a newline. Nothing is written when the program fails.
//
// Example:
//
//	err := jlite.Exec(src, os.Stdout, nil)
func Exec(source string, output io.Writer, config *Config) error {
	if config == nil {
		config = &Config{}
	}
	config.Output = output

	_, err := Run(source, config)
	return err
}

// Evaluate runs a jlite program and folds the outcome into a Result, the
// form a host UI consumes.
func Evaluate(source string, config *Config) Result {
	out, err := Run(source, config)
	if err != nil {
		if d, ok := AsDiagnostic(err); ok {
			return Result{Diagnostic: d}
		}
		return Result{Diagnostic: &Diagnostic{Kind: KindInternal, Message: err.Error()}}
	}
	return Result{Output: out}
}
