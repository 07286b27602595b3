package jlite

import (
	"fmt"

	"github.com/kolkov/jlite/internal/lexer"
	"github.com/kolkov/jlite/internal/types"
	"github.com/kolkov/jlite/internal/vm"
)

// Program is a segmented jlite program ready for execution.
// It is safe for concurrent use; each call to Run creates an
// independent register store.
type Program struct {
	lines  []lexer.Line
	source string // Original source for debugging
}

// Run executes the program. It returns the printed entries, or a
// *Diagnostic and no entries if the program fails.
//
// If config is nil, default configuration is used.
// If config.Output is set, entries are also written there.
func (p *Program) Run(config *Config) ([]string, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	out, err := runLines(p.lines, types.NewStore(), config)
	if err != nil {
		return nil, err
	}
	if err := writeOutput(config, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Source returns the original program source.
func (p *Program) Source() string {
	return p.source
}

// Lines returns the number of non-blank statement lines.
func (p *Program) Lines() int {
	return len(p.lines)
}

// runLines executes lines against store, applying the halting rule: a
// failure discards all output.
func runLines(lines []lexer.Line, store *types.Store, config *Config) ([]string, error) {
	v := vm.New(lines, store, config.vmConfig())
	if err := v.Run(); err != nil {
		config.Logger.Debug().Err(err).Msg("run halted")
		return nil, toDiagnostic(err)
	}
	return v.Output(), nil
}

func writeOutput(config *Config, out []string) error {
	if config.Output == nil {
		return nil
	}
	for _, entry := range out {
		if _, err := fmt.Fprintln(config.Output, entry); err != nil {
			return err
		}
	}
	return nil
}
