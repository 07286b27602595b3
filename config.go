package jlite

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/kolkov/jlite/internal/vm"
)

// Config holds configuration options for jlite execution.
type Config struct {
	// Output receives each printed entry followed by a newline once a run
	// succeeds. If nil, entries are only returned from Run.
	Output io.Writer

	// Logger receives trace events (decoded and executed instructions,
	// loop iterations, register writes) and a debug event for the
	// diagnostic that halts a run. If nil, logging is disabled.
	Logger *zerolog.Logger

	// Listing, if set, receives each instruction as it executes, with the
	// source lines of its block body. Useful for debugging.
	Listing io.Writer

	// MaxLoopIterations bounds the iterations of each for loop
	// (default: 100000). A loop that exceeds it fails with KindLoopLimit.
	// Negative values disable the bound.
	MaxLoopIterations int
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
	if c.MaxLoopIterations == 0 {
		c.MaxLoopIterations = vm.DefaultMaxLoopIterations
	}
}

// vmConfig converts c to the VM configuration.
func (c *Config) vmConfig() vm.Config {
	return vm.Config{
		MaxLoopIterations: c.MaxLoopIterations,
		Logger:            *c.Logger,
		Listing:           c.Listing,
	}
}
