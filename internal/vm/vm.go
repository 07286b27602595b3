// Package vm executes decoded jlite instructions.
//
// A VM owns one register store and one output buffer. It pulls
// instructions from a parser and executes each before decoding the next,
// so a failure stops decoding too. Block bodies run on child VMs over a
// clone of the store; when a child finishes, the names its parent already
// had are refreshed from the clone and the child's output is appended.
package vm

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/kolkov/jlite/internal/ast"
	"github.com/kolkov/jlite/internal/diag"
	"github.com/kolkov/jlite/internal/eval"
	"github.com/kolkov/jlite/internal/lexer"
	"github.com/kolkov/jlite/internal/parser"
	"github.com/kolkov/jlite/internal/types"
)

// DefaultMaxLoopIterations bounds each for loop unless configured otherwise.
const DefaultMaxLoopIterations = 100000

// Config holds VM configuration options.
type Config struct {
	// MaxLoopIterations bounds the iterations of each for loop.
	// Zero or less disables the bound.
	MaxLoopIterations int

	// Logger receives trace events for decoded and executed instructions,
	// loop iterations and register writes.
	Logger zerolog.Logger

	// Listing, if set, receives every executed instruction with its block
	// body, indented by nesting depth.
	Listing io.Writer
}

// DefaultConfig returns the default configuration with logging disabled.
func DefaultConfig() Config {
	return Config{MaxLoopIterations: DefaultMaxLoopIterations, Logger: zerolog.Nop()}
}

// VM is the jlite interpreter for one scope.
type VM struct {
	lines  []lexer.Line
	store  *types.Store
	eval   *eval.Evaluator
	output []string
	config Config
	log    zerolog.Logger
	depth  int // Block nesting depth, 0 for the program
}

// New creates a VM that runs lines against store.
func New(lines []lexer.Line, store *types.Store, config Config) *VM {
	return newVM(lines, store, config, 0)
}

func newVM(lines []lexer.Line, store *types.Store, config Config, depth int) *VM {
	log := config.Logger.With().Int("depth", depth).Logger()
	return &VM{
		lines:  lines,
		store:  store,
		eval:   eval.New(store, log),
		config: config,
		log:    log,
		depth:  depth,
	}
}

// child creates a VM for a block body over store.
func (vm *VM) child(lines []lexer.Line, store *types.Store) *VM {
	return newVM(lines, store, vm.config, vm.depth+1)
}

// Store returns the VM's register store.
func (vm *VM) Store() *types.Store {
	return vm.store
}

// Output returns the entries printed so far.
func (vm *VM) Output() []string {
	return vm.output
}

// Run decodes and executes every line. It stops at the first failure and
// returns it; the output gathered up to then is meaningless to callers.
func (vm *VM) Run() error {
	p := parser.New(vm.lines, vm.store, vm.log)
	for {
		in, err := p.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := vm.Execute(in); err != nil {
			if d, ok := diag.As(err); ok {
				return d.At(in.Pos())
			}
			return err
		}
	}
}

// Execute runs a single instruction.
func (vm *VM) Execute(in ast.Instruction) error {
	vm.log.Trace().Stringer("pos", in.Pos()).Str("instr", in.String()).Msg("execute")
	if vm.config.Listing != nil {
		p := ast.NewPrinter(vm.config.Listing)
		p.SetIndent(vm.depth)
		if err := p.Print(in); err != nil {
			return err
		}
	}
	switch n := in.(type) {
	case *ast.LoadWord:
		return vm.loadWord(n)
	case *ast.MathOp:
		return vm.mathOp(n)
	case *ast.For:
		return vm.forLoop(n)
	case *ast.If:
		return vm.ifChain(n)
	case *ast.Print:
		return vm.print(n)
	default:
		return fmt.Errorf("vm: cannot execute %T on its own", in)
	}
}

// -----------------------------------------------------------------------------
// Registers
// -----------------------------------------------------------------------------

func (vm *VM) bind(name string, r types.Register) {
	vm.store.Bind(name, r)
	if e := vm.log.Trace(); e.Enabled() {
		v, _ := r.Value()
		e.Str("name", name).Stringer("type", r.Type).Str("value", v).Msg("register write")
	}
}

// resolve turns an operand into a value: a literal in normalized form, a
// name by substitution, anything else through the expression evaluator.
func (vm *VM) resolve(words []string) (string, error) {
	if len(words) == 1 {
		w := words[0]
		if types.IsLiteral(w) {
			return types.Normalize(w), nil
		}
		if types.IsIdentifier(w) {
			return vm.eval.Substitute(w)
		}
	}
	return vm.eval.Evaluate(words)
}

func (vm *VM) loadWord(n *ast.LoadWord) error {
	var typ types.Type
	if n.Type != nil {
		typ = *n.Type
	} else {
		r, ok := vm.store.Lookup(n.Target)
		if !ok {
			return diag.Uninitialized(n.Target)
		}
		if _, set := r.Value(); set && r.Type.Const {
			return diag.Constant(n.Target)
		}
		typ = r.Type
	}

	if n.Value == nil {
		vm.bind(n.Target, types.Declared(typ))
		return nil
	}
	// A literal is checked as written: 1e3 is a double even though it
	// normalizes to an int form.
	if len(n.Value) == 1 && types.IsLiteral(n.Value[0]) && !typ.Accepts(n.Value[0]) {
		return diag.InvalidAssignment(typ.Base.String(), n.Target, n.Value[0])
	}
	value, err := vm.resolve(n.Value)
	if err != nil {
		return err
	}
	if !typ.Accepts(value) {
		return diag.InvalidAssignment(typ.Base.String(), n.Target, value)
	}
	vm.bind(n.Target, types.Assigned(typ, value))
	return nil
}

var mathOps = [...]string{ast.Add: "+", ast.Sub: "-", ast.Mult: "*", ast.Div: "/"}

func (vm *VM) mathOp(n *ast.MathOp) error {
	r, ok := vm.store.Lookup(n.Dest)
	if !ok {
		return diag.Uninitialized(n.Dest)
	}
	if r.Type.Const {
		return diag.Constant(n.Dest)
	}
	lhs, err := vm.eval.Substitute(n.Lhs)
	if err != nil {
		return err
	}
	rhs, err := vm.resolve(n.Rhs)
	if err != nil {
		return err
	}
	if !types.IsNumeric(lhs) {
		return diag.Operation(lhs)
	}
	if !types.IsNumeric(rhs) {
		return diag.Operation(rhs)
	}

	rhsInt := types.IsInt(rhs)
	if len(n.Rhs) == 1 {
		rhsInt = vm.eval.IntOperand(n.Rhs[0], rhs)
	}
	isInt := r.Type.Base == types.Int && rhsInt
	v, err := eval.Apply(mathOps[n.Kind], lhs, rhs, isInt)
	if err != nil {
		return err
	}
	if !r.Type.Accepts(v) {
		return diag.InvalidAssignment(r.Type.Base.String(), n.Dest, v)
	}
	vm.bind(n.Dest, r.With(v))
	return nil
}

// -----------------------------------------------------------------------------
// Blocks
// -----------------------------------------------------------------------------

// block runs body on a clone of the store, then merges the clone back and
// appends the body's output.
func (vm *VM) block(body ast.Block) error {
	c := vm.child(body.Lines, vm.store.Clone())
	if err := c.Run(); err != nil {
		return err
	}
	c.store.MergeInto(vm.store)
	vm.output = append(vm.output, c.output...)
	return nil
}

// forLoop runs a counted loop. The initializer binds into a loop store
// cloned from this VM's store; each iteration runs the body on a fresh
// clone of the loop store, applies the step, then evaluates the test, so
// the body always runs at least once. Names this VM already had are
// refreshed from the loop store when the loop ends.
func (vm *VM) forLoop(n *ast.For) error {
	loop := vm.child(nil, vm.store.Clone())

	init, err := parser.ParseStatement(n.Init, n.Pos(), loop.store)
	if err != nil {
		return err
	}
	if err := loop.Execute(init); err != nil {
		return err
	}
	var step ast.Instruction
	if n.Step != "" {
		if step, err = parser.ParseStatement(n.Step, n.Pos(), loop.store); err != nil {
			return err
		}
	}
	test := lexer.Fields(n.Test)

	for i := 0; ; i++ {
		if limit := vm.config.MaxLoopIterations; limit > 0 && i >= limit {
			return diag.Loop(limit)
		}
		vm.log.Trace().Int("iteration", i).Msg("loop")
		if err := loop.block(n.Body); err != nil {
			return err
		}
		if step != nil {
			if err := loop.Execute(step); err != nil {
				return err
			}
		}
		if len(test) == 0 {
			continue
		}
		ok, err := loop.eval.Condition(test)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
	}
	loop.store.MergeInto(vm.store)
	vm.output = append(vm.output, loop.output...)
	return nil
}

// ifChain runs the first branch whose condition holds: the if body, a
// chained else-if body, or the else body.
func (vm *VM) ifChain(n *ast.If) error {
	ok, err := vm.eval.Condition(lexer.Fields(n.Cond))
	if err != nil {
		return err
	}
	if ok {
		return vm.block(n.Body)
	}
	for _, b := range n.Chain {
		switch b := b.(type) {
		case *ast.ElseIf:
			ok, err := vm.eval.Condition(lexer.Fields(b.Cond))
			if err != nil {
				if d, isDiag := diag.As(err); isDiag {
					return d.At(b.Pos())
				}
				return err
			}
			if ok {
				return vm.block(b.Body)
			}
		case *ast.Else:
			return vm.block(b.Body)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Output
// -----------------------------------------------------------------------------

func (vm *VM) print(n *ast.Print) error {
	if n.Operand == "" {
		vm.output = append(vm.output, "")
		return nil
	}
	v, err := vm.resolve(lexer.Fields(n.Operand))
	if err != nil {
		return err
	}
	vm.output = append(vm.output, types.Unquote(v))
	return nil
}
