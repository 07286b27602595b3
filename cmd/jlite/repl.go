package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/kolkov/jlite"
)

func runREPL(config *jlite.Config) error {
	home, _ := os.UserHomeDir()
	histPath := ""
	if home != "" {
		histPath = filepath.Join(home, ".jlite_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "jlite> ",
		HistoryFile:       histPath,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println("jlite shell. :vars lists variables, :reset clears them, :quit exits.")
	fmt.Println("Blocks run once their braces balance; an if runs when the next line is not an else.")

	session := jlite.NewSession(config)
	var buf input

	for {
		rl.SetPrompt(buf.prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if !buf.empty() {
				buf.reset()
				fmt.Println("^C (buffer cleared)")
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			if src, ok := buf.flush(); ok {
				runFragment(session, src)
			}
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		trim := strings.TrimSpace(line)
		if buf.empty() && strings.HasPrefix(trim, ":") {
			if quit := handleCommand(trim, session); quit {
				return nil
			}
			continue
		}

		for _, src := range buf.add(trim) {
			runFragment(session, src)
		}
	}
}

func runFragment(session *jlite.Session, src string) {
	if _, err := session.Run(src); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

func handleCommand(cmd string, session *jlite.Session) bool {
	switch cmd {
	case ":quit", ":q", ":exit":
		return true
	case ":vars":
		vars := session.Variables()
		if len(vars) == 0 {
			fmt.Println("(no variables)")
		}
		for _, v := range vars {
			value := "<unassigned>"
			if v.Set {
				value = v.Value
			}
			fmt.Printf("  %s %s = %s\n", v.Type, v.Name, value)
		}
	case ":reset":
		session.Reset()
		fmt.Println("(variables cleared)")
	case ":help":
		fmt.Println(":vars  :reset  :quit")
	default:
		fmt.Fprintf(os.Stderr, "unknown command %s (try :help)\n", cmd)
	}
	return false
}

// input accumulates lines until they form complete statements.
type input struct {
	lines     []string
	depth     int
	awaitElse bool // A closed if block may still be followed by else
}

func (b *input) empty() bool {
	return len(b.lines) == 0
}

func (b *input) reset() {
	*b = input{}
}

func (b *input) prompt() string {
	if b.empty() {
		return "jlite> "
	}
	return "  ...> "
}

// flush returns the buffered source and clears the buffer.
func (b *input) flush() (string, bool) {
	if b.empty() {
		return "", false
	}
	src := strings.Join(b.lines, "\n")
	b.reset()
	return src, true
}

// add appends a line and returns the fragments that are ready to run.
func (b *input) add(line string) []string {
	var ready []string
	if b.awaitElse && !strings.HasPrefix(line, "else") {
		src, _ := b.flush()
		ready = append(ready, src)
	}
	b.awaitElse = false
	if line == "" {
		return ready
	}

	b.lines = append(b.lines, line)
	switch {
	case strings.HasSuffix(line, "{"):
		b.depth++
	case line == "}":
		b.depth--
	}
	if b.depth > 0 {
		return ready
	}
	if line == "}" && b.isIfChain() {
		b.awaitElse = true
		return ready
	}
	src, _ := b.flush()
	return append(ready, src)
}

func (b *input) isIfChain() bool {
	return strings.HasPrefix(b.lines[0], "if")
}
