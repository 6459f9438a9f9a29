// Package repl implements the interactive shell of spec §6.3/SPEC_FULL §8.3:
// a readline-backed loop that buffers input until parentheses balance,
// evaluates each complete form, and reports results or colorized errors.
package repl

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/leinonen/golisp-core/pkg/builtins"
	"github.com/leinonen/golisp-core/pkg/environment"
	"github.com/leinonen/golisp-core/pkg/evaluator"
	"github.com/leinonen/golisp-core/pkg/parser"
	"github.com/leinonen/golisp-core/pkg/reifier"
	"github.com/leinonen/golisp-core/pkg/values"
)

// REPL owns the top-level environment that every evaluated form shares.
type REPL struct {
	env       *environment.Environment
	formatter *errorFormatter
}

// New creates a REPL with a fresh environment seeded from the builtin
// primitive table.
func New() *REPL {
	return &REPL{
		env:       environment.WithPrimitives(builtins.Primitives()),
		formatter: newErrorFormatter(),
	}
}

// EvalString parses and evaluates every top-level form in input, returning
// the value of the last one (or values.Nil{} if input holds no forms).
func (r *REPL) EvalString(input string) (values.Value, error) {
	exprs, err := parser.ParseFile(input, "<input>")
	if err != nil {
		return nil, &parseFailure{err}
	}
	forms := reifier.ReifyAll(exprs)
	return evaluator.EvalSeq(forms, r.env)
}

// LoadFile reads path, and evaluates its forms in the REPL's environment.
func (r *REPL) LoadFile(path string) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	_, err = r.EvalString(string(contents))
	return err
}

// parseFailure adapts a parser error to the lisperr-categorized formatter;
// it is not a lisperr type, so errorFormatter.classify matches it
// explicitly, alongside *lisperr.ParseError, to report it as a parse error.
type parseFailure struct{ err error }

func (p *parseFailure) Error() string { return p.err.Error() }

// Run starts the interactive readline loop: balances parentheses across
// lines, evaluates each complete form, and prints its value (nothing when
// the value is Nil) or a colorized, categorized error.
func (r *REPL) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "golisp> ",
		HistoryFile:     "/tmp/golisp_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("repl: could not start readline: %w", err)
	}
	defer rl.Close()

	printBanner()

	for {
		input, err := readCompleteForm(rl)
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				break
			}
			fmt.Fprintf(os.Stderr, "input error: %v\n", err)
			continue
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" || trimmed == "exit" || trimmed == ":q" {
			break
		}

		result, err := r.EvalString(trimmed)
		if err != nil {
			fmt.Println(r.formatter.Format(err))
			continue
		}
		if _, isNil := result.(values.Nil); isNil {
			continue
		}
		okColor := color.New(color.FgGreen)
		fmt.Printf("=> %s\n", okColor.Sprint(result.String()))
	}

	color.New(color.FgMagenta, color.Bold).Println("Goodbye!")
	return nil
}

func printBanner() {
	color.New(color.FgCyan, color.Bold).Println("golisp")
	color.New(color.FgYellow).Println("Evaluate expressions, or type 'quit' to exit.")
	color.New(color.FgYellow).Println("Unbalanced parentheses continue onto the next line.")
	fmt.Println()
}

// readCompleteForm reads lines from rl until parens balance outside of any
// string literal, then returns the accumulated input.
func readCompleteForm(rl *readline.Instance) (string, error) {
	var lines []string
	depth := 0
	var stringDelim rune
	first := true

	for {
		if first {
			rl.SetPrompt(color.New(color.FgBlue, color.Bold).Sprint("golisp> "))
			first = false
		} else {
			rl.SetPrompt(color.New(color.FgHiBlack).Sprint("...     "))
		}

		line, err := rl.Readline()
		if err != nil {
			return strings.Join(lines, "\n"), err
		}
		lines = append(lines, line)

		trimmed := strings.TrimSpace(line)
		if len(lines) == 1 && (trimmed == "quit" || trimmed == "exit") {
			return trimmed, nil
		}

		for i, ch := range line {
			switch {
			case ch == '"' || ch == '\'':
				if stringDelim == 0 {
					if ch == '\'' && !strings.ContainsRune(line[i+1:], '\'') {
						break // a quote prefix, not the start of a string literal
					}
					stringDelim = ch
				} else if stringDelim == ch {
					stringDelim = 0
				}
			case ch == '(' && stringDelim == 0:
				depth++
			case ch == ')' && stringDelim == 0:
				depth--
			}
		}

		if depth <= 0 && hasNonBlankContent(lines) {
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}

func hasNonBlankContent(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return true
		}
	}
	return false
}
