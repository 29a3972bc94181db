package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/compiler"
	"github.com/raymyers/sharpen/pkg/lexer"
	"github.com/raymyers/sharpen/pkg/parser"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".sharpen_history"
	promptMain  = "sharpen> "
	promptCont  = "...      "
)

const replHelp = `REPL commands:
  :ast     Toggle printing the syntax tree before the translation
  :help    Show this help
  :quit    Exit the REPL
`

func newReplCmd(out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Translate input interactively",
		Long: `repl reads source from the terminal and prints the C# translation
of each complete input. An input continues over several lines until
it parses, so blocks can be typed one line at a time.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				fmt.Fprintf(errOut, "sharpen: error: %v\n", err)
				return err
			}
			return runRepl(s, out, errOut)
		},
	}
}

func runRepl(s *settings, out, errOut io.Writer) error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintf(out, "sharpen %s\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", version)

	r := &repl{opts: s.compilerOptions(errOut), out: out, errOut: errOut}
	for {
		src, ok := r.read(ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		if !r.eval(src) {
			return nil
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}
}

// prompter is the part of liner.State the REPL reads through
type prompter interface {
	Prompt(prompt string) (string, error)
}

type repl struct {
	opts    []compiler.Option
	out     io.Writer
	errOut  io.Writer
	showAST bool
}

// read collects lines until they form a complete input. It returns false at
// end of input.
func (r *repl) read(p prompter) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := p.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			b.Reset()
			continue
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !r.incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src fails only because it ends too early
func (r *repl) incomplete(src string) bool {
	_, err := compiler.ParseSource(src, r.opts...)
	var perr *parser.ParseError
	return errors.As(err, &perr) && perr.Token.Type == lexer.TokenEOF
}

// eval handles one complete input. It returns false when the REPL should exit.
func (r *repl) eval(src string) bool {
	code := strings.TrimSpace(src)
	if code == "" {
		return true
	}

	if strings.HasPrefix(code, ":") {
		switch strings.ToLower(code) {
		case ":quit":
			return false
		case ":help":
			fmt.Fprint(r.out, replHelp)
		case ":ast":
			r.showAST = !r.showAST
			fmt.Fprintf(r.out, "syntax tree output %s\n", onOff(r.showAST))
		default:
			fmt.Fprintf(r.errOut, "unknown command %s. Type :help for commands.\n", code)
		}
		return true
	}

	if r.showAST {
		if prog, err := compiler.ParseSource(src, r.opts...); err == nil {
			ast.NewPrinter(r.out).PrintProgram(prog)
		}
	}
	out, err := compiler.Compile(src, r.opts...)
	if err != nil {
		fmt.Fprintf(r.errOut, "error: %v\n", err)
		return true
	}
	fmt.Fprint(r.out, out)
	return true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
