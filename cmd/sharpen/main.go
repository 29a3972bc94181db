package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/raymyers/sharpen/pkg/ast"
	"github.com/raymyers/sharpen/pkg/compiler"
	"github.com/raymyers/sharpen/pkg/config"
	"github.com/raymyers/sharpen/pkg/lexer"
	"github.com/raymyers/sharpen/pkg/parser"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

// ErrNoInput indicates a debug flag was given without a source file
var ErrNoInput = errors.New("no input file")

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(normalizeFlags(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// debugFlagNames lists the debug flags that also accept a single dash (-dparse)
var debugFlagNames = []string{"dtokens", "dparse"}

// normalizeFlags converts single-dash debug flags like -dparse to --dparse
func normalizeFlags(args []string) []string {
	result := make([]string, len(args))
	for i, arg := range args {
		result[i] = arg
		for _, flagName := range debugFlagNames {
			if arg == "-"+flagName {
				result[i] = "--" + flagName
				break
			}
		}
	}
	return result
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sharpen [file]",
		Short: "sharpen translates small-language source files to C#",
		Long: `sharpen is a source-to-source compiler. It lexes, parses and
translates one source file into a C# file of the same base name.
The -dtokens and -dparse flags dump the intermediate stages instead.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd.Flags())
			if err != nil {
				fmt.Fprintf(errOut, "sharpen: error: %v\n", err)
				return err
			}

			if len(args) == 0 {
				if s.dTokens || s.dParse {
					fmt.Fprintf(errOut, "sharpen: error: %v\n", ErrNoInput)
					return ErrNoInput
				}
				cmd.Help()
				return nil
			}
			filename := args[0]

			content, err := os.ReadFile(filename)
			if err != nil {
				fmt.Fprintf(errOut, "sharpen: error reading %s: %v\n", filename, err)
				return err
			}
			opts := s.compilerOptions(errOut)

			if s.dTokens {
				return doTokens(filename, string(content), opts, out, errOut)
			}
			if s.dParse {
				return doParse(filename, string(content), opts, out, errOut)
			}
			return doCompile(filename, string(content), s, opts, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	addDebugFlags(rootCmd.Flags())
	addOutputFlags(rootCmd.Flags())
	addLexerFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newReplCmd(out, errOut))
	return rootCmd
}

// doTokens prints the token stream, one token per line
func doTokens(filename, content string, opts []compiler.Option, out, errOut io.Writer) error {
	toks, err := compiler.Tokens(content, opts...)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", filename, err)
		return err
	}
	for _, tok := range toks {
		fmt.Fprintf(out, "%d\t%s\t%q\n", tok.Line, tok.Type, tok.Literal)
	}
	return nil
}

// doParse parses the file and prints the syntax tree
func doParse(filename, content string, opts []compiler.Option, out, errOut io.Writer) error {
	prog, err := compiler.ParseSource(content, opts...)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", filename, err)
		return err
	}
	ast.NewPrinter(out).PrintProgram(prog)
	return nil
}

// doCompile translates the file and writes <out dir>/<base name><extension>.
// With --out - the translation goes to standard output instead.
func doCompile(filename, content string, s *settings, opts []compiler.Option, out, errOut io.Writer) error {
	code, err := compiler.Compile(content, opts...)
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", filename, err)
		return err
	}

	if s.outDir == "-" {
		fmt.Fprint(out, code)
		return nil
	}

	outputFilename := outputPath(filename, s.outDir, s.extension)
	if err := os.MkdirAll(filepath.Dir(outputFilename), 0755); err != nil {
		fmt.Fprintf(errOut, "sharpen: error creating %s: %v\n", filepath.Dir(outputFilename), err)
		return err
	}
	if err := os.WriteFile(outputFilename, []byte(code), 0644); err != nil {
		fmt.Fprintf(errOut, "sharpen: error writing %s: %v\n", outputFilename, err)
		return err
	}
	fmt.Fprintf(errOut, "sharpen: wrote %s\n", outputFilename)
	return nil
}

// outputPath returns the output filename: dir/game.lang -> outDir/game.cs
func outputPath(filename, outDir, ext string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outDir, base+ext)
}

// settings are the config file values with command line overrides applied
type settings struct {
	dTokens   bool
	dParse    bool
	trace     bool
	outDir    string
	extension string
	suppress  []lexer.TokenType
}

func (s *settings) compilerOptions(traceOut io.Writer) []compiler.Option {
	opts := []compiler.Option{compiler.WithSuppressed(s.suppress...)}
	if s.trace {
		opts = append(opts, compiler.WithTracer(parser.NewWriterTracer(traceOut)))
	}
	return opts
}

// loadSettingsFrom merges cfg with the keep list. Kinds named in keep are
// removed from the suppression set.
func loadSettingsFrom(cfg *config.Config, keep []string) (*settings, error) {
	suppress, err := cfg.SuppressedKinds()
	if err != nil {
		return nil, err
	}
	kept := make(map[lexer.TokenType]bool)
	for _, name := range keep {
		t, ok := lexer.LookupTokenType(name)
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q in --keep", name)
		}
		kept[t] = true
	}
	s := &settings{
		trace:     cfg.Trace,
		outDir:    cfg.OutDir,
		extension: cfg.Extension,
	}
	for _, t := range suppress {
		if !kept[t] {
			s.suppress = append(s.suppress, t)
		}
	}
	return s, nil
}
