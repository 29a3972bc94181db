package main

import (
	"github.com/raymyers/sharpen/pkg/config"
	"github.com/spf13/pflag"
)

// Debug flags for dumping intermediate stages
var (
	dTokens bool
	dParse  bool
)

// Output flags
var (
	outDir    string
	extension string
)

// Flags shared with subcommands
var (
	configPath string
	traceParse bool
	keepKinds  []string
)

func addDebugFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&dTokens, "dtokens", "", false, "Dump the token stream")
	fs.BoolVarP(&dParse, "dparse", "", false, "Dump after parsing")
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&outDir, "out", "o", "", `Output directory ("-" for stdout)`)
	fs.StringVar(&extension, "ext", "", "Output file extension")
}

func addLexerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configPath, "config", "", "Config file (default "+config.DefaultFile+" if present)")
	fs.BoolVar(&traceParse, "trace", false, "Trace parser rule invocations to stderr")
	fs.StringSliceVar(&keepKinds, "keep", nil, "Token kinds to keep in the stream, e.g. NEWLINE,WHITESPACE")
}

// loadSettings reads the config file and applies every flag set on the
// command line over it.
func loadSettings(fs *pflag.FlagSet) (*settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if fs.Changed("trace") {
		cfg.Trace = traceParse
	}
	if fs.Changed("out") {
		cfg.OutDir = outDir
	}
	if fs.Changed("ext") {
		cfg.Extension = extension
	}

	s, err := loadSettingsFrom(cfg, keepKinds)
	if err != nil {
		return nil, err
	}
	s.dTokens = dTokens
	s.dParse = dParse
	return s, nil
}
