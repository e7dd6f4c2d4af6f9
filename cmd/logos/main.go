package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/logos/fol"
	"github.com/npillmayer/logos/format"
	"github.com/npillmayer/logos/lexicon"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// packages lists the trace keys of the compiler's packages.
var packages = []string{"ast", "lexicon", "lexer", "mwe", "discovery", "drs", "parser",
	"semantics", "pragmatics", "lambda", "format", "proof", "fol"}

// flags of the root command
var (
	formatName  string
	lexiconPath string
	traceLevel  string
)

// opts is set up from the flags before any sub-command runs.
var opts fol.Options

func main() {
	gtrace.SyntaxTracer = gologadapter.New()
	initDisplay()
	root := rootCommand()
	if err := root.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "logos",
		Short: "Translate English to first-order logic",
		Long: `Logos compiles English sentences to formulas of first-order logic,
with events, modality, tense and discourse referents.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	root.PersistentFlags().StringVarP(&formatName, "format", "f", "",
		"output notation [unicode|latex|simplefol|kripke|gobool]")
	root.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "lexicon file (YAML)")
	root.PersistentFlags().StringVar(&traceLevel, "trace", "Error", "trace level [Debug|Info|Error]")
	root.AddCommand(
		compileCommand(),
		forestCommand(),
		scopesCommand(),
		discourseCommand(),
		theoremCommand(),
		dumpCommand(),
		replCommand(),
	)
	return root
}

// setup configures tracing and the compiler options from the flags.
func setup(cmd *cobra.Command, args []string) error {
	level := tracing.TraceLevelFromString(traceLevel)
	tracer().SetTraceLevel(level)
	for _, p := range packages {
		tracing.Select("logos." + p).SetTraceLevel(level)
	}
	if formatName != "" {
		f, ok := format.ByName(formatName)
		if !ok {
			return fmt.Errorf("unknown output format %q", formatName)
		}
		opts.Format = f
	} else {
		opts.Format = fol.DefaultFormat()
	}
	if lexiconPath != "" {
		lex, err := lexicon.LoadFile(lexiconPath)
		if err != nil {
			return err
		}
		opts.Lexicon = lex
	}
	tracer().Debugf("output format is %s", opts.Format.Name())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// input returns the arguments as one text, or standard input if there are
// none.
func input(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
