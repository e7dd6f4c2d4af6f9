package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/logos/drs"
	"github.com/npillmayer/logos/fol"
	"github.com/npillmayer/logos/format"
	"github.com/npillmayer/logos/intern"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func replCommand() *cobra.Command {
	var initf string
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Compile sentences interactively, as one discourse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repl, err := readline.New("logos> ")
			if err != nil {
				return err
			}
			defer repl.Close()
			intp := NewIntp(opts)
			pterm.Info.Println("Welcome to Logos")
			tracer().Infof("Quit with <ctrl>D")
			intp.loadInitFile(initf)
			intp.REPL(repl)
			return nil
		},
	}
	cmd.Flags().StringVar(&initf, "init", "", "file of sentences to load first")
	return cmd
}

// Intp is our interpreter object. Sentences entered one after the other
// form a discourse: pronouns may refer to referents of earlier lines.
type Intp struct {
	opts fol.Options
	ws   *drs.WorldState
	in   *intern.Interner
}

// NewIntp creates an interpreter with an empty discourse.
func NewIntp(opts fol.Options) *Intp {
	intp := &Intp{opts: opts}
	intp.reset()
	return intp
}

func (intp *Intp) reset() {
	intp.ws = drs.NewWorldState()
	intp.in = intern.New()
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, err := intp.Eval(line, io.Discard); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF or interrupt
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line, repl.Stdout())
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// Eval compiles a line in the context of the discourse so far, or executes
// a command:
//
//	:quit             leave the REPL
//	:reset            start a new discourse
//	:format name      switch the output notation
//	:forest text      all readings of text
//	:scopes text      all scope readings of text
//	:tree text        the logical form of text
//
// Commands do not change the discourse.
func (intp *Intp) Eval(line string, out io.Writer) (bool, error) {
	if !strings.HasPrefix(line, ":") {
		f, err := fol.CompileWithDiscourseOptions(line, intp.ws, intp.in, intp.opts)
		if err != nil {
			return false, err
		}
		fmt.Fprintln(out, f)
		return false, nil
	}
	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)
	tracer().Debugf("command %q, argument %q", cmd, arg)
	switch cmd {
	case "quit", "q":
		return true, nil
	case "reset":
		intp.reset()
		fmt.Fprintln(out, "new discourse")
	case "format":
		f, ok := format.ByName(arg)
		if !ok {
			return false, fmt.Errorf("unknown output format %q", arg)
		}
		intp.opts.Format = f
	case "forest":
		for i, r := range fol.CompileForestWithOptions(arg, intp.opts) {
			fmt.Fprintf(out, "%2d: %s\n", i+1, r)
		}
	case "scopes":
		readings, err := fol.CompileAllScopesWithOptions(arg, intp.opts)
		if err != nil {
			return false, err
		}
		for i, r := range readings {
			fmt.Fprintf(out, "%2d: %s\n", i+1, r)
		}
	case "tree":
		a, err := fol.CompileAST(arg, intp.opts)
		if err != nil {
			return false, err
		}
		renderTree(a.Dump())
	default:
		return false, fmt.Errorf("unknown command :%s", cmd)
	}
	return false, nil
}
