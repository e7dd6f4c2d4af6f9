package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/logos/fol"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func compileCommand() *cobra.Command {
	var ambiguous bool
	cmd := &cobra.Command{
		Use:     "compile [text]",
		Short:   "Compile text to a formula",
		Aliases: []string{"c"},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if ambiguous {
				readings, err := fol.CompileAmbiguousWithOptions(text, opts)
				if err != nil {
					return err
				}
				printReadings(readings)
				return nil
			}
			out, err := fol.CompileWithOptions(text, opts)
			if err != nil {
				return err
			}
			pterm.Println(out)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&ambiguous, "ambiguous", "a", false,
		"show the reading with noun attachment of prepositional phrases as well")
	return cmd
}

func forestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "forest [text]",
		Short: "Show all readings of an ambiguous text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			readings := fol.CompileForestWithOptions(text, opts)
			if len(readings) == 0 {
				return fmt.Errorf("no reading for %q", text)
			}
			printReadings(readings)
			return nil
		},
	}
}

func scopesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scopes [text]",
		Short: "Show all quantifier scope readings",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			readings, err := fol.CompileAllScopesWithOptions(text, opts)
			if err != nil {
				return err
			}
			printReadings(readings)
			return nil
		},
	}
}

func discourseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "discourse sentence...",
		Short: "Compile sentences as a narrative of successive events",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := fol.CompileDiscourseWithOptions(args, opts)
			if err != nil {
				return err
			}
			pterm.Println(out)
			return nil
		},
	}
}

func theoremCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "theorem [file]",
		Short: "Prove the theorem block of a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text string
			if len(args) == 1 {
				b, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				text = string(b)
			} else {
				t, err := input(nil, cmd.InOrStdin())
				if err != nil {
					return err
				}
				text = t
			}
			out, err := fol.CompileTheorem(text)
			if err != nil {
				return err
			}
			pterm.Info.Println(out)
			return nil
		},
	}
}

func printReadings(readings []string) {
	for i, r := range readings {
		pterm.Printf("%2d: %s\n", i+1, r)
	}
}
