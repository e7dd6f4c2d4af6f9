package main

import (
	"github.com/eaburns/pretty"
	"github.com/npillmayer/logos/ast"
	"github.com/npillmayer/logos/fol"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func dumpCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "dump [text]",
		Short: "Show the logical form of a text as a tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := input(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a, err := fol.CompileAST(text, opts)
			if err != nil {
				return err
			}
			if raw {
				pretty.Indent = "    "
				pretty.Print(a.Dump())
				pterm.Println()
				return nil
			}
			renderTree(a.Dump())
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the dump structure instead of a tree")
	return cmd
}

// renderTree displays a logical form as a tree on the terminal.
func renderTree(root *ast.DumpNode) {
	var ll pterm.LeveledList
	root.Walk(func(n *ast.DumpNode, level int) {
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: n.Label})
	})
	tracer().Debugf("|ll| = %d", len(ll))
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
}
