package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clarete/combinator"
	"github.com/clarete/combinator/ascii"
	"github.com/clarete/combinator/grammars"
)

func newDescribeCmd() *cobra.Command {
	var colors bool

	cmd := &cobra.Command{
		Use:   "describe <grammar>",
		Short: "Print the parsers a sample grammar is built from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, ok := grammars.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown grammar `%s`", args[0])
			}
			if colors {
				fmt.Fprint(cmd.OutOrStdout(), combinator.DescribeColors(g.Root, ascii.DefaultTheme))
				return nil
			}
			return combinator.DescribeTo(cmd.OutOrStdout(), g.Root)
		},
	}
	cmd.Flags().BoolVar(&colors, "colors", false, "Colorize the output")
	return cmd
}

func newGrammarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "List the sample grammars",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range grammars.Names() {
				g, _ := grammars.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", g.Name, g.Description)
			}
			return nil
		},
	}
}
