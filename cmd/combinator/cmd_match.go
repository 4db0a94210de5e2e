package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/clarete/combinator"
	"github.com/clarete/combinator/grammars"
	"github.com/clarete/combinator/logtrace"
)

func newMatchCmd() *cobra.Command {
	var (
		trace     bool
		traceLog  bool
		colors    bool
		full      bool
		preview   int
		offset    int
		filter    string
		inputPath string
	)

	cmd := &cobra.Command{
		Use:   "match <grammar> [input]",
		Short: "Match a sample grammar against an input",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := commonlog.GetLogger(logName)

			g, ok := grammars.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown grammar `%s`", args[0])
			}

			input, err := readInput(args, inputPath)
			if err != nil {
				return err
			}

			cfg := combinator.NewConfig()
			cfg.SetInt("trace.preview_len", preview)
			cfg.SetBool("trace.colors", colors)
			cfg.SetString("scanner.filter", filter)

			s, err := combinator.NewScannerFromConfig(input, cfg)
			if err != nil {
				return err
			}
			if offset < 0 || offset > s.Len() {
				return fmt.Errorf("offset %d out of bounds 0..%d", offset, s.Len())
			}
			s.Seek(offset)

			if trace {
				combinator.NewTracerFromConfig(cmd.OutOrStdout(), cfg).Attach(g.Observables()...)
			}
			if traceLog {
				obs := logtrace.New(logName+".trace", cfg)
				for _, r := range g.Rules {
					r.Observe(obs)
				}
			}

			root := g.Root
			if full {
				root = combinator.Seq(root, combinator.End())
			}

			log.Infof("matching grammar %s against %d runes at %d", g.Name, s.Len(), offset)
			m, err := root.Parse(s)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}
			if !m.Success {
				return fmt.Errorf("no match at %d", m.Offset)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "match %s\n", m)
			if !s.AtEnd() {
				log.Noticef("input left unconsumed at %d", s.Offset())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Print every rule attempt")
	cmd.Flags().BoolVar(&traceLog, "trace-log", false, "Log every rule attempt at debug level")
	cmd.Flags().BoolVar(&colors, "colors", false, "Colorize the trace output")
	cmd.Flags().BoolVar(&full, "full", false, "Require the grammar to consume the entire input")
	cmd.Flags().IntVar(&preview, "preview", 20, "How many runes of input each trace line shows")
	cmd.Flags().IntVar(&offset, "offset", 0, "Rune offset where matching starts")
	cmd.Flags().StringVar(&filter, "filter", "none", "Filter applied to the input: none, lower or upper")
	cmd.Flags().StringVarP(&inputPath, "file", "f", "", "Read the input from a file")
	return cmd
}

func readInput(args []string, path string) (string, error) {
	switch {
	case path != "" && len(args) > 1:
		return "", fmt.Errorf("input given both as argument and file")
	case path != "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	case len(args) > 1:
		return args[1], nil
	default:
		return "", fmt.Errorf("input not informed")
	}
}
