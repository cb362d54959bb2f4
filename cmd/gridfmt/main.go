package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bjaus/gridfmt"
)

type params struct {
	line   int
	write  bool
	format string
	wrap   int
}

func main() {
	var p params

	root := &cobra.Command{
		Use:   "gridfmt [file]",
		Short: "Reformat the plain-text table under a cursor line",
		Long: `Reformat the plain-text table under a cursor line.

gridfmt reads a reStructuredText-like document from the given file, or from
stdin if no file is provided, locates the contiguous non-blank block of lines
containing the cursor line, and reformats the table it holds into a uniformly
aligned grid table.

By default the whole document, with the table rewritten in place, is printed
to stdout. With '-w' the file is rewritten instead.

With '--format' other than grid, only the table itself is printed, converted
to the requested format (markdown, csv, json, or yaml).`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, p)
		},
	}

	root.Flags().IntVarP(&p.line, "line", "l", 1, "1-based cursor line identifying the table")
	root.Flags().BoolVarP(&p.write, "write", "w", false, "rewrite the file in place instead of printing to stdout")
	root.Flags().StringVarP(&p.format, "format", "f", "grid", "output format: grid, markdown, csv, json, or yaml")
	root.Flags().IntVar(&p.wrap, "wrap", 0, "word-wrap cell content at this display width (0 disables)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, p params) error {
	format, err := gridfmt.ParseFormat(p.format)
	if err != nil {
		return err
	}
	if p.line < 1 {
		return fmt.Errorf("line %d out of range: lines are numbered from 1", p.line)
	}

	var data []byte
	path := ""
	if len(args) == 1 {
		path = args[0]
		if data, err = os.ReadFile(path); err != nil {
			return err
		}
	} else {
		if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return err
		}
	}

	if p.write {
		if path == "" {
			return errors.New("-w requires a file argument")
		}
		if format != gridfmt.Grid {
			return fmt.Errorf("-w supports only the %s format", gridfmt.Grid)
		}
	}

	var opts []gridfmt.Option
	if p.wrap > 0 {
		opts = append(opts, gridfmt.WithWrap(p.wrap))
	}

	buf := gridfmt.NewBufferFromString(string(data))
	cursor := p.line - 1

	if format != gridfmt.Grid {
		upper, lower := gridfmt.Bounds(buf, cursor)
		if upper > lower {
			return fmt.Errorf("no table found at line %d", p.line)
		}
		lines := buf.Lines()[upper : lower+1]
		return gridfmt.Write(cmd.OutOrStdout(), format, gridfmt.Parse(lines))
	}

	if err := gridfmt.Reformat(buf, cursor, opts...); err != nil {
		return err
	}
	if p.write {
		return os.WriteFile(path, []byte(buf.String()), 0644)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), buf.String())
	return err
}
