package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/csontaka/sellerbook"
	"github.com/google/subcommands"
)

type exportCmd struct {
	report string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export transactions or the summary as CSV" }
func (*exportCmd) Usage() string {
	return `sbk export [-r tx|summary] [-o <file>]

  Exports the book as semicolon-separated CSV, to stdout or to a file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.report, "r", "tx", "Report to export (tx, summary).")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		f, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer f.Close()
		w = f
	}

	switch c.report {
	case "tx":
		err = sellerbook.ExportTransactions(w, b)
	case "summary":
		err = sellerbook.ExportSummary(w, sellerbook.NewSummary(b, sellerbook.Month{}, sellerbook.Month{}))
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown report %q\n", c.report)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
