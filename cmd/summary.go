package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/csontaka/sellerbook"
	"github.com/csontaka/sellerbook/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	from string
	to   string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the monthly income and goal summary" }
func (*summaryCmd) Usage() string {
	return `sbk summary [-from <month>] [-to <month>]

  Displays income, expense and goal per month. Without flags the whole
  book is summarized.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "First month of the summary (YYYY-MM)")
	f.StringVar(&c.to, "to", "", "Last month of the summary (YYYY-MM)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var from, to sellerbook.Month
	var err error
	if c.from != "" {
		if from, err = sellerbook.ParseMonth(c.from); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.to != "" {
		if to, err = sellerbook.ParseMonth(c.to); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderSummary(sellerbook.NewSummary(b, from, to)))

	return subcommands.ExitSuccess
}
