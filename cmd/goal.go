package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/csontaka/sellerbook"
	"github.com/google/subcommands"
)

type goalCmd struct {
	month string
	goal  string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "set the income goal of a month" }
func (*goalCmd) Usage() string {
	return `sbk goal -g <amount> [-m <month>]

  Sets the income goal of a month. The month must be one of the open
  periods of the book.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", sellerbook.ThisMonth().String(), "Month to set the goal for (YYYY-MM)")
	f.StringVar(&c.goal, "g", "", "Goal amount, e.g. 200.00")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.goal == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	m, err := sellerbook.ParseMonth(c.month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	goal, err := parseAmount(c.goal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing goal: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := b.RefreshWindow(sellerbook.ThisMonth()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	p, err := b.SetGoal(m, goal)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Goal of %s set to %s\n", p, p.Goal)
	return subcommands.ExitSuccess
}
