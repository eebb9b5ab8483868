package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/csontaka/sellerbook"
	"github.com/csontaka/sellerbook/renderer"
	"github.com/google/subcommands"
)

type editCmd struct {
	id     string
	month  string
	asset  string
	amount int
	price  string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "amend a recorded transaction" }
func (*editCmd) Usage() string {
	return `sbk edit -id <id> [-a <asset>] [-n <amount>] [-p <price>] [-m <month>]

  Amends a transaction. Stock follows the change: the old amount is
  credited back and the new amount debited, also when the transaction
  moves to another asset.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to amend")
	f.StringVar(&c.month, "m", "", "New month (YYYY-MM)")
	f.StringVar(&c.asset, "a", "", "New asset id or name")
	f.IntVar(&c.amount, "n", 0, "New number of pieces")
	f.StringVar(&c.price, "p", "", "New unit price")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, err := sellerbook.ParseID(c.id)
	if err != nil {
		f.Usage()
		return subcommands.ExitUsageError
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	t, err := b.FindTransaction(id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.asset != "" {
		a, err := resolveAsset(b, c.asset)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		t.AssetID = a.ID
	}
	if c.month != "" {
		m, err := sellerbook.ParseMonth(c.month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
			return subcommands.ExitUsageError
		}
		p, err := resolvePeriod(b, m)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		t.PeriodID = p.ID
	}
	if c.amount != 0 {
		if c.amount < 0 {
			fmt.Fprintf(os.Stderr, "Error: amount cannot be negative\n")
			return subcommands.ExitUsageError
		}
		t.Amount = c.amount
	}
	if c.price != "" {
		unitPrice, err := parseAmount(c.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
			return subcommands.ExitUsageError
		}
		t.UnitPrice = unitPrice
	}

	saved, err := b.Amend(t)
	if err != nil {
		var short *sellerbook.InsufficientStockError
		if errors.As(err, &short) {
			fmt.Fprintf(os.Stderr, "Error: only %d pieces in stock, %d requested\n", short.Available, short.Requested)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}

	a, err := b.FindAsset(saved.AssetID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Amended %s: %s\n", saved.ID, renderer.Transaction(saved, a))
	return subcommands.ExitSuccess
}
