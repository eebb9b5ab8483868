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

// recordTransaction records a transaction against the book and persists
// it, reporting stock shortage in the user's terms.
func recordTransaction(b *sellerbook.Book, t sellerbook.Transaction) subcommands.ExitStatus {
	saved, err := b.Record(t)
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
	fmt.Printf("%s\n", renderer.Transaction(saved, a))
	return subcommands.ExitSuccess
}

// --- Sell Command ---

type sellCmd struct {
	month  string
	asset  string
	amount int
	price  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a product sale" }
func (*sellCmd) Usage() string {
	return `sbk sell -a <asset> -n <amount> -p <price> [-m <month>]

  Records the sale of a product. The sold amount is taken from the
  asset's stock.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", sellerbook.ThisMonth().String(), "Month of the sale (YYYY-MM)")
	f.StringVar(&c.asset, "a", "", "Asset id or name")
	f.IntVar(&c.amount, "n", 0, "Number of pieces sold")
	f.StringVar(&c.price, "p", "", "Unit price, e.g. 12.50")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" || c.amount <= 0 || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return record(c.month, c.asset, c.amount, c.price, sellerbook.Product)
}

// --- Buy Command ---

type buyCmd struct {
	month  string
	asset  string
	amount int
	price  string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record an equipment purchase" }
func (*buyCmd) Usage() string {
	return `sbk buy -a <asset> -n <amount> -p <price> [-m <month>]

  Records the purchase of equipment. The bought amount is taken from the
  asset's planned stock.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "m", sellerbook.ThisMonth().String(), "Month of the purchase (YYYY-MM)")
	f.StringVar(&c.asset, "a", "", "Asset id or name")
	f.IntVar(&c.amount, "n", 0, "Number of pieces bought")
	f.StringVar(&c.price, "p", "", "Unit price, e.g. 40.00")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.asset == "" || c.amount <= 0 || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	return record(c.month, c.asset, c.amount, c.price, sellerbook.Equipment)
}

// record is the shared body of sell and buy: it resolves the flags
// against the book and records the transaction.
func record(month, asset string, amount int, price string, want sellerbook.AssetType) subcommands.ExitStatus {
	m, err := sellerbook.ParseMonth(month)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing month: %v\n", err)
		return subcommands.ExitUsageError
	}
	unitPrice, err := parseAmount(price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing price: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	a, err := resolveAsset(b, asset)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if a.Type != want {
		fmt.Fprintf(os.Stderr, "Error: %s is %s, not %s\n", a.Name, a.Type, want)
		return subcommands.ExitUsageError
	}
	p, err := resolvePeriod(b, m)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	return recordTransaction(b, sellerbook.Transaction{
		PeriodID:  p.ID,
		AssetID:   a.ID,
		Amount:    amount,
		UnitPrice: unitPrice,
	})
}
