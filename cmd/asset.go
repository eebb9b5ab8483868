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

// --- Asset Command ---

type assetCmd struct {
	id          string
	name        string
	description string
	typ         string
	stock       int
	costBasis   string
}

func (*assetCmd) Name() string     { return "asset" }
func (*assetCmd) Synopsis() string { return "create or update an asset" }
func (*assetCmd) Usage() string {
	return `sbk asset [-id <id>] -n <name> [-d <description>] [-t <type>] [-s <stock>] [-c <cost>]

  Creates an asset, or updates the one selected with -id. Products are
  what the seller makes and sells, equipment is what the seller buys to
  work with.
`
}

func (c *assetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Asset to update. A new asset is created when omitted.")
	f.StringVar(&c.name, "n", "", "Asset name")
	f.StringVar(&c.description, "d", "", "Optional description")
	f.StringVar(&c.typ, "t", "", "Asset type (product, equipment). Defaults to product on creation.")
	f.IntVar(&c.stock, "s", -1, "Pieces in stock")
	f.StringVar(&c.costBasis, "c", "", "Cost basis per piece, e.g. 4.50")
}

func (c *assetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var a sellerbook.Asset
	if c.id != "" {
		id, err := sellerbook.ParseID(c.id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing id: %v\n", err)
			return subcommands.ExitUsageError
		}
		if a, err = b.FindAsset(id); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	if c.name != "" {
		a.Name = c.name
	}
	if a.Name == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	if c.description != "" {
		a.Description = c.description
	}
	if c.typ != "" {
		typ, err := sellerbook.ParseAssetType(c.typ)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		a.Type = typ
	}
	if c.stock >= 0 {
		a.Stock = c.stock
	}
	if c.costBasis != "" {
		cost, err := parseAmount(c.costBasis)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing cost basis: %v\n", err)
			return subcommands.ExitUsageError
		}
		a.CostBasis = cost
	}

	a = b.SaveAsset(a)
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Saved asset %s\n", a)
	return subcommands.ExitSuccess
}

// --- Assets Command ---

type assetsCmd struct{}

func (*assetsCmd) Name() string     { return "assets" }
func (*assetsCmd) Synopsis() string { return "list all assets in the book" }
func (*assetsCmd) Usage() string {
	return `sbk assets

  Lists all assets with their stock and cost basis.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := DecodeBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AssetsMarkdown(b.Assets()))
	return subcommands.ExitSuccess
}
