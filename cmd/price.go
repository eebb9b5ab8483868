package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/csontaka/sellerbook"
	"github.com/csontaka/sellerbook/renderer"
	"github.com/google/subcommands"
)

// materialsFlag collects repeated -material flags into cost lines.
type materialsFlag []sellerbook.CostItem

func (m *materialsFlag) String() string { return fmt.Sprint(*m) }

func (m *materialsFlag) Set(s string) error {
	name, value := splitCost(s, "material")
	cost, err := parseAmount(value)
	if err != nil {
		return err
	}
	*m = append(*m, sellerbook.MaterialCost(name, cost))
	return nil
}

// feesFlag collects repeated -fee flags into fee lines.
type feesFlag []sellerbook.CostItem

func (ff *feesFlag) String() string { return fmt.Sprint(*ff) }

func (ff *feesFlag) Set(s string) error {
	name, value := splitCost(s, "fee")
	pct, err := strconv.Atoi(strings.TrimSuffix(value, "%"))
	if err != nil {
		return fmt.Errorf("fee %q is not a whole percentage", s)
	}
	*ff = append(*ff, sellerbook.FeeCost(name, pct))
	return nil
}

// splitCost splits "name:value" into its parts, with a default name
// when the value stands alone.
func splitCost(s, defaultName string) (name, value string) {
	if i := strings.LastIndex(s, ":"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return defaultName, s
}

// parseProfit parses the -profit flag: "12%" targets a profit relative
// to the material cost, a plain amount targets a flat profit.
func parseProfit(s string) (sellerbook.ProfitSpec, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(pct)
		if err != nil {
			return sellerbook.ProfitSpec{}, fmt.Errorf("profit %q is not a whole percentage", s)
		}
		return sellerbook.PercentProfit(n), nil
	}
	amount, err := parseAmount(s)
	if err != nil {
		return sellerbook.ProfitSpec{}, err
	}
	return sellerbook.FlatProfit(amount), nil
}

type priceCmd struct {
	materials materialsFlag
	fees      feesFlag
	profit    string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "calculate the sale price of a product" }
func (*priceCmd) Usage() string {
	return `sbk price -material [<name>:]<cost> [-material ...] [-fee [<name>:]<percent>] [-profit <amount>|<percent>%]

  Calculates the price to ask so that fees, charged as a percentage of
  the price, still leave the wanted profit over the material cost.

Usage Examples:
# A mug of 6.00 clay and 4.00 glaze, sold on a 6% marketplace, aiming
# for 10.00 profit.
$ sbk price -material clay:6.00 -material glaze:4.00 -fee etsy:6 -profit 10.00

# The same aiming for a profit of 40% of the material cost.
$ sbk price -material clay:6.00 -material glaze:4.00 -fee etsy:6 -profit 40%
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.materials, "material", "A material cost line, [<name>:]<cost>. Repeatable.")
	f.Var(&c.fees, "fee", "A fee in percent of the price, [<name>:]<percent>. Repeatable.")
	f.StringVar(&c.profit, "profit", "0.00", "Wanted profit, flat amount or <percent>% of the material cost.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profit, err := parseProfit(c.profit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing profit: %v\n", err)
		return subcommands.ExitUsageError
	}

	result, err := sellerbook.Calculate(c.materials, c.fees, profit)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PriceMarkdown(c.materials, c.fees, profit, result))

	return subcommands.ExitSuccess
}
