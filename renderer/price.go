package renderer

import (
	"bytes"
	"fmt"

	"github.com/csontaka/sellerbook"
	md "github.com/nao1215/markdown"
)

// PriceMarkdown renders a price calculation to a markdown string: the
// cost lines that went in, and the price that came out.
func PriceMarkdown(materials, fees []sellerbook.CostItem, profit sellerbook.ProfitSpec, r sellerbook.PriceResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Price calculation")

	lines := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Cost", "Expenditure"},
	}
	for _, m := range materials {
		lines.Rows = append(lines.Rows, []string{m.Name, sellerbook.Money(m.Expenditure).String()})
	}
	for _, f := range fees {
		lines.Rows = append(lines.Rows, []string{f.Name, fmt.Sprintf("%d%%", f.Expenditure)})
	}
	lines.Rows = append(lines.Rows, []string{"profit", profit.String()})
	doc.Table(lines)

	doc.H2("Result")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{md.Bold("Price"), md.Bold(r.Price.String())},
		Rows: [][]string{
			{"Material cost", r.MaterialCost.String()},
			{"Profit", r.Profit.String()},
			{"Fees", r.Fees.String()},
		},
	})

	return doc.String()
}
