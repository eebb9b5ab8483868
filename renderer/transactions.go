package renderer

import (
	"bytes"
	"fmt"

	"github.com/csontaka/sellerbook"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one-line string.
func Transaction(t sellerbook.Transaction, a sellerbook.Asset) string {
	switch a.Type {
	case sellerbook.Equipment:
		return fmt.Sprintf("Bought %d %s at %s, total %s", t.Amount, a.Name, t.UnitPrice, t.Total())
	default:
		return fmt.Sprintf("Sold %d %s at %s, total %s", t.Amount, a.Name, t.UnitPrice, t.Total())
	}
}

// TransactionsMarkdown renders a transaction listing to a markdown
// string, resolving asset and period references through the book.
// Dangling references render as "?" rather than sinking the listing.
func TransactionsMarkdown(b *sellerbook.Book, txs []sellerbook.Transaction) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Id", "Month", "Asset", "Type", "Amount", "Unit price", "Total"},
	}
	for _, t := range txs {
		assetName, assetType := "?", "?"
		if a, err := b.FindAsset(t.AssetID); err == nil {
			assetName, assetType = a.Name, a.Type.String()
		}
		month := "?"
		if p, err := b.FindPeriod(t.PeriodID); err == nil {
			month = p.Month.String()
		}
		table.Rows = append(table.Rows, []string{
			t.ID.String(),
			month,
			assetName,
			assetType,
			fmt.Sprintf("%d", t.Amount),
			t.UnitPrice.String(),
			t.Total().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
