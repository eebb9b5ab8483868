package renderer

import (
	"bytes"
	"fmt"

	"github.com/csontaka/sellerbook"
	md "github.com/nao1215/markdown"
)

// AssetsMarkdown renders the asset listing to a markdown string.
func AssetsMarkdown(assets []sellerbook.Asset) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Assets")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Id", "Name", "Type", "Description", "Stock", "Cost basis"},
	}
	for _, a := range assets {
		table.Rows = append(table.Rows, []string{
			a.ID.String(),
			a.Name,
			a.Type.String(),
			a.Description,
			fmt.Sprintf("%d", a.Stock),
			a.CostBasis.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
