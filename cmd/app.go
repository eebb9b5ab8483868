// Package cmd implements the CLI application to manage a seller book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/csontaka/sellerbook"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application.
// A main package registers them all and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&assetCmd{},
	&assetsCmd{},
	&sellCmd{},
	&buyCmd{},
	&editCmd{},
	&rmCmd{},
	&txCmd{},
	&goalCmd{},
	&summaryCmd{},
	&priceCmd{},
	&exportCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "book.jsonl", "Path to the book file (JSONL format)")

// DecodeBook loads the book from the app book file.
func DecodeBook() (b *sellerbook.Book, err error) {
	f, err := os.Open(*bookFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, book does not exist, starting an empty book instead")
		return sellerbook.NewBook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return sellerbook.DecodeBook(f)
}

// EncodeBook writes the book back to the app book file.
func EncodeBook(b *sellerbook.Book) error {
	f, err := os.Create(*bookFile)
	if err != nil {
		return fmt.Errorf("creating book file %q: %w", *bookFile, err)
	}
	defer f.Close()
	return sellerbook.EncodeBook(f, b)
}

// saveBook persists the book and reports the outcome as an exit status.
func saveBook(b *sellerbook.Book) subcommands.ExitStatus {
	if err := EncodeBook(b); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing book file %q: %v\n", *bookFile, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// parseAmount parses a monetary amount, accepting both '.' and ',' as
// the decimal separator.
func parseAmount(s string) (sellerbook.Money, error) {
	m, err := sellerbook.ParseAmount(s, '.')
	if err != nil {
		return sellerbook.ParseAmount(s, ',')
	}
	return m, nil
}

// resolveAsset finds an asset by id or, failing that, by name.
func resolveAsset(b *sellerbook.Book, s string) (sellerbook.Asset, error) {
	if id, err := sellerbook.ParseID(s); err == nil {
		return b.FindAsset(id)
	}
	if a, ok := b.AssetByName(s); ok {
		return a, nil
	}
	return sellerbook.Asset{}, fmt.Errorf("asset %q: %w", s, sellerbook.ErrNotFound)
}

// resolvePeriod refreshes the rolling window and returns the period of
// the given month. Months outside the window are an error: the book only
// records into its open periods.
func resolvePeriod(b *sellerbook.Book, m sellerbook.Month) (sellerbook.Period, error) {
	if _, err := b.RefreshWindow(sellerbook.ThisMonth()); err != nil {
		return sellerbook.Period{}, err
	}
	p, ok := b.PeriodOf(m)
	if !ok {
		return sellerbook.Period{}, fmt.Errorf("month %s is outside the open periods", m)
	}
	return p, nil
}
