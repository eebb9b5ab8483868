package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/csontaka/sellerbook"
	"github.com/google/subcommands"
)

type rmCmd struct {
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a recorded transaction" }
func (*rmCmd) Usage() string {
	return `sbk rm -id <id>

  Deletes a transaction and credits its amount back to the asset's stock.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Transaction to delete")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := b.Remove(id); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if status := saveBook(b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Removed transaction %s\n", id)
	return subcommands.ExitSuccess
}
