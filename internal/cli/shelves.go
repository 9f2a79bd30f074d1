package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookalope/bookalope-go/internal/config"
)

// ShelvesCommand lists the account's bookshelves.
type ShelvesCommand struct{}

func NewShelvesCommand() *ShelvesCommand {
	return &ShelvesCommand{}
}

func (cmd *ShelvesCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("shelves", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s shelves\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List bookshelves and the books they contain.\n")
	}

	return fs.Parse(args)
}

func (cmd *ShelvesCommand) Run() error {
	cfg := config.NewConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	shelves, err := client.Bookshelves(ctx)
	if err != nil {
		return err
	}
	if len(shelves) == 0 {
		fmt.Println("no bookshelves")
		return nil
	}
	for _, shelf := range shelves {
		fmt.Printf("%s  %s (%d books)\n", shelf.ID, shelf.Name, len(shelf.Books))
		if shelf.Description != "" {
			fmt.Printf("  %s\n", shelf.Description)
		}
		for _, book := range shelf.Books {
			fmt.Printf("  %s  %s\n", book.ID, book.Name)
		}
	}
	return nil
}
