package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookalope/bookalope-go/bookalope"
	"github.com/bookalope/bookalope-go/internal/config"
)

// BooksCommand lists the account's books and their bookflow steps.
type BooksCommand struct {
	ShelfID string
}

func NewBooksCommand() *BooksCommand {
	return &BooksCommand{}
}

func (cmd *BooksCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("books", flag.ExitOnError)

	fs.StringVar(&cmd.ShelfID, "shelf", "", "List only the books of this bookshelf id")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s books [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List books with their conversion flows and steps.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *BooksCommand) Run() error {
	cfg := config.NewConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	var books []*bookalope.Book
	if cmd.ShelfID != "" {
		shelf, err := client.NewBookshelf(cmd.ShelfID)
		if err != nil {
			return err
		}
		if err := shelf.Update(ctx); err != nil {
			return err
		}
		books = shelf.Books
	} else {
		books, err = client.Books(ctx)
		if err != nil {
			return err
		}
	}

	if len(books) == 0 {
		fmt.Println("no books")
		return nil
	}
	for _, book := range books {
		fmt.Printf("%s  %s\n", book.ID, book.Name)
		for _, flow := range book.Bookflows {
			fmt.Printf("  %s  %s %s\n", flow.ID, flow.Name, stepChip(flow.Step))
		}
	}
	return nil
}
