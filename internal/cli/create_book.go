package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookalope/bookalope-go/internal/config"
)

// CreateBookCommand creates an empty book on the server.
type CreateBookCommand struct {
	Name string
}

func NewCreateBookCommand() *CreateBookCommand {
	return &CreateBookCommand{}
}

func (cmd *CreateBookCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("create-book", flag.ExitOnError)

	fs.StringVar(&cmd.Name, "name", "", "Name of the new book (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s create-book -name <name>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a book; the server adds one conversion flow in the upload step.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.Name == "" {
		return fmt.Errorf("required flag -name not provided")
	}
	return nil
}

func (cmd *CreateBookCommand) Run() error {
	cfg := config.NewConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	book, err := client.CreateBook(ctx, cmd.Name)
	if err != nil {
		return err
	}

	printOK("created book %s  %s", book.ID, book.Name)
	for _, flow := range book.Bookflows {
		fmt.Printf("  %s  %s %s\n", flow.ID, flow.Name, stepChip(flow.Step))
		fmt.Printf("  %s\n", flow.WebURL())
	}
	return nil
}
