package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/bookalope/bookalope-go/internal/config"
)

// FormatsCommand lists supported formats, or the styles of one format.
type FormatsCommand struct {
	StylesFor string
}

func NewFormatsCommand() *FormatsCommand {
	return &FormatsCommand{}
}

func (cmd *FormatsCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("formats", flag.ExitOnError)

	fs.StringVar(&cmd.StylesFor, "styles", "", "List the styles available for this format instead")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s formats [-styles <format>]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "List the file formats the service supports.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *FormatsCommand) Run() error {
	cfg := config.NewConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	if cmd.StylesFor != "" {
		styles, err := client.Styles(ctx, cmd.StylesFor)
		if err != nil {
			return err
		}
		for _, style := range styles {
			fmt.Printf("%-16s %s (%s)\n", style.Name, style.DisplayName, style.Price)
			if style.Description != "" {
				fmt.Printf("  %s\n", style.Description)
			}
		}
		return nil
	}

	formats, err := client.Formats(ctx)
	if err != nil {
		return err
	}
	for _, format := range formats {
		fmt.Printf("%-12s %-28s %s\n", format.Name, format.MIME, strings.Join(format.Extensions, ", "))
	}
	return nil
}
