package main

import (
	"fmt"
	"os"

	"github.com/bookalope/bookalope-go/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var cmd command
	switch os.Args[1] {
	case "convert":
		cmd = cli.NewConvertCommand()
	case "books":
		cmd = cli.NewBooksCommand()
	case "shelves":
		cmd = cli.NewShelvesCommand()
	case "create-book":
		cmd = cli.NewCreateBookCommand()
	case "profile":
		cmd = cli.NewProfileCommand()
	case "formats":
		cmd = cli.NewFormatsCommand()

	case "version":
		fmt.Printf("bookalope %s (%s)\n", Version, Commit)
		return

	case "-h", "--help", "help":
		printUsage()
		return

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  convert      Upload a document, convert it, and download the result\n")
	fmt.Fprintf(os.Stderr, "  books        List books and their conversion flows\n")
	fmt.Fprintf(os.Stderr, "  shelves      List bookshelves\n")
	fmt.Fprintf(os.Stderr, "  create-book  Create a book with one conversion flow\n")
	fmt.Fprintf(os.Stderr, "  profile      Show or update the account profile\n")
	fmt.Fprintf(os.Stderr, "  formats      List supported formats and styles\n")
	fmt.Fprintf(os.Stderr, "  version      Print the version\n")
	fmt.Fprintf(os.Stderr, "\nConfiguration is read from the environment (and an optional .env file):\n")
	fmt.Fprintf(os.Stderr, "  BOOKALOPE_TOKEN          API access token (required)\n")
	fmt.Fprintf(os.Stderr, "  BOOKALOPE_HOST           API host (default %s)\n", "https://bookflow.bookalope.net")
	fmt.Fprintf(os.Stderr, "  BOOKALOPE_POLL_INTERVAL  Delay between status checks (default 5s)\n")
	fmt.Fprintf(os.Stderr, "  BOOKALOPE_POLL_TIMEOUT   Overall conversion deadline (default 10m)\n")
	fmt.Fprintf(os.Stderr, "  BOOKALOPE_VERBOSE        Print progress while converting (default false)\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
