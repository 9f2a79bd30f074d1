package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bookalope/bookalope-go/bookalope"
	"github.com/bookalope/bookalope-go/internal/config"
)

// ConvertCommand uploads a document, waits for the structural analysis,
// requests a conversion, and downloads the result.
type ConvertCommand struct {
	InputPath    string
	Format       string
	Style        string
	OutputPath   string
	Title        string
	Author       string
	Language     string
	Credit       string
	SkipAnalysis bool
	Keep         bool
}

func NewConvertCommand() *ConvertCommand {
	return &ConvertCommand{}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	fs.StringVar(&cmd.InputPath, "in", "", "Path to the document to convert (required)")
	fs.StringVar(&cmd.Format, "format", "epub", "Target format, e.g. epub, mobi, pdf")
	fs.StringVar(&cmd.Style, "style", "", "Style name for the target format (server default if empty)")
	fs.StringVar(&cmd.OutputPath, "out", "", "Output file path (defaults to the input name with the format's extension)")
	fs.StringVar(&cmd.Title, "title", "", "Document title metadata")
	fs.StringVar(&cmd.Author, "author", "", "Document author metadata")
	fs.StringVar(&cmd.Language, "language", "", "Document language metadata, e.g. en-US")
	fs.StringVar(&cmd.Credit, "credit", "", "Attach a plan credit before converting: basic or pro")
	fs.BoolVar(&cmd.SkipAnalysis, "skip-analysis", false, "Upload without running the structural analysis")
	fs.BoolVar(&cmd.Keep, "keep", false, "Keep the created book on the server after downloading")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s convert -in <file> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Upload a document, run the conversion workflow, and download the result.\n\n")
		fmt.Fprintf(os.Stderr, "The command creates a scratch book for the document and deletes it after\n")
		fmt.Fprintf(os.Stderr, "the download unless -keep is given. Progress depends on server-side\n")
		fmt.Fprintf(os.Stderr, "analysis and rendering; poll timing is configured via BOOKALOPE_POLL_INTERVAL\n")
		fmt.Fprintf(os.Stderr, "and BOOKALOPE_POLL_TIMEOUT.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s convert -in manuscript.docx -format epub\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s convert -in manuscript.docx -format pdf -credit pro -title \"Emma\"\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.InputPath == "" {
		return fmt.Errorf("required flag -in not provided")
	}
	if cmd.Credit != "" && cmd.Credit != string(bookalope.CreditBasic) && cmd.Credit != string(bookalope.CreditPro) {
		return fmt.Errorf("invalid -credit value %q, must be basic or pro", cmd.Credit)
	}

	return nil
}

func (cmd *ConvertCommand) Run() error {
	cfg := config.NewConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(cmd.InputPath)
	if err != nil {
		return fmt.Errorf("failed to read input document: %w", err)
	}
	filename := filepath.Base(cmd.InputPath)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Poll.Timeout)
	defer cancel()

	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	if cmd.Title != "" {
		name = cmd.Title
	}

	book, err := client.CreateBook(ctx, name)
	if err != nil {
		return err
	}
	if len(book.Bookflows) == 0 {
		return fmt.Errorf("server created book %s without a bookflow", book.ID)
	}
	flow := book.Bookflows[0]
	printStatus("created book %s %s", book.ID, stepChip(flow.Step))

	cleanup := func() {
		if cmd.Keep {
			printStatus("keeping book %s (%s)", book.ID, flow.WebURL())
			return
		}
		// Best effort; the book is scratch state.
		if err := book.Delete(context.Background()); err != nil {
			printFail("failed to delete scratch book %s: %v", book.ID, err)
		}
	}
	defer cleanup()

	if cmd.Title != "" || cmd.Author != "" || cmd.Language != "" {
		flow.Title = cmd.Title
		flow.Author = cmd.Author
		flow.Language = cmd.Language
		if err := flow.Save(ctx); err != nil {
			return err
		}
	}

	var opts *bookalope.DocumentOptions
	if cmd.SkipAnalysis {
		opts = &bookalope.DocumentOptions{SkipAnalysis: true}
	}
	if err := flow.SetDocument(ctx, filename, content, opts); err != nil {
		return err
	}
	printStatus("uploaded %s (%d bytes) %s", filename, len(content), stepChip(flow.Step))

	if err := waitForAnalysis(ctx, flow, cfg.Poll.Interval); err != nil {
		return err
	}
	printStatus("analysis finished %s", stepChip(flow.Step))

	if cmd.Credit != "" {
		if err := flow.SetCredit(ctx, bookalope.Credit(cmd.Credit)); err != nil {
			return err
		}
		printStatus("attached %s credit", cmd.Credit)
	}

	if err := flow.Convert(ctx, cmd.Format, cmd.Style); err != nil {
		return err
	}
	if err := waitForConversion(ctx, flow, cmd.Format, cfg.Poll.Interval); err != nil {
		return err
	}

	result, err := flow.ConvertDownload(ctx, cmd.Format)
	if err != nil {
		return err
	}

	outputPath := cmd.OutputPath
	if outputPath == "" {
		base := strings.TrimSuffix(filepath.Base(cmd.InputPath), filepath.Ext(cmd.InputPath))
		outputPath = base + "." + cmd.Format
	}
	if err := os.WriteFile(outputPath, result, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	printOK("wrote %s (%d bytes)", outputPath, len(result))
	return nil
}
