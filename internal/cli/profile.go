package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/bookalope/bookalope-go/internal/config"
)

// ProfileCommand shows or updates the account profile.
type ProfileCommand struct {
	FirstName string
	LastName  string
}

func NewProfileCommand() *ProfileCommand {
	return &ProfileCommand{}
}

func (cmd *ProfileCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)

	fs.StringVar(&cmd.FirstName, "first", "", "Set the profile's first name")
	fs.StringVar(&cmd.LastName, "last", "", "Set the profile's last name")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s profile [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Show the account profile; with -first/-last, update it.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ProfileCommand) Run() error {
	cfg := config.NewConfig()
	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	profile, err := client.Profile(ctx)
	if err != nil {
		return err
	}

	if cmd.FirstName == "" && cmd.LastName == "" {
		fmt.Printf("%s %s\n", profile.FirstName, profile.LastName)
		return nil
	}

	if cmd.FirstName != "" {
		profile.FirstName = cmd.FirstName
	}
	if cmd.LastName != "" {
		profile.LastName = cmd.LastName
	}
	if err := profile.Save(ctx); err != nil {
		return err
	}
	printOK("profile updated: %s %s", profile.FirstName, profile.LastName)
	return nil
}
