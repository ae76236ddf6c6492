package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dusk-indust/userstore/internal/config"
	"github.com/dusk-indust/userstore/internal/store"
	"github.com/dusk-indust/userstore/internal/user"
)

// CLI flags parsed from command line.
type cliFlags struct {
	ConfigDir string
	Verbose   bool
	Version   bool
}

// version is set by goreleaser at build time.
var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var flags cliFlags

	fs := flag.NewFlagSet("userstore", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&flags.ConfigDir, "config-dir", ".", "directory containing userstore.yml")
	fs.BoolVar(&flags.Verbose, "verbose", false, "log store events to stderr")
	fs.BoolVar(&flags.Version, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if flags.Version {
		fmt.Fprintln(stdout, version)
		return nil
	}

	cfg, err := config.Load(flags.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	opts := []store.Option{store.WithMaxUsers(cfg.MaxUsers)}
	if flags.Verbose || cfg.Verbose {
		opts = append(opts, store.WithLogger(log.New(stderr, "", log.LstdFlags)))
	}
	s := store.New(opts...)

	demo(s, cfg.Users, stdout, stderr)
	return nil
}

// demo exercises each store operation once and reports the outcome.
func demo(s *store.UserStore, extra []config.SeedUser, stdout, stderr io.Writer) {
	switch r := s.Get(1).(type) {
	case user.Success[user.User]:
		fmt.Fprintf(stdout, "Found: %s\n", r.Data.Name())
	case user.Failure[user.User]:
		fmt.Fprintf(stderr, "Error: %s\n", r.Message())
	}

	admins := s.FindByRole(user.RoleAdmin)
	fmt.Fprintf(stdout, "Admins: %d\n", len(admins))

	_, isSuccess := s.Create("Diana", "diana@example.com", user.RoleUser).(user.Success[user.User])
	fmt.Fprintf(stdout, "Created: %t\n", isSuccess)

	for _, su := range extra {
		switch r := s.Create(su.Name, su.Email, su.Role).(type) {
		case user.Success[user.User]:
			fmt.Fprintf(stdout, "Created: %s\n", r.Data)
		case user.Failure[user.User]:
			fmt.Fprintf(stderr, "Error: %s\n", r.Message())
		}
	}

	active := s.ActiveUsers()
	fmt.Fprintf(stdout, "Active users: %d\n", len(active))
	for _, u := range active {
		fmt.Fprintf(stdout, "  - %s\n", u)
	}
}
