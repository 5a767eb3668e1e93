package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/nimasrn/money-management/pkg/pg"
)

type migrateCmd struct {
	env envFlag
	dir string
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply the postgres schema migrations" }
func (*migrateCmd) Usage() string {
	return `cli migrate [-env <file>] [-dir <dir>]

  Applies every pending goose migration to the write database.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	c.env.register(f)
	f.StringVar(&c.dir, "dir", "./migrations", "directory holding the goose migrations")
}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := c.env.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if _, err := os.Stat(c.dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: migrations directory: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := pg.Migrate(cfg.WriteDB(), c.dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
