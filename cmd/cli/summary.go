package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/nimasrn/money-management/internal/report"
)

type summaryCmd struct {
	env   envFlag
	owner string
	email string
	raw   bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "print an owner's financial summary in the terminal" }
func (*summaryCmd) Usage() string {
	return `cli summary -owner <user id> [-email <email>] [-raw]

  Renders the same sections as the downloadable report as styled markdown.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.env.register(f)
	f.StringVar(&c.owner, "owner", "", "user id whose records are summarized")
	f.StringVar(&c.email, "email", "", "email shown in the report header")
	f.BoolVar(&c.raw, "raw", false, "print plain markdown without terminal styling")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == "" {
		fmt.Fprintln(os.Stderr, "Error: -owner is required")
		return subcommands.ExitUsageError
	}
	cfg, err := c.env.load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	dashboard, err := openDashboard(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	file, err := dashboard.GenerateReport(ctx, c.owner, c.email, report.FormatMarkdown)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.raw {
		os.Stdout.Write(file.Body)
		return subcommands.ExitSuccess
	}
	printMarkdown(file.Body)
	return subcommands.ExitSuccess
}

func printMarkdown(md []byte) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		os.Stdout.Write(md)
		return
	}
	out, err := r.RenderBytes(bytes.TrimSpace(md))
	if err != nil {
		os.Stdout.Write(md)
		return
	}
	os.Stdout.Write(out)
}
