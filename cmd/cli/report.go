package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/nimasrn/money-management/internal/report"
)

type reportCmd struct {
	env    envFlag
	owner  string
	email  string
	format string
	out    string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write an owner's financial report to a file" }
func (*reportCmd) Usage() string {
	return `cli report -owner <user id> [-format pdf|xlsx|md] [-out <path>]

  Writes the report to -out, or to the dated default filename in the
  current directory.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	c.env.register(f)
	f.StringVar(&c.owner, "owner", "", "user id whose records are reported")
	f.StringVar(&c.email, "email", "", "email shown in the report header")
	f.StringVar(&c.format, "format", "pdf", "output format (pdf, xlsx, md)")
	f.StringVar(&c.out, "out", "", "output path or directory")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.owner == "" {
		fmt.Fprintln(os.Stderr, "Error: -owner is required")
		return subcommands.ExitUsageError
	}
	format, err := report.ParseFormat(c.format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
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

	file, err := dashboard.GenerateReport(ctx, c.owner, c.email, format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	target := file.Filename
	if c.out != "" {
		target = c.out
		if info, err := os.Stat(c.out); err == nil && info.IsDir() {
			target = filepath.Join(c.out, file.Filename)
		}
	}
	if err := os.WriteFile(target, file.Body, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("wrote %s (%d bytes)\n", target, len(file.Body))
	return subcommands.ExitSuccess
}
