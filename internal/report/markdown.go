package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

var mdEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

// writeMarkdown renders the document as GitHub flavoured markdown. Pages
// are separated by a horizontal rule.
func writeMarkdown(w io.Writer, doc *Document) error {
	b := bufio.NewWriter(w)

	fmt.Fprintf(b, "# %s\n\n", doc.Title)
	fmt.Fprintf(b, "Generated on %s\n\n", doc.GeneratedOn)
	fmt.Fprintf(b, "User: %s\n\n", mdEscaper.Replace(doc.User))

	for i, page := range doc.Pages {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		for _, s := range page.Sections {
			mdSection(b, s)
		}
	}
	return b.Flush()
}

func mdSection(b *bufio.Writer, s Section) {
	if s.Heading != "" {
		fmt.Fprintf(b, "## %s\n\n", s.Heading)
	}
	switch {
	case s.Table != nil:
		mdTable(b, s.Table)
	case s.Placeholder != "":
		fmt.Fprintf(b, "_%s_\n\n", s.Placeholder)
	}
	for _, line := range s.Footer {
		fmt.Fprintf(b, "**%s**\n\n", line)
	}
}

func mdTable(b *bufio.Writer, t *Table) {
	header := make([]string, len(t.Columns))
	rule := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = mdEscaper.Replace(c.Header)
		switch c.Align {
		case AlignRight:
			rule[i] = "---:"
		case AlignCenter:
			rule[i] = ":---:"
		default:
			rule[i] = "---"
		}
	}
	fmt.Fprintf(b, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(b, "| %s |\n", strings.Join(rule, " | "))

	for _, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			if i < len(row) {
				cells[i] = mdEscaper.Replace(row[i])
			}
		}
		fmt.Fprintf(b, "| %s |\n", strings.Join(cells, " | "))
	}
	b.WriteString("\n")
}
