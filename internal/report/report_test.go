package report

import (
	"bytes"
	"strings"
	"testing"
	"time"
	"unicode/utf16"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/internal/summary"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var generatedAt = time.Date(2026, 5, 4, 10, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleInput() Input {
	clients := []*model.Client{
		{ID: uuid.New(), Name: "Zeta", TotalAmount: dec("100"), PaidAmount: dec("40"), SubscriptionType: model.SubscriptionMonthly},
		{ID: uuid.New(), Name: "Alpha", TotalAmount: dec("200"), PaidAmount: dec("200"), SubscriptionType: model.SubscriptionOneTime},
	}
	adjustments := []*model.BalanceAdjustment{
		{ID: uuid.New(), Amount: dec("50"), Reason: "grant", CreatedAt: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), Amount: dec("-20"), Reason: "fees", CreatedAt: time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)},
	}
	txns := []*model.PaymentTransaction{
		{ID: uuid.New(), ClientName: "Zeta", Amount: dec("40"), PaymentDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), ClientName: "Alpha", Amount: dec("200"), PaymentDate: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
	}
	return Input{
		Metrics:      summary.Compute(clients, adjustments),
		Clients:      clients,
		Adjustments:  adjustments,
		Transactions: txns,
		GeneratedAt:  generatedAt,
		UserEmail:    "owner@example.com",
	}
}

func TestBuild(t *testing.T) {
	doc := Build(sampleInput())

	assert.Equal(t, Title, doc.Title)
	assert.Equal(t, "May 4, 2026", doc.GeneratedOn)
	assert.Equal(t, "owner@example.com", doc.User)
	require.Len(t, doc.Pages, 2)
	require.Len(t, doc.Pages[0].Sections, 3)
	require.Len(t, doc.Pages[1].Sections, 1)

	t.Run("summary rows in fixed order", func(t *testing.T) {
		rows := doc.Pages[0].Sections[0].Table.Rows
		assert.Equal(t, [][]string{
			{"Total Revenue", "300.00 MAD"},
			{"Total Paid", "240.00 MAD"},
			{"Remaining Amount", "60.00 MAD"},
			{"Company Balance", "270.00 MAD"},
			{"Number of Clients", "2"},
		}, rows)
	})

	t.Run("adjustments keep sign and input order", func(t *testing.T) {
		s := doc.Pages[0].Sections[1]
		assert.Equal(t, "Company Balance Adjustments", s.Heading)
		assert.Equal(t, []string{"1", "grant", "50.00 MAD", "Feb 3, 2026"}, s.Table.Rows[0])
		assert.Equal(t, []string{"2", "fees", "-20.00 MAD", "Feb 4, 2026"}, s.Table.Rows[1])
	})

	t.Run("clients are not re-sorted", func(t *testing.T) {
		s := doc.Pages[0].Sections[2]
		assert.Equal(t, "Client List", s.Heading)
		assert.Equal(t, []string{"1", "Zeta", "Monthly", "100.00 MAD", "40.00 MAD"}, s.Table.Rows[0])
		assert.Equal(t, []string{"2", "Alpha", "One-Time", "200.00 MAD", "200.00 MAD"}, s.Table.Rows[1])
	})

	t.Run("transaction log on its own page with footer", func(t *testing.T) {
		s := doc.Pages[1].Sections[0]
		assert.Equal(t, "Payment Transaction Log", s.Heading)
		assert.Equal(t, []string{"1", "Zeta", "40.00 MAD", "Mar 1, 2026"}, s.Table.Rows[0])
		assert.Equal(t, []string{"Total Transactions: 2", "Total Amount: 240.00 MAD"}, s.Footer)
	})

	t.Run("same input same document", func(t *testing.T) {
		assert.Equal(t, doc, Build(sampleInput()))
	})
}

func TestBuild_Empty(t *testing.T) {
	doc := Build(Input{GeneratedAt: generatedAt})

	assert.Equal(t, FallbackUser, doc.User)
	assert.Equal(t, "No adjustments found", doc.Pages[0].Sections[1].Placeholder)
	assert.Nil(t, doc.Pages[0].Sections[1].Table)
	assert.Equal(t, "No clients found", doc.Pages[0].Sections[2].Placeholder)
	assert.Equal(t, "No payment transactions found", doc.Pages[1].Sections[0].Placeholder)
	assert.Empty(t, doc.Pages[1].Sections[0].Footer)
	assert.Equal(t, "0.00 MAD", doc.Pages[0].Sections[0].Table.Rows[0][1])
}

func TestBuild_ZeroTotalClient(t *testing.T) {
	in := Input{
		Clients:     []*model.Client{{Name: "Free", TotalAmount: decimal.Zero, PaidAmount: decimal.Zero}},
		GeneratedAt: generatedAt,
	}
	in.Metrics = summary.Compute(in.Clients, nil)

	var buf bytes.Buffer
	require.NoError(t, Renderer{}.Render(&buf, FormatMarkdown, Build(in)))
	assert.NotContains(t, buf.String(), "NaN")
	assert.Contains(t, buf.String(), "| 1 | Free | One-Time | 0.00 MAD | 0.00 MAD |")
}

func TestRender_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{LogoPath: "/does/not/exist.png"}.Render(&buf, FormatPDF, Build(sampleInput())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF"))
	assert.Contains(t, out, "/Encoding /Identity-H")
	assert.Contains(t, out, pdfText("Money Management Report"))
	assert.Contains(t, out, pdfText("Payment Transaction Log"))
	assert.Contains(t, out, pdfText("270.00 MAD"))
}

func TestRender_PDFUnicodeNames(t *testing.T) {
	in := sampleInput()
	in.Clients[0].Name = "مكتب الرباط"
	in.Transactions[0].ClientName = "Café Zoé"

	var buf bytes.Buffer
	require.NoError(t, Renderer{}.Render(&buf, FormatPDF, Build(in)))

	out := buf.String()
	assert.Contains(t, out, pdfText("مكتب الرباط"))
	assert.Contains(t, out, pdfText("Café Zoé"))
}

// pdfText is s as it appears in an uncompressed content stream drawn with
// a unicode font: UTF-16BE with string delimiters escaped.
func pdfText(s string) string {
	var b strings.Builder
	for _, u := range utf16.Encode([]rune(s)) {
		b.WriteByte(byte(u >> 8))
		b.WriteByte(byte(u))
	}
	return strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`, "\r", `\r`).Replace(b.String())
}

func TestRender_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{}.Render(&buf, FormatXLSX, Build(sampleInput())))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Summary", "Company Balance Adjustments", "Client List", "Payment Transaction Log"}, f.GetSheetList())

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, Title, title)

	balance, err := f.GetCellValue("Summary", "B9")
	require.NoError(t, err)
	assert.Equal(t, "270.00 MAD", balance)

	footer, err := f.GetCellValue("Payment Transaction Log", "A5")
	require.NoError(t, err)
	assert.Equal(t, "Total Transactions: 2", footer)
}

func TestRender_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Renderer{}.Render(&buf, FormatMarkdown, Build(sampleInput())))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "# Money Management Report\n"))
	assert.Contains(t, out, "| Company Balance | 270.00 MAD |")
	assert.Contains(t, out, "## Payment Transaction Log")
	assert.Contains(t, out, "**Total Amount: 240.00 MAD**")
	assert.Less(t, strings.Index(out, "## Client List"), strings.Index(out, "---\n"))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatPDF, "PDF": FormatPDF, "xlsx": FormatXLSX, "markdown": FormatMarkdown} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("docx")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "money-management-report-2026-05-04.pdf", Filename(FormatPDF, generatedAt))
	assert.Equal(t, "money-management-report-2026-05-04.xlsx", Filename(FormatXLSX, generatedAt))
}
