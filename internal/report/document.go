// Package report turns a dashboard snapshot into a fixed-layout document and
// writes it as PDF, XLSX or markdown.
//
// Build is deterministic: the same input always yields the same Document.
// Rows keep the order of the input slices; callers sort before building.
package report

import (
	"strconv"
	"time"

	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/internal/summary"
)

const (
	Title = "Money Management Report"

	// FallbackUser labels the header when the identity has no email.
	FallbackUser = "CO-FOUNDERS"

	headerDateLayout = "January 2, 2006"
	rowDateLayout    = "Jan 2, 2006"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Column struct {
	Header string
	// Width is in millimetres on an A4 page.
	Width float64
	Align Align
	Bold  bool
}

type Table struct {
	Columns []Column
	Rows    [][]string
}

// Section is a heading followed by either a table or a placeholder line,
// plus optional footer lines.
type Section struct {
	Heading     string
	Table       *Table
	Placeholder string
	Footer      []string
}

type Page struct {
	Sections []Section
}

type Document struct {
	Title       string
	GeneratedAt time.Time
	GeneratedOn string
	User        string
	Pages       []Page
}

// Input is the snapshot a report is built from.
type Input struct {
	Metrics      summary.Metrics
	Clients      []*model.Client
	Adjustments  []*model.BalanceAdjustment
	Transactions []*model.PaymentTransaction
	GeneratedAt  time.Time
	UserEmail    string
	// Location is used for every rendered date. Defaults to UTC.
	Location *time.Location
}

func Build(in Input) *Document {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	user := in.UserEmail
	if user == "" {
		user = FallbackUser
	}

	generated := in.GeneratedAt.In(loc)
	return &Document{
		Title:       Title,
		GeneratedAt: generated,
		GeneratedOn: generated.Format(headerDateLayout),
		User:        user,
		Pages: []Page{
			{Sections: []Section{
				summarySection(in.Metrics),
				adjustmentsSection(in.Adjustments, loc),
				clientsSection(in.Clients),
			}},
			{Sections: []Section{
				transactionsSection(in.Transactions, loc),
			}},
		},
	}
}

func summarySection(m summary.Metrics) Section {
	return Section{
		Table: &Table{
			Columns: []Column{
				{Header: "Metric", Width: 100, Bold: true},
				{Header: "Value", Width: 80, Align: AlignRight},
			},
			Rows: [][]string{
				{"Total Revenue", model.FormatMoney(m.TotalRevenue)},
				{"Total Paid", model.FormatMoney(m.TotalPaid)},
				{"Remaining Amount", model.FormatMoney(m.TotalRemaining)},
				{"Company Balance", model.FormatMoney(m.CompanyBalance)},
				{"Number of Clients", strconv.Itoa(m.ClientCount)},
			},
		},
	}
}

func adjustmentsSection(adjustments []*model.BalanceAdjustment, loc *time.Location) Section {
	s := Section{Heading: "Company Balance Adjustments"}
	if len(adjustments) == 0 {
		s.Placeholder = "No adjustments found"
		return s
	}
	t := &Table{Columns: []Column{
		{Header: "#", Width: 10, Align: AlignCenter},
		{Header: "Reason", Width: 70},
		{Header: "Amount", Width: 40, Align: AlignRight},
		{Header: "Date", Width: 50, Align: AlignCenter},
	}}
	for i, a := range adjustments {
		reason := a.Reason
		if reason == "" {
			reason = "N/A"
		}
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			reason,
			model.FormatMoney(a.Amount),
			a.CreatedAt.In(loc).Format(rowDateLayout),
		})
	}
	s.Table = t
	return s
}

func clientsSection(clients []*model.Client) Section {
	s := Section{Heading: "Client List"}
	if len(clients) == 0 {
		s.Placeholder = "No clients found"
		return s
	}
	t := &Table{Columns: []Column{
		{Header: "#", Width: 10, Align: AlignCenter},
		{Header: "Client Name", Width: 60},
		{Header: "Type", Width: 30, Align: AlignCenter},
		{Header: "Total Amount", Width: 40, Align: AlignRight},
		{Header: "Paid Amount", Width: 40, Align: AlignRight},
	}}
	for i, c := range clients {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			c.Name,
			c.SubscriptionType.Label(),
			model.FormatMoney(c.TotalAmount),
			model.FormatMoney(c.PaidAmount),
		})
	}
	s.Table = t
	return s
}

func transactionsSection(txns []*model.PaymentTransaction, loc *time.Location) Section {
	s := Section{Heading: "Payment Transaction Log"}
	if len(txns) == 0 {
		s.Placeholder = "No payment transactions found"
		return s
	}
	t := &Table{Columns: []Column{
		{Header: "#", Width: 10, Align: AlignCenter},
		{Header: "Client Name", Width: 80},
		{Header: "Amount Paid", Width: 50, Align: AlignRight},
		{Header: "Payment Date", Width: 50, Align: AlignCenter},
	}}
	for i, tx := range txns {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			tx.ClientName,
			model.FormatMoney(tx.Amount),
			tx.PaymentDate.In(loc).Format(rowDateLayout),
		})
	}
	s.Table = t

	totals := summary.TransactionTotals(txns)
	s.Footer = []string{
		"Total Transactions: " + strconv.Itoa(totals.Count),
		"Total Amount: " + model.FormatMoney(totals.Total),
	}
	return s
}
