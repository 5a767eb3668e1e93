// Package summary derives the dashboard figures from a snapshot of clients,
// balance adjustments and payment transactions. Every function is a pure
// recomputation over its inputs; nothing is cached between calls.
package summary

import (
	"github.com/nimasrn/money-management/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Metrics are the top-level dashboard figures.
type Metrics struct {
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalPaid        decimal.Decimal `json:"total_paid"`
	TotalRemaining   decimal.Decimal `json:"total_remaining"`
	TotalAdjustments decimal.Decimal `json:"total_adjustments"`
	CompanyBalance   decimal.Decimal `json:"company_balance"`
	ClientCount      int             `json:"client_count"`
}

// Compute sums the snapshot. Adjustments are signed, so a decrease lowers
// the company balance.
func Compute(clients []*model.Client, adjustments []*model.BalanceAdjustment) Metrics {
	m := Metrics{
		TotalRevenue:     decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalAdjustments: decimal.Zero,
		ClientCount:      len(clients),
	}
	for _, c := range clients {
		m.TotalRevenue = m.TotalRevenue.Add(c.TotalAmount)
		m.TotalPaid = m.TotalPaid.Add(c.PaidAmount)
	}
	for _, a := range adjustments {
		m.TotalAdjustments = m.TotalAdjustments.Add(a.Amount)
	}
	m.TotalRemaining = m.TotalRevenue.Sub(m.TotalPaid)
	m.CompanyBalance = m.TotalPaid.Add(m.TotalAdjustments)
	return m
}

// Progress is the per-client payment progress shown on a client card.
type Progress struct {
	ClientID  string          `json:"client_id"`
	Remaining decimal.Decimal `json:"remaining"`
	// PercentPaid is paid/total*100, rounded to two places. It can exceed
	// 100 only if stored data broke the paid <= total rule.
	PercentPaid decimal.Decimal `json:"percent_paid"`
	// BarWidth is PercentPaid clamped to [0, 100].
	BarWidth decimal.Decimal `json:"bar_width"`
	// Indeterminate is set when the total is zero and no ratio exists.
	// PercentPaid and BarWidth are zero in that case.
	Indeterminate bool `json:"indeterminate"`
}

func ClientProgress(c *model.Client) Progress {
	p := Progress{
		ClientID:    c.ID.String(),
		Remaining:   c.Remaining(),
		PercentPaid: decimal.Zero,
		BarWidth:    decimal.Zero,
	}
	if !c.TotalAmount.IsPositive() {
		p.Indeterminate = true
		return p
	}
	p.PercentPaid = c.PaidAmount.Div(c.TotalAmount).Mul(hundred).Round(2)
	p.BarWidth = decimal.Min(decimal.Max(p.PercentPaid, decimal.Zero), hundred)
	return p
}

// Progresses keeps the input order.
func Progresses(clients []*model.Client) []Progress {
	out := make([]Progress, len(clients))
	for i, c := range clients {
		out[i] = ClientProgress(c)
	}
	return out
}

// LogTotals is the footer of the payment transaction log.
type LogTotals struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

func TransactionTotals(txns []*model.PaymentTransaction) LogTotals {
	t := LogTotals{Count: len(txns), Total: decimal.Zero}
	for _, tx := range txns {
		t.Total = t.Total.Add(tx.Amount)
	}
	return t
}
