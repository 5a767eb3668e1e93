package fixtures

import (
	"github.com/nimasrn/money-management/internal/model"
)

const (
	OwnerAlice = "alice-0001"
	OwnerBob   = "bob-0002"

	AliceEmail = "alice@example.com"
	BobEmail   = "bob@example.com"
)

var (
	// OneTimeClient owes 300 and has paid 100 when created.
	OneTimeClient = model.ClientRequest{
		Name:             "Atlas Studio",
		TotalAmount:      "300",
		PaidAmount:       "100",
		SubscriptionType: model.SubscriptionOneTime,
	}

	MonthlyClient = model.ClientRequest{
		Name:             "Cedar Cafe",
		TotalAmount:      "1200",
		PaidAmount:       "0",
		SubscriptionType: model.SubscriptionMonthly,
		StartDate:        "2026-01-01",
		NextPaymentDate:  "2026-02-01",
	}

	OverpaidClient = model.ClientRequest{
		Name:        "Too Generous",
		TotalAmount: "100",
		PaidAmount:  "150",
	}

	HostingCost = model.AdjustmentRequest{
		Amount:    "30",
		Direction: model.DirectionDecrease,
		Reason:    "Hosting",
	}

	Grant = model.AdjustmentRequest{
		Amount:    "500",
		Direction: model.DirectionIncrease,
		Reason:    "Startup grant",
	}
)

// WithPaid returns a copy of r with a new paid amount.
func WithPaid(r model.ClientRequest, paid string) model.ClientRequest {
	r.PaidAmount = model.AmountText(paid)
	return r
}
