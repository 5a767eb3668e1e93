package services

import (
	"bytes"
	"context"
	"time"

	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/internal/report"
	"github.com/nimasrn/money-management/internal/summary"
	"github.com/nimasrn/money-management/pkg/prom"
	"golang.org/x/sync/errgroup"
)

// Snapshot is everything one owner has stored, loaded at a single point in
// request handling. Aggregation and rendering only ever see snapshots.
type Snapshot struct {
	Clients      []*model.Client
	Adjustments  []*model.BalanceAdjustment
	Transactions []*model.PaymentTransaction
}

type Dashboard struct {
	Metrics           summary.Metrics            `json:"metrics"`
	Clients           []*model.Client            `json:"clients"`
	Progress          []summary.Progress         `json:"progress"`
	Adjustments       []*model.BalanceAdjustment `json:"adjustments"`
	TransactionTotals summary.LogTotals          `json:"transaction_totals"`
}

type TransactionLog struct {
	Items  []*model.PaymentTransaction `json:"items"`
	Totals summary.LogTotals           `json:"totals"`
}

// ReportFile is a rendered report ready to be downloaded. It is never
// stored.
type ReportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

type DashboardService struct {
	clients      ClientRepository
	adjustments  BalanceAdjustmentRepository
	transactions PaymentTransactionRepository
	renderer     report.Renderer
	now          func() time.Time
}

func NewDashboardService(clients ClientRepository, adjustments BalanceAdjustmentRepository, transactions PaymentTransactionRepository, renderer report.Renderer) *DashboardService {
	return &DashboardService{
		clients:      clients,
		adjustments:  adjustments,
		transactions: transactions,
		renderer:     renderer,
		now:          time.Now,
	}
}

func (s *DashboardService) WithClock(now func() time.Time) *DashboardService {
	s.now = now
	return s
}

func (s *DashboardService) LoadClients(ctx context.Context, f model.ListFilter) ([]*model.Client, error) {
	clients, err := s.clients.List(ctx, f)
	if err != nil {
		return nil, storeError("load clients", err)
	}
	return clients, nil
}

func (s *DashboardService) LoadAdjustments(ctx context.Context, f model.ListFilter) ([]*model.BalanceAdjustment, error) {
	adjustments, err := s.adjustments.List(ctx, f)
	if err != nil {
		return nil, storeError("load adjustments", err)
	}
	return adjustments, nil
}

func (s *DashboardService) LoadTransactions(ctx context.Context, f model.ListFilter) ([]*model.PaymentTransaction, error) {
	txns, err := s.transactions.List(ctx, f)
	if err != nil {
		return nil, storeError("load transactions", err)
	}
	return txns, nil
}

// LoadSnapshot reads the three collections concurrently, each in its
// default order, and fails if any read fails.
func (s *DashboardService) LoadSnapshot(ctx context.Context, ownerID string) (*Snapshot, error) {
	var snap Snapshot
	f := model.ListFilter{OwnerID: ownerID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snap.Clients, err = s.LoadClients(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		snap.Adjustments, err = s.LoadAdjustments(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		snap.Transactions, err = s.LoadTransactions(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *DashboardService) ComputeMetrics(snap *Snapshot) summary.Metrics {
	return summary.Compute(snap.Clients, snap.Adjustments)
}

func (s *DashboardService) Dashboard(ctx context.Context, ownerID string) (*Dashboard, error) {
	snap, err := s.LoadSnapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Metrics:           s.ComputeMetrics(snap),
		Clients:           snap.Clients,
		Progress:          summary.Progresses(snap.Clients),
		Adjustments:       snap.Adjustments,
		TransactionTotals: summary.TransactionTotals(snap.Transactions),
	}, nil
}

func (s *DashboardService) TransactionLog(ctx context.Context, f model.ListFilter) (*TransactionLog, error) {
	txns, err := s.LoadTransactions(ctx, f)
	if err != nil {
		return nil, err
	}
	return &TransactionLog{Items: txns, Totals: summary.TransactionTotals(txns)}, nil
}

// GenerateReport renders the owner's current snapshot. email labels the
// header and may be empty.
func (s *DashboardService) GenerateReport(ctx context.Context, ownerID, email string, format report.Format) (*ReportFile, error) {
	start := time.Now()

	snap, err := s.LoadSnapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	doc := report.Build(report.Input{
		Metrics:      s.ComputeMetrics(snap),
		Clients:      snap.Clients,
		Adjustments:  snap.Adjustments,
		Transactions: snap.Transactions,
		GeneratedAt:  s.now(),
		UserEmail:    email,
	})

	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, format, doc); err != nil {
		return nil, err
	}
	prom.AddReportDuration(time.Since(start).Seconds(), string(format))

	return &ReportFile{
		// named after the header date so both agree on the day
		Filename:    report.Filename(format, doc.GeneratedAt),
		ContentType: format.ContentType(),
		Body:        buf.Bytes(),
	}, nil
}
