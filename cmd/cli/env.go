package main

import (
	"flag"
	"os"

	"github.com/nimasrn/money-management/internal/config"
	"github.com/nimasrn/money-management/internal/report"
	"github.com/nimasrn/money-management/internal/repository"
	"github.com/nimasrn/money-management/internal/services"
	"github.com/nimasrn/money-management/pkg/pg"
	"github.com/pkg/errors"
)

// envFlag is shared by every command that reads configuration.
type envFlag struct {
	path string
}

func (e *envFlag) register(f *flag.FlagSet) {
	f.StringVar(&e.path, "env", "", "path to a .env file (defaults to ./.env when present)")
}

func (e *envFlag) load() (*config.Config, error) {
	path := e.path
	if path == "" {
		if _, err := os.Stat(".env"); err == nil {
			path = ".env"
		}
	}
	if err := config.Load(path); err != nil {
		return nil, err
	}
	return config.Get(), nil
}

// openDashboard wires the read side of the ledger against the configured
// database.
func openDashboard(cfg *config.Config) (*services.DashboardService, error) {
	db, err := pg.CreateReadWrite(cfg.ReadDB(), cfg.WriteDB(), false)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}
	if cfg.DbDriver == pg.DriverSqlite {
		if err := db.AutoMigrate(repository.Entities()...); err != nil {
			return nil, errors.Wrap(err, "migrate sqlite")
		}
	}
	return services.NewDashboardService(
		repository.NewClientRepository(db),
		repository.NewBalanceAdjustmentRepository(db),
		repository.NewPaymentTransactionRepository(db),
		report.Renderer{LogoPath: cfg.ReportLogoPath},
	), nil
}
