package pg

import (
	"github.com/pkg/errors"

	_ "github.com/lib/pq"
	"github.com/nimasrn/money-management/pkg/logger"
	"github.com/pressly/goose/v3"
)

// Migrate applies the goose migrations found in dir. Only postgres is
// migrated this way; sqlite databases are auto-migrated from the entities.
func Migrate(cfg Config, dir string) error {
	if cfg.Driver != "" && cfg.Driver != DriverPostgres {
		return errors.Errorf("goose migrations need the postgres driver, got %q", cfg.Driver)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	db, err := newSqlConnection(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err = goose.Up(db, dir); err != nil {
		return errors.Wrap(err, "goose up")
	}
	logger.Info("migrations applied", "dir", dir)
	return nil
}
