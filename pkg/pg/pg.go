package pg

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DB routes reads and writes to separate gorm handles. Both may point at the
// same database.
type DB struct {
	read  *gorm.DB
	write *gorm.DB
}

// New wraps already opened handles.
func New(read, write *gorm.DB) *DB {
	return &DB{read: read, write: write}
}

func dialector(config Config) (gorm.Dialector, error) {
	switch config.Driver {
	case "", DriverPostgres:
		return postgres.Open(config.dsn()), nil
	case DriverSqlite:
		path := config.Path
		if path == "" {
			path = "money-management.db"
		}
		return sqlite.Open(path), nil
	}
	return nil, errors.Errorf("unknown database driver %q", config.Driver)
}

func Create(config Config, withDebug bool) (*gorm.DB, error) {
	d, err := dialector(config)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(d,
		&gorm.Config{
			NamingStrategy: schema.NamingStrategy{
				SingularTable: true,
			},
		})
	if err != nil {
		return nil, err
	}

	if withDebug {
		db = db.Debug()
	}
	return db, nil
}

func CreateReadWrite(readConfig Config, writeConfig Config, withDebug bool) (*DB, error) {
	// a single sqlite file cannot be split into replicas
	if writeConfig.Driver == DriverSqlite {
		db, err := Create(writeConfig, withDebug)
		if err != nil {
			return nil, err
		}
		return &DB{db, db}, nil
	}
	read, err := Create(readConfig, withDebug)
	if err != nil {
		return nil, err
	}
	write, err := Create(writeConfig, withDebug)
	if err != nil {
		return nil, err
	}
	return &DB{read, write}, nil
}

// AutoMigrate creates or updates tables for the given entities on the write
// handle.
func (r *DB) AutoMigrate(entities ...any) error {
	return r.write.AutoMigrate(entities...)
}

func (r *DB) Write(ctx context.Context) *gorm.DB {
	return r.write.WithContext(ctx)
}

func (r *DB) Read(ctx context.Context) *gorm.DB {
	return r.read.WithContext(ctx)
}

// Ping checks both connections.
func (r *DB) Ping(ctx context.Context) error {
	for _, g := range []*gorm.DB{r.read, r.write} {
		sqlDB, err := g.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			return err
		}
	}
	return nil
}
