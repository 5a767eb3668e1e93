package pg

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingEntity struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func TestCreateReadWrite_Sqlite(t *testing.T) {
	cfg := Config{Driver: DriverSqlite, Path: filepath.Join(t.TempDir(), "ledger.db")}

	db, err := CreateReadWrite(cfg, cfg, false)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, db.Ping(ctx))
	require.NoError(t, db.AutoMigrate(&pingEntity{}))

	require.NoError(t, db.Write(ctx).Create(&pingEntity{Name: "written"}).Error)
	var got pingEntity
	require.NoError(t, db.Read(ctx).First(&got).Error)
	assert.Equal(t, "written", got.Name)
}

func TestCreate_UnknownDriver(t *testing.T) {
	_, err := Create(Config{Driver: "oracle"}, false)
	assert.ErrorContains(t, err, "unknown database driver")
}

func TestMigrate_RequiresPostgres(t *testing.T) {
	err := Migrate(Config{Driver: DriverSqlite}, "./migrations")
	assert.ErrorContains(t, err, "postgres")
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", User: "ledger", Password: "secret", Database: "money", Port: "5432"}
	assert.Equal(t, "host=db user=ledger password=secret dbname=money port=5432 sslmode=disable", cfg.dsn())
}
