package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nimasrn/money-management/pkg/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	err := Load("")
	assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	require.NoError(t, Load(""))

	c := Get()
	assert.Equal(t, "/api/v1", c.HttpBaseRequestUrl)
	assert.Equal(t, "money-identity", c.AuthJwtIssuer)
	assert.Equal(t, pg.DriverPostgres, c.DbDriver)
	assert.Equal(t, "money:", c.RedisUniversalKeyPrefix)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AUTH_JWT_SECRET=from-file\nDB_DRIVER=sqlite\nSQLITE_PATH=/tmp/ledger.db\n"), 0o600))
	// godotenv does not override variables that are already set
	t.Setenv("AUTH_JWT_SECRET", "")
	os.Unsetenv("AUTH_JWT_SECRET")
	t.Setenv("DB_DRIVER", "")
	os.Unsetenv("DB_DRIVER")
	t.Setenv("SQLITE_PATH", "")
	os.Unsetenv("SQLITE_PATH")

	require.NoError(t, Load(path))
	c := Get()
	assert.Equal(t, "from-file", c.AuthJwtSecret)

	db := c.WriteDB()
	assert.Equal(t, pg.DriverSqlite, db.Driver)
	assert.Equal(t, "/tmp/ledger.db", db.Path)
	assert.Equal(t, c.ReadDB().Path, db.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.ErrorContains(t, err, "failed to load configuration file")
}
