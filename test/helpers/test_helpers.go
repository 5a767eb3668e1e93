package helpers

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/nimasrn/money-management/internal/auth"
	"github.com/nimasrn/money-management/internal/repository"
	"github.com/nimasrn/money-management/pkg/pg"
	"github.com/nimasrn/money-management/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	TestSecret = "e2e-secret"
	TestIssuer = "money-identity"
)

// SetupTestDB opens a migrated in-memory sqlite database shared by the read
// and write handles.
func SetupTestDB(t *testing.T) *pg.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// a second pooled connection would open a second, empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	pgDB := pg.New(db, db)
	require.NoError(t, pgDB.AutoMigrate(repository.Entities()...))
	return pgDB
}

// SetupTestRedis starts a miniredis and an adapter registered under the
// test's own name, so cached adapters never leak between tests.
func SetupTestRedis(t *testing.T) (*miniredis.Miniredis, redis.RedisAdapter) {
	t.Helper()
	mr := miniredis.RunT(t)

	connName := t.Name()
	adapter, err := redis.NewRedisAdapter(connName, "test:", &goredis.UniversalOptions{
		Addrs: []string{mr.Addr()},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redis.Close(connName) })

	return mr, adapter
}

// IssueTestToken signs a token the way the identity provider does.
func IssueTestToken(t *testing.T, userID, email string) string {
	t.Helper()
	token, err := auth.IssueToken(TestSecret, TestIssuer, userID, email, time.Hour, time.Now())
	require.NoError(t, err)
	return token
}
