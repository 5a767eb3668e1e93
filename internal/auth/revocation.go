package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/nimasrn/money-management/pkg/redis"
)

const revokedKeyPrefix = "revoked:"

// RevocationStore remembers signed-out tokens until they would have expired
// anyway. Only a hash of the token is stored.
type RevocationStore struct {
	redis redis.RedisAdapter
	now   func() time.Time
}

func NewRevocationStore(r redis.RedisAdapter) *RevocationStore {
	return &RevocationStore{redis: r, now: time.Now}
}

// Revoke is idempotent. Tokens already past expiresAt are not stored.
func (s *RevocationStore) Revoke(token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	_, err := s.redis.SetNX(revokedKey(token), []byte("1"), ttl)
	return err
}

func (s *RevocationStore) IsRevoked(token string) (bool, error) {
	n, err := s.redis.Exist(revokedKey(token))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func revokedKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return revokedKeyPrefix + hex.EncodeToString(sum[:])
}
