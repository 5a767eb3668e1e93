// Package idempotency lets clients retry a create request safely. A request
// carrying an Idempotency-Key header runs once per owner, path and key;
// repeats get the stored response back instead of writing a second client
// or payment transaction.
package idempotency

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/nimasrn/money-management/internal/auth"
	xhttp "github.com/nimasrn/money-management/pkg/http"
	"github.com/nimasrn/money-management/pkg/logger"
	"github.com/nimasrn/money-management/pkg/redis"
)

const HeaderKey = "Idempotency-Key"

// ErrInProgress is returned while another request holds the same key.
var ErrInProgress = errors.New("a request with this idempotency key is in progress")

type Config struct {
	LockTTL            time.Duration
	ProcessedTTL       time.Duration
	LockKeyPrefix      string
	ProcessedKeyPrefix string
	// MaxKeyLength bounds the header so it cannot bloat redis keys.
	MaxKeyLength int
}

func DefaultConfig() Config {
	return Config{
		LockTTL:            30 * time.Second,
		ProcessedTTL:       24 * time.Hour,
		LockKeyPrefix:      "idem:lock:",
		ProcessedKeyPrefix: "idem:done:",
		MaxKeyLength:       128,
	}
}

type Store struct {
	redis  redis.RedisAdapter
	config Config
}

func NewStore(r redis.RedisAdapter, config Config) *Store {
	return &Store{redis: r, config: config}
}

// storedResponse is what a replay sends back.
type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// scope ties a key to the caller and the route so one key cannot replay a
// response recorded for another endpoint.
func scope(owner, path, key string) string {
	return owner + ":" + path + ":" + key
}

func (s *Store) lockKey(scoped string) string {
	return s.config.LockKeyPrefix + scoped
}

func (s *Store) processedKey(scoped string) string {
	return s.config.ProcessedKeyPrefix + scoped
}

// lookup returns the stored response for a finished request, or nil.
func (s *Store) lookup(scoped string) (*storedResponse, error) {
	raw, err := s.redis.Get(s.processedKey(scoped))
	if errors.Is(err, redis.NilError) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var resp storedResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// acquire takes the short-term lock for a scoped key.
func (s *Store) acquire(scoped string) error {
	ok, err := s.redis.SetNX(s.lockKey(scoped), []byte(strconv.FormatInt(time.Now().UnixNano(), 10)), s.config.LockTTL)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInProgress
	}
	return nil
}

func (s *Store) release(scoped string) {
	if err := s.redis.Del(s.lockKey(scoped)); err != nil {
		logger.Warn("[idempotency] failed to release lock", "key", scoped, "error", err)
	}
}

func (s *Store) remember(scoped string, resp storedResponse) {
	raw, err := json.Marshal(resp)
	if err == nil {
		err = s.redis.Set(s.processedKey(scoped), raw, s.config.ProcessedTTL)
	}
	if err != nil {
		logger.Error("[idempotency] failed to store response", "key", scoped, "error", err)
	}
}

func replay(ctx *xhttp.RequestCtx, prev *storedResponse) {
	ctx.Response.Header.Set("Idempotent-Replayed", "true")
	ctx.SetContentType(prev.ContentType)
	ctx.SetStatusCode(prev.Status)
	ctx.SetBody(prev.Body)
}

// Middleware guards POST requests that carry an Idempotency-Key. It must run
// after auth.Authenticator.Require so the key is scoped to the caller and
// the request path.
// Only successful responses are remembered; a failed request may be retried
// with the same key.
func (s *Store) Middleware(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		key := string(ctx.Request.Header.Peek(HeaderKey))
		if key == "" || !ctx.IsPost() {
			next(ctx)
			return
		}
		if len(key) > s.config.MaxKeyLength {
			xhttp.WriteNotification(ctx, xhttp.StatusBadRequest, "Invalid Input", "Idempotency key is too long")
			return
		}
		id, ok := auth.FromContext(ctx)
		if !ok {
			next(ctx)
			return
		}

		scoped := scope(id.UserID, string(ctx.Path()), key)

		prev, err := s.lookup(scoped)
		if err != nil {
			// redis trouble must not block writes
			logger.Warn("[idempotency] lookup failed, running request", "key", key, "error", err)
			next(ctx)
			return
		}
		if prev != nil {
			logger.Debug("[idempotency] replaying stored response", "owner", id.UserID, "key", key)
			replay(ctx, prev)
			return
		}

		if err := s.acquire(scoped); err != nil {
			if errors.Is(err, ErrInProgress) {
				xhttp.WriteNotification(ctx, xhttp.StatusConflict, "Error", "This request is already being processed")
				return
			}
			logger.Warn("[idempotency] lock failed, running request", "key", key, "error", err)
			next(ctx)
			return
		}
		defer s.release(scoped)

		// the first request may have finished between lookup and acquire
		if prev, err := s.lookup(scoped); err == nil && prev != nil {
			logger.Debug("[idempotency] replaying stored response", "owner", id.UserID, "key", key)
			replay(ctx, prev)
			return
		}

		next(ctx)

		status := ctx.Response.StatusCode()
		if status >= 200 && status < 300 {
			s.remember(scoped, storedResponse{
				Status:      status,
				ContentType: string(ctx.Response.Header.ContentType()),
				Body:        append([]byte(nil), ctx.Response.Body()...),
			})
		}
	}
}
