package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/auth"
	"github.com/nimasrn/money-management/pkg/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TokenRequest signs a user in. UserID is derived from Email when empty so
// the same email always maps to the same ledger owner.
type TokenRequest struct {
	Email  string `json:"email" binding:"required"`
	UserID string `json:"user_id"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

type revoker interface {
	Revoke(token string, expiresAt time.Time) error
}

// Provider is a development stand-in for the hosted identity service.
type Provider struct {
	secret   string
	issuer   string
	ttl      time.Duration
	verifier *auth.Verifier
	revoker  revoker
	now      func() time.Time
}

func NewProvider(secret, issuer string, ttl time.Duration, r revoker) *Provider {
	return &Provider{
		secret:   secret,
		issuer:   issuer,
		ttl:      ttl,
		verifier: auth.NewVerifier(secret, issuer),
		revoker:  r,
		now:      time.Now,
	}
}

func userIDFor(email string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+strings.ToLower(email))).String()
}

// IssueToken handles sign-in requests
func (p *Provider) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}

	email := strings.TrimSpace(req.Email)
	userID := strings.TrimSpace(req.UserID)
	if userID == "" {
		userID = userIDFor(email)
	}

	now := p.now()
	token, err := auth.IssueToken(p.secret, p.issuer, userID, email, p.ttl, now)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("Failed to sign token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token"})
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("email", email).
		Dur("ttl", p.ttl).
		Msg("Issued token")

	c.JSON(http.StatusOK, TokenResponse{
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: now.Add(p.ttl),
	})
}

// SignOut revokes the bearer token until it would have expired
func (p *Provider) SignOut(c *gin.Context) {
	token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token is required"})
		return
	}

	claims, err := p.verifier.Verify(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	if p.revoker == nil {
		log.Warn().Str("user_id", claims.Subject).Msg("No revocation store, token stays valid until expiry")
		c.Status(http.StatusNoContent)
		return
	}
	if err := p.revoker.Revoke(token, claims.ExpiresAt.Time); err != nil {
		log.Error().Err(err).Str("user_id", claims.Subject).Msg("Failed to revoke token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign out"})
		return
	}

	log.Info().Str("user_id", claims.Subject).Msg("Signed out")
	c.Status(http.StatusNoContent)
}

func (p *Provider) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": p.now(),
	})
}

// SetupRouter configures all routes
func SetupRouter(p *Provider) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request processed")
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/token", p.IssueToken)
		v1.POST("/signout", p.SignOut)
	}
	router.GET("/health", p.HealthCheck)

	return router
}

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	port := getEnv("IDENTITY_PORT", "8082")
	secret := getEnv("AUTH_JWT_SECRET", "")
	issuer := getEnv("AUTH_JWT_ISSUER", "money-identity")
	ttl := getEnvDuration("AUTH_JWT_TOKEN_TTL", 24*time.Hour)
	redisAddr := getEnv("REDIS_ADDR", "")

	if secret == "" {
		log.Fatal().Msg("AUTH_JWT_SECRET must be set")
	}

	var r revoker
	if redisAddr != "" {
		adapter, err := redis.NewRedisAdapter("identity", getEnv("REDIS_UNIVERSAL_KEY_PREFIX", "money:"), &redis.Options{
			Addrs:      []string{redisAddr},
			ClientName: "identity",
		})
		if err != nil {
			log.Fatal().Err(err).Str("addr", redisAddr).Msg("Failed to connect to redis")
		}
		r = auth.NewRevocationStore(adapter)
	}

	log.Info().
		Str("port", port).
		Str("issuer", issuer).
		Dur("ttl", ttl).
		Bool("revocation", r != nil).
		Msg("Starting mock identity provider")

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      SetupRouter(NewProvider(secret, issuer, ttl, r)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("Server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
