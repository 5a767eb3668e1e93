package auth

import (
	"context"
	"errors"
	"strings"

	xhttp "github.com/nimasrn/money-management/pkg/http"
	"github.com/nimasrn/money-management/pkg/logger"
)

type contextKey string

const (
	identityKey contextKey = "auth.identity"
	tokenKey    contextKey = "auth.token"
	claimsKey   contextKey = "auth.claims"
)

type Revocations interface {
	IsRevoked(token string) (bool, error)
}

type Authenticator struct {
	verifier    *Verifier
	revocations Revocations
}

// NewAuthenticator builds the request guard. revocations may be nil, in
// which case sign-out does not invalidate tokens.
func NewAuthenticator(v *Verifier, revocations Revocations) *Authenticator {
	return &Authenticator{verifier: v, revocations: revocations}
}

// Require rejects the request with 401 unless it carries a valid, not
// revoked token, and stores the identity on the request otherwise.
func (a *Authenticator) Require(next xhttp.RequestHandler) xhttp.RequestHandler {
	return func(ctx *xhttp.RequestCtx) {
		claims, token, err := a.authenticate(ctx)
		if err != nil {
			msg := "Please sign in again"
			if errors.Is(err, ErrMissingToken) {
				msg = "Please sign in"
			}
			xhttp.WriteNotification(ctx, xhttp.StatusUnauthorized, "Unauthorized", msg)
			return
		}
		ctx.SetUserValue(identityKey, claims.Identity())
		ctx.SetUserValue(tokenKey, token)
		ctx.SetUserValue(claimsKey, claims)
		next(ctx)
	}
}

func (a *Authenticator) authenticate(ctx *xhttp.RequestCtx) (*Claims, string, error) {
	token := bearerToken(ctx)
	if token == "" {
		return nil, "", ErrMissingToken
	}
	claims, err := a.verifier.Verify(token)
	if err != nil {
		return nil, "", err
	}
	if a.revocations != nil {
		revoked, err := a.revocations.IsRevoked(token)
		if err != nil {
			logger.Error("[auth] revocation lookup failed", "error", err)
			return nil, "", err
		}
		if revoked {
			return nil, "", ErrRevoked
		}
	}
	return claims, token, nil
}

// bearerToken reads the Authorization header, falling back to ?token= so
// report downloads can be plain links.
func bearerToken(ctx *xhttp.RequestCtx) string {
	h := string(ctx.Request.Header.Peek("Authorization"))
	if parts := strings.SplitN(h, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return string(ctx.QueryArgs().Peek("token"))
}

// FromContext returns the identity stored by Require. ctx is usually the
// *fasthttp.RequestCtx itself.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}

// TokenFromContext returns the raw token and its claims stored by Require.
func TokenFromContext(ctx context.Context) (string, *Claims, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	if !ok {
		return "", nil, false
	}
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return token, claims, ok
}

// WithIdentity stores id on a plain context, for callers outside HTTP.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}
