package handlers

import (
	"time"

	"github.com/fasthttp/router"
	"github.com/nimasrn/money-management/internal/auth"
	xhttp "github.com/nimasrn/money-management/pkg/http"
	"github.com/nimasrn/money-management/pkg/prom"
)

type TokenRevoker interface {
	Revoke(token string, expiresAt time.Time) error
}

type AuthHandler struct {
	revoker TokenRevoker
}

func RegisterAuthRoutes(g *router.Group, h *AuthHandler, guard xhttp.MiddlewareFunc) {
	g.GET("/auth/me", guard(h.Me))
	g.POST("/auth/signout", guard(h.SignOut))
}

func NewAuthHandler(revoker TokenRevoker) *AuthHandler {
	return &AuthHandler{revoker: revoker}
}

func (h *AuthHandler) Me(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	xhttp.WriteJSON(ctx, xhttp.StatusOK, id)
}

// SignOut revokes the presented token until it expires.
func (h *AuthHandler) SignOut(ctx *xhttp.RequestCtx) {
	token, claims, ok := auth.TokenFromContext(ctx)
	if !ok || claims.ExpiresAt == nil {
		xhttp.WriteNotification(ctx, xhttp.StatusUnauthorized, CategoryUnauthorized, "Please sign in")
		return
	}
	if h.revoker != nil {
		if err := h.revoker.Revoke(token, claims.ExpiresAt.Time); err != nil {
			writeFailure(ctx, err, "Failed to sign out")
			return
		}
		prom.TokenRevoked()
	}
	writeSuccess(ctx, xhttp.StatusOK, "Signed out", nil)
}
