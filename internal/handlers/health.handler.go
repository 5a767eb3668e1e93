package handlers

import (
	"context"

	"github.com/fasthttp/router"
	xhttp "github.com/nimasrn/money-management/pkg/http"
)

type HealthService interface {
	Check(ctx context.Context) (map[string]string, error)
}

type HealthHandler struct {
	svc HealthService
}

func RegisterHealthRoutes(e *router.Group, h *HealthHandler) {
	e.GET("/health", h.GetHealth)
}

func NewHealthHandler(svc HealthService) *HealthHandler {
	return &HealthHandler{
		svc: svc,
	}
}

type healthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

func (h *HealthHandler) GetHealth(ctx *xhttp.RequestCtx) {
	deps, err := h.svc.Check(ctx)
	if err != nil {
		xhttp.WriteJSON(ctx, xhttp.StatusServiceUnavailable, healthResponse{Status: "degraded", Dependencies: deps})
		return
	}
	xhttp.WriteJSON(ctx, xhttp.StatusOK, healthResponse{Status: "success", Dependencies: deps})
}
