package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	xhttp "github.com/nimasrn/money-management/pkg/http"
)

type AdjustmentLedger interface {
	UpsertAdjustment(ctx context.Context, ownerID string, p model.AdjustmentRequest, editingID *uuid.UUID) (*model.BalanceAdjustment, error)
	DeleteAdjustment(ctx context.Context, ownerID string, id uuid.UUID) error
	AdjustmentForm(ctx context.Context, ownerID string, id uuid.UUID) (*model.AdjustmentForm, error)
}

type AdjustmentReader interface {
	LoadAdjustments(ctx context.Context, f model.ListFilter) ([]*model.BalanceAdjustment, error)
}

type AdjustmentHandler struct {
	ledger AdjustmentLedger
	reader AdjustmentReader
}

func RegisterAdjustmentRoutes(g *router.Group, h *AdjustmentHandler, guard xhttp.MiddlewareFunc) {
	g.GET("/adjustments", guard(h.ListAdjustments))
	g.POST("/adjustments", guard(h.CreateAdjustment))
	g.GET("/adjustments/{id}/form", guard(h.AdjustmentForm))
	g.PUT("/adjustments/{id}", guard(h.UpdateAdjustment))
	g.DELETE("/adjustments/{id}", guard(h.DeleteAdjustment))
}

func NewAdjustmentHandler(ledger AdjustmentLedger, reader AdjustmentReader) *AdjustmentHandler {
	return &AdjustmentHandler{ledger: ledger, reader: reader}
}

type listAdjustmentsResponse struct {
	Items []*model.BalanceAdjustment `json:"items"`
}

func (h *AdjustmentHandler) ListAdjustments(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	items, err := h.reader.LoadAdjustments(ctx, listFilter(ctx, id.UserID))
	if err != nil {
		writeFailure(ctx, err, "Failed to load adjustments")
		return
	}
	xhttp.WriteJSON(ctx, xhttp.StatusOK, listAdjustmentsResponse{Items: items})
}

func (h *AdjustmentHandler) CreateAdjustment(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	var req model.AdjustmentRequest
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		writeBadJSON(ctx, err)
		return
	}
	a, err := h.ledger.UpsertAdjustment(ctx, id.UserID, req, nil)
	if err != nil {
		writeFailure(ctx, err, "Failed to add adjustment")
		return
	}
	writeSuccess(ctx, xhttp.StatusCreated, "Adjustment added successfully", a)
}

func (h *AdjustmentHandler) UpdateAdjustment(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	adjustmentID, ok := pathID(ctx)
	if !ok {
		return
	}
	var req model.AdjustmentRequest
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		writeBadJSON(ctx, err)
		return
	}
	a, err := h.ledger.UpsertAdjustment(ctx, id.UserID, req, &adjustmentID)
	if err != nil {
		writeFailure(ctx, err, "Failed to update adjustment")
		return
	}
	writeSuccess(ctx, xhttp.StatusOK, "Adjustment updated successfully", a)
}

func (h *AdjustmentHandler) DeleteAdjustment(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	adjustmentID, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := h.ledger.DeleteAdjustment(ctx, id.UserID, adjustmentID); err != nil {
		writeFailure(ctx, err, "Failed to delete adjustment")
		return
	}
	writeSuccess(ctx, xhttp.StatusOK, "Adjustment deleted successfully", nil)
}

// AdjustmentForm returns the stored adjustment as magnitude plus direction,
// ready to pre-fill an edit form.
func (h *AdjustmentHandler) AdjustmentForm(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	adjustmentID, ok := pathID(ctx)
	if !ok {
		return
	}
	form, err := h.ledger.AdjustmentForm(ctx, id.UserID, adjustmentID)
	if err != nil {
		writeFailure(ctx, err, "Failed to load adjustment")
		return
	}
	xhttp.WriteJSON(ctx, xhttp.StatusOK, form)
}
