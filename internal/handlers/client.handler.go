package handlers

import (
	"context"

	"github.com/fasthttp/router"
	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/internal/services"
	xhttp "github.com/nimasrn/money-management/pkg/http"
)

type ClientLedger interface {
	CreateClient(ctx context.Context, ownerID string, p model.ClientRequest) (*services.ClientWriteResult, error)
	EditClient(ctx context.Context, ownerID string, id uuid.UUID, p model.ClientRequest) (*services.ClientWriteResult, error)
	DeleteClient(ctx context.Context, ownerID string, id uuid.UUID) error
}

type ClientReader interface {
	LoadClients(ctx context.Context, f model.ListFilter) ([]*model.Client, error)
}

type ClientHandler struct {
	ledger ClientLedger
	reader ClientReader
}

func RegisterClientRoutes(g *router.Group, h *ClientHandler, guard xhttp.MiddlewareFunc) {
	g.GET("/clients", guard(h.ListClients))
	g.POST("/clients", guard(h.CreateClient))
	g.PUT("/clients/{id}", guard(h.EditClient))
	g.DELETE("/clients/{id}", guard(h.DeleteClient))
}

func NewClientHandler(ledger ClientLedger, reader ClientReader) *ClientHandler {
	return &ClientHandler{ledger: ledger, reader: reader}
}

type listClientsResponse struct {
	Items []*model.Client `json:"items"`
}

func (h *ClientHandler) ListClients(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	items, err := h.reader.LoadClients(ctx, listFilter(ctx, id.UserID))
	if err != nil {
		writeFailure(ctx, err, "Failed to load clients")
		return
	}
	xhttp.WriteJSON(ctx, xhttp.StatusOK, listClientsResponse{Items: items})
}

func (h *ClientHandler) CreateClient(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	var req model.ClientRequest
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		writeBadJSON(ctx, err)
		return
	}
	res, err := h.ledger.CreateClient(ctx, id.UserID, req)
	if err != nil {
		writeFailure(ctx, err, "Failed to add client")
		return
	}
	writeSuccess(ctx, xhttp.StatusCreated, "Client added successfully", res)
}

func (h *ClientHandler) EditClient(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	clientID, ok := pathID(ctx)
	if !ok {
		return
	}
	var req model.ClientRequest
	if err := xhttp.ReadJSON(ctx, &req); err != nil {
		writeBadJSON(ctx, err)
		return
	}
	res, err := h.ledger.EditClient(ctx, id.UserID, clientID, req)
	if err != nil {
		writeFailure(ctx, err, "Failed to update client")
		return
	}
	writeSuccess(ctx, xhttp.StatusOK, "Client updated successfully", res)
}

func (h *ClientHandler) DeleteClient(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	clientID, ok := pathID(ctx)
	if !ok {
		return
	}
	if err := h.ledger.DeleteClient(ctx, id.UserID, clientID); err != nil {
		writeFailure(ctx, err, "Failed to delete client")
		return
	}
	writeSuccess(ctx, xhttp.StatusOK, "Client deleted successfully", nil)
}
