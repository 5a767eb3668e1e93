package handlers

import (
	"context"
	"errors"

	"github.com/fasthttp/router"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/internal/report"
	"github.com/nimasrn/money-management/internal/services"
	xhttp "github.com/nimasrn/money-management/pkg/http"
)

type DashboardService interface {
	Dashboard(ctx context.Context, ownerID string) (*services.Dashboard, error)
	TransactionLog(ctx context.Context, f model.ListFilter) (*services.TransactionLog, error)
	GenerateReport(ctx context.Context, ownerID, email string, format report.Format) (*services.ReportFile, error)
}

type DashboardHandler struct {
	svc DashboardService
}

func RegisterDashboardRoutes(g *router.Group, h *DashboardHandler, guard xhttp.MiddlewareFunc) {
	g.GET("/dashboard", guard(h.GetDashboard))
	g.GET("/transactions", guard(h.ListTransactions))
	g.GET("/report", guard(h.DownloadReport))
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) GetDashboard(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	d, err := h.svc.Dashboard(ctx, id.UserID)
	if err != nil {
		writeFailure(ctx, err, "Failed to load dashboard")
		return
	}
	xhttp.WriteJSON(ctx, xhttp.StatusOK, d)
}

func (h *DashboardHandler) ListTransactions(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	log, err := h.svc.TransactionLog(ctx, listFilter(ctx, id.UserID))
	if err != nil {
		writeFailure(ctx, err, "Failed to load transactions")
		return
	}
	xhttp.WriteJSON(ctx, xhttp.StatusOK, log)
}

// DownloadReport renders the report on demand. ?format= is pdf (default),
// xlsx or md.
func (h *DashboardHandler) DownloadReport(ctx *xhttp.RequestCtx) {
	id, ok := identity(ctx)
	if !ok {
		return
	}
	format, err := report.ParseFormat(query(ctx, "format"))
	if err != nil {
		xhttp.WriteNotification(ctx, xhttp.StatusBadRequest, CategoryInvalidInput, "Unknown report format")
		return
	}
	file, err := h.svc.GenerateReport(ctx, id.UserID, id.Email, format)
	if err != nil {
		if errors.Is(err, services.ErrStore) {
			writeFailure(ctx, err, "Failed to load report data")
			return
		}
		writeFailure(ctx, err, "Failed to generate report")
		return
	}
	ctx.Response.Header.Set("Content-Type", file.ContentType)
	ctx.Response.Header.Set("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	ctx.Response.SetStatusCode(xhttp.StatusOK)
	ctx.Response.SetBodyRaw(file.Body)
}
