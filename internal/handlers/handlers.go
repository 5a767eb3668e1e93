package handlers

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/nimasrn/money-management/internal/auth"
	"github.com/nimasrn/money-management/internal/model"
	"github.com/nimasrn/money-management/internal/services"
	xhttp "github.com/nimasrn/money-management/pkg/http"
	"github.com/nimasrn/money-management/pkg/logger"
)

const (
	CategorySuccess       = "Success"
	CategoryError         = "Error"
	CategoryInvalidAmount = "Invalid Amount"
	CategoryInvalidInput  = "Invalid Input"
	CategoryUnauthorized  = "Unauthorized"
	CategoryNotFound      = "Not Found"
)

// mutationResponse pairs the written data with the toast to show for it.
type mutationResponse struct {
	Notification xhttp.Notification `json:"notification"`
	Data         any                `json:"data,omitempty"`
}

func writeSuccess(ctx *xhttp.RequestCtx, status int, message string, data any) {
	xhttp.WriteJSON(ctx, status, mutationResponse{
		Notification: xhttp.Notification{Category: CategorySuccess, Message: message},
		Data:         data,
	})
}

// writeFailure turns a service error into a notification. Validation errors
// carry their own message; anything else is reported as failMsg.
func writeFailure(ctx *xhttp.RequestCtx, err error, failMsg string) {
	var verr *model.ValidationError
	switch {
	case errors.As(err, &verr):
		xhttp.WriteNotification(ctx, xhttp.StatusBadRequest, validationCategory(verr.Err), sentence(verr.Err.Error()))
	case errors.Is(err, services.ErrNotFound):
		xhttp.WriteNotification(ctx, xhttp.StatusNotFound, CategoryNotFound, failMsg)
	case errors.Is(err, services.ErrInvalidOrder):
		xhttp.WriteNotification(ctx, xhttp.StatusBadRequest, CategoryInvalidInput, "Unknown sort column")
	default:
		logger.Error("[handlers] request failed", "path", string(ctx.Path()), "error", err)
		xhttp.WriteNotification(ctx, xhttp.StatusInternalServerError, CategoryError, failMsg)
	}
}

func validationCategory(err error) string {
	switch err {
	case model.ErrInvalidTotalAmount, model.ErrInvalidPaidAmount,
		model.ErrPaidExceedsTotal, model.ErrInvalidAdjustmentAmount:
		return CategoryInvalidAmount
	}
	return CategoryInvalidInput
}

func sentence(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeBadJSON(ctx *xhttp.RequestCtx, err error) {
	xhttp.WriteNotification(ctx, xhttp.StatusBadRequest, CategoryInvalidInput, "Invalid request body: "+err.Error())
}

// identity is set by auth.Authenticator.Require on every routed request.
func identity(ctx *xhttp.RequestCtx) (auth.Identity, bool) {
	id, ok := auth.FromContext(ctx)
	if !ok || id.UserID == "" {
		xhttp.WriteNotification(ctx, xhttp.StatusUnauthorized, CategoryUnauthorized, "Please sign in")
		return auth.Identity{}, false
	}
	return id, true
}

func pathID(ctx *xhttp.RequestCtx) (uuid.UUID, bool) {
	raw, _ := ctx.UserValue("id").(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		xhttp.WriteNotification(ctx, xhttp.StatusBadRequest, CategoryInvalidInput, "Invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func query(ctx *xhttp.RequestCtx, key string) string {
	return string(ctx.QueryArgs().Peek(key))
}

// listFilter reads ?order_by=column&order=asc|desc.
func listFilter(ctx *xhttp.RequestCtx, ownerID string) model.ListFilter {
	return model.ListFilter{
		OwnerID:   ownerID,
		OrderBy:   query(ctx, "order_by"),
		Ascending: strings.EqualFold(query(ctx, "order"), "asc"),
	}
}
