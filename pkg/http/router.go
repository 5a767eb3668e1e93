package xhttp

import (
	"github.com/fasthttp/router"
	"github.com/nimasrn/money-management/pkg/logger"
)

type Router = router.Router

// CreateDefaultRouter returns a router whose fallback answers are JSON
// notifications like every other API response.
func CreateDefaultRouter() *Router {
	r := NewRouter()
	r.RedirectTrailingSlash = true
	r.SaveMatchedRoutePath = true
	r.HandleMethodNotAllowed = true
	r.HandleOPTIONS = false
	r.NotFound = NotFoundHandler
	r.MethodNotAllowed = MethodNotAllowedHandler
	r.PanicHandler = func(ctx *RequestCtx, v any) {
		logger.Error("[xhttp] handler panic", "path", string(ctx.Path()), "error", v)
		WriteNotification(ctx, StatusInternalServerError, "Error", "Something went wrong")
	}
	return r
}

func NewRouter() *Router {
	return router.New()
}

func NotFoundHandler(ctx *RequestCtx) {
	WriteNotification(ctx, StatusNotFound, "Not Found", "No such endpoint: "+string(ctx.Path()))
}

func MethodNotAllowedHandler(ctx *RequestCtx) {
	WriteNotification(ctx, StatusMethodNotAllowed, "Error", StatusText(StatusMethodNotAllowed))
}
