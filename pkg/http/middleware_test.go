package xhttp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"
)

func TestCORSMiddleware(t *testing.T) {
	called := false
	h := CORSMiddleware("https://app.example.com")(func(ctx *RequestCtx) {
		called = true
		ctx.SetStatusCode(StatusOK)
	})

	t.Run("preflight short circuits", func(t *testing.T) {
		called = false
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod(fasthttp.MethodOptions)
		h(ctx)
		assert.False(t, called)
		assert.Equal(t, StatusNoContent, ctx.Response.StatusCode())
		assert.Equal(t, "https://app.example.com", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
	})

	t.Run("regular request passes through", func(t *testing.T) {
		called = false
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod(fasthttp.MethodGet)
		h(ctx)
		assert.True(t, called)
		assert.Equal(t, StatusOK, ctx.Response.StatusCode())
		assert.NotEmpty(t, ctx.Response.Header.Peek("Access-Control-Allow-Methods"))
	})
}

func TestRecoverMiddleware(t *testing.T) {
	h := RecoverMiddleware(func(ctx *RequestCtx) { panic("boom") })
	ctx := &fasthttp.RequestCtx{}
	assert.NotPanics(t, func() { h(ctx) })
	assert.Equal(t, StatusInternalServerError, ctx.Response.StatusCode())
}

func TestWriteNotification(t *testing.T) {
	ctx := &fasthttp.RequestCtx{}
	WriteNotification(ctx, StatusBadRequest, "Invalid Amount", "Paid amount cannot exceed total amount")
	assert.Equal(t, StatusBadRequest, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"category":"Invalid Amount","message":"Paid amount cannot exceed total amount"}`, string(ctx.Response.Body()))
}

func TestEngine_HandlerOrder(t *testing.T) {
	e := NewServer(DefaultServerOption)
	e.Router = CreateDefaultRouter()

	var order []string
	mark := func(name string) MiddlewareFunc {
		return func(next RequestHandler) RequestHandler {
			return func(ctx *RequestCtx) {
				order = append(order, name)
				next(ctx)
			}
		}
	}
	e.Use(mark("outer"))
	e.Use(mark("inner"))
	e.Router.GET("/ping", func(ctx *RequestCtx) {
		order = append(order, "handler")
		WriteJSON(ctx, StatusOK, map[string]string{"pong": "ok"})
	})

	h := e.Handler()

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodGet)
	ctx.Request.SetRequestURI("/ping")
	h(ctx)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
	assert.Equal(t, StatusOK, ctx.Response.StatusCode())
}

func TestDefaultRouter_Fallbacks(t *testing.T) {
	r := CreateDefaultRouter()
	r.GET("/clients", func(ctx *RequestCtx) { ctx.SetStatusCode(StatusOK) })
	r.GET("/boom", func(ctx *RequestCtx) { panic("boom") })

	t.Run("unknown path", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod(fasthttp.MethodGet)
		ctx.Request.SetRequestURI("/nope")
		r.Handler(ctx)
		assert.Equal(t, StatusNotFound, ctx.Response.StatusCode())
		assert.Contains(t, string(ctx.Response.Body()), `"category":"Not Found"`)
	})

	t.Run("wrong method", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod(fasthttp.MethodPatch)
		ctx.Request.SetRequestURI("/clients")
		r.Handler(ctx)
		assert.Equal(t, StatusMethodNotAllowed, ctx.Response.StatusCode())
	})

	t.Run("handler panic", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.Request.Header.SetMethod(fasthttp.MethodGet)
		ctx.Request.SetRequestURI("/boom")
		r.Handler(ctx)
		assert.Equal(t, StatusInternalServerError, ctx.Response.StatusCode())
	})
}
