package xhttp

import (
	"encoding/json"
)

// Notification is the body of every error response: a short category and
// a message meant to be shown as a transient toast.
type Notification struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

func ReadJSON(ctx *RequestCtx, dst any) error {
	return json.Unmarshal(ctx.PostBody(), dst)
}

func WriteJSON(ctx *RequestCtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

func WriteNotification(ctx *RequestCtx, status int, category, message string) {
	WriteJSON(ctx, status, Notification{Category: category, Message: message})
}
