package requestid

import (
	"context"

	"github.com/google/uuid"
)

const Header = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = iota

func WithCtx(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func FromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// OrNew returns the given id, or a fresh random one when it is empty.
func OrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
