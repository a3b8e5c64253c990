// Package ctxutil carries request-scoped metadata (acting user, request id,
// client address and audit correlation id) through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const (
	actorIDKey ctxKey = iota
	requestIDKey
	clientIPKey
	correlationIDKey
)

// WithActorID records the user performing the operation.
func WithActorID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, actorIDKey, id)
}

// ActorIDFromCtx returns the acting user. Non-positive ids count as absent.
func ActorIDFromCtx(ctx context.Context) (int64, bool) {
	id, _ := ctx.Value(actorIDKey).(int64)
	if id <= 0 {
		return 0, false
	}
	return id, true
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns "" outside an HTTP request.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithClientIP records the network origin written to audit entries.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

func ClientIPFromCtx(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey).(string)
	return ip
}

// WithCorrelationID groups the audit entries of one logical operation.
func WithCorrelationID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

// CorrelationIDFromCtx treats uuid.Nil as absent.
func CorrelationIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, _ := ctx.Value(correlationIDKey).(uuid.UUID)
	return id, id != uuid.Nil
}
