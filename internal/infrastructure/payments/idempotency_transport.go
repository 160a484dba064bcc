package payments

import (
	"context"
	"net/http"
)

const idempotencyHeader = "X-Idempotency-Key"

type idempotencyKeyCtx struct{}

// WithIdempotencyKey attaches the key sent with the next gateway write.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

func idempotencyKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(idempotencyKeyCtx{}).(string)
	return key
}

// idempotencyTransport replaces the random key the SDK generates with the one
// carried by the request context, so retried submissions collapse upstream.
type idempotencyTransport struct {
	base http.RoundTripper
}

func (t idempotencyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	key := idempotencyKeyFrom(req.Context())
	if key == "" {
		return base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set(idempotencyHeader, key)
	return base.RoundTrip(clone)
}
