package common

import "context"

// ReqIDKey is the context key holding the id of the request being served.
type ReqIDKey struct{}

// ReqID returns the request id stored in ctx, or an empty string.
func ReqID(ctx context.Context) string {
	id, _ := ctx.Value(ReqIDKey{}).(string)
	return id
}
