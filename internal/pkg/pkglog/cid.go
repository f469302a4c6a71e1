package pkglog

import "context"

type chainIDContextKey struct{}

// GetCorrelationID returns the correlation ID stored in the context.
//
// The session controller sets this value once a session starts so every log
// line written during that session can be grouped together.
func GetCorrelationID(ctx context.Context) string {
	clm, ok := ctx.Value(chainIDContextKey{}).(string)
	if !ok {
		return "[invalid_chain_id]"
	}
	return clm
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, chainIDContextKey{}, cid)
}
