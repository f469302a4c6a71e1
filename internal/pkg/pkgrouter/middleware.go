package pkgrouter

// Middleware wraps a Handler, typically to add cross-cutting behavior.
type Middleware func(Handler) Handler

// Chain applies middleware in order, returning the final wrapped handler.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
