package pkgrouter

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (rendered through the encoder) or an error.
type Handler func(ctx context.Context) (any, error)

// Route describes one registered action as the menu presents it.
type Route struct {
	Key   string
	Label string
}

// Reply is the outcome of a dispatch, ready to be shown to the user.
type Reply struct {
	Message string
	Data    any
	Err     error
}

type route struct {
	Route
	h Handler
}

// Router dispatches actions by key through a middleware chain.
type Router struct {
	routes     []route
	index      map[string]int
	errorCodec func(ctx context.Context, err error) string
	encoder    func(ctx context.Context, resp any) string
	mws        []Middleware
}

// NewRouter builds the default action router with standard middleware.
func NewRouter(uid Generator) *Router {
	errorCodec := func(ctx context.Context, err error) string {
		if errors.Is(err, pkgerror.ErrNotFound) {
			return "Please choose one of the listed options."
		}

		var gerr *pkgerror.Error
		if !errors.As(err, &gerr) || gerr.Type() == pkgerror.TypeServer {
			slog.ErrorContext(ctx, "action failed", "error", err)
			return "Internal error"
		}

		return pkgerror.Message(gerr, gerr.Error())
	}

	okCodec := func(_ context.Context, resp any) string {
		if m, ok := resp.(interface {
			Message() string
		}); ok {
			return m.Message()
		}
		return ""
	}

	return &Router{
		index:      make(map[string]int),
		errorCodec: errorCodec,
		encoder:    okCodec,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uid),
			middlewareLogging,
		},
	}
}

// Use appends middleware to the existing middleware stack.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// Handle registers an action. Actions are listed in registration order;
// registering an existing key replaces its handler in place.
func (r *Router) Handle(key, label string, h Handler, mws ...Middleware) {
	wrapped := Chain(h, append(append([]Middleware{}, r.mws...), mws...)...)

	if i, ok := r.index[key]; ok {
		r.routes[i] = route{Route: Route{Key: key, Label: label}, h: wrapped}
		return
	}

	r.index[key] = len(r.routes)
	r.routes = append(r.routes, route{Route: Route{Key: key, Label: label}, h: wrapped})
}

// Routes returns the registered actions in menu order.
func (r *Router) Routes() []Route {
	out := make([]Route, len(r.routes))
	for i, rt := range r.routes {
		out[i] = rt.Route
	}
	return out
}

// Match resolves user input to a route: a 1-based menu number, or the key or
// label compared case-insensitively.
func (r *Router) Match(input string) (Route, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return Route{}, false
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(r.routes) {
			return r.routes[n-1].Route, true
		}
		return Route{}, false
	}

	for _, rt := range r.routes {
		if strings.EqualFold(rt.Key, input) || strings.EqualFold(rt.Label, input) {
			return rt.Route, true
		}
	}

	return Route{}, false
}

// Dispatch runs the handler registered for key.
func (r *Router) Dispatch(ctx context.Context, key string) Reply {
	i, ok := r.index[key]
	if !ok {
		return Reply{Message: r.errorCodec(ctx, pkgerror.ErrNotFound), Err: pkgerror.ErrNotFound}
	}

	ctx = withRouteKey(ctx, key)
	resp, err := r.routes[i].h(ctx)
	if err != nil {
		return Reply{Message: r.errorCodec(ctx, err), Err: err}
	}

	return Reply{Message: r.encoder(ctx, resp), Data: resp}
}

type routeKeyContextKey struct{}

func withRouteKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, routeKeyContextKey{}, key)
}

// RouteKey returns the key of the action being dispatched, if any.
func RouteKey(ctx context.Context) string {
	key, _ := ctx.Value(routeKeyContextKey{}).(string)
	return key
}
