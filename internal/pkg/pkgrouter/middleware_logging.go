package pkgrouter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
)

func outcome(err error) string {
	if err == nil {
		return "OK"
	}

	var gerr *pkgerror.Error
	if errors.As(err, &gerr) {
		return gerr.Code().String()
	}
	return pkgerror.CodeInternal.String()
}

func middlewareLogging(next Handler) Handler {
	return func(ctx context.Context) (any, error) {
		action := RouteKey(ctx)
		start := time.Now()

		slog.DebugContext(ctx, "action received", "action", action)

		resp, err := next(ctx)

		slog.InfoContext(
			ctx,
			"action handled",
			"action", action,
			"outcome", outcome(err),
			"latency_ms", time.Since(start).Milliseconds(),
		)

		return resp, err
	}
}
