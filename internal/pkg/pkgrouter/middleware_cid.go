package pkgrouter

import (
	"context"

	"github.com/shandysiswandi/goatm/internal/pkg/pkglog"
)

// Generator generates a unique string (used for correlation IDs).
type Generator interface {
	Generate() string
}

// middlewareCorrelationID makes sure every dispatch logs under a correlation
// ID. The session normally sets one; a fresh ID is generated otherwise.
func middlewareCorrelationID(uid Generator) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context) (any, error) {
			cid := pkglog.GetCorrelationID(ctx)
			if (cid == "" || cid == "[invalid_chain_id]") && uid != nil {
				ctx = pkglog.SetCorrelationID(ctx, uid.Generate())
			}

			return next(ctx)
		}
	}
}
