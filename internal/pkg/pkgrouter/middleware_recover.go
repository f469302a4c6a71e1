package pkgrouter

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
)

// stackOut receives the trimmed stack trace of recovered panics.
//
//nolint:gochecknoglobals // swapped in tests
var stackOut io.Writer = os.Stderr

func middlewareRecoverer(next Handler) Handler {
	return func(ctx context.Context) (resp any, err error) {
		defer func() {
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "panic on action", "action", RouteKey(ctx), "because", rvr)

				lines := strings.Split(string(debug.Stack()), "\n")
				printStackTrace(stackOut, lines)

				//nolint:err113 // panic value is dynamic
				resp, err = nil, pkgerror.NewServer(fmt.Errorf("panic: %v", rvr))
			}
		}()

		return next(ctx)
	}
}

func printStackTrace(w io.Writer, lines []string) {
	fmt.Fprintln(w, "===== ===== START ===== =====")
	for i := 0; i < len(lines)-1; i++ {
		line := strings.TrimSpace(lines[i+1])
		if strings.Contains(line, "/internal/") && strings.Contains(line, ".go") {
			if idx := strings.Index(line, ".go:"); idx != -1 {
				end := strings.Index(line[idx:], " ")
				if end == -1 {
					end = len(line)
				} else {
					end += idx
				}
				shortPath := line[:end]
				internalIdx := strings.Index(shortPath, "/internal/")
				if internalIdx != -1 {
					shortPath = shortPath[internalIdx+1:]
					fmt.Fprintln(w, "stack trace: ", shortPath)
				}
			}
		}
	}
	fmt.Fprintln(w, "===== ===== END ===== =====")
}
