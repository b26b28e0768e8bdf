package async

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/aster-works/agora/pkg/utils/logging"
)

// Dispatch runs a handler in a new goroutine with a detached context.
// Errors and panics are logged and never propagate to the caller, so a
// failing side effect (email, audit write) cannot block the primary
// operation.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := context.Background()
	if logger := logging.From(ctx); logger != nil {
		bgCtx = logging.With(bgCtx, logger)
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Error("async handler failed", "error", goerr.Unwrap(err))
		}
	}()
}
