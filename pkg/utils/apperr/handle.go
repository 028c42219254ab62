package apperr

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Handle reports an error that reached the outer edge of a sync request.
// When the error carries goerr context values, the unwrapped form is
// logged so attributes like group IDs survive into the structured log.
func Handle(ctx context.Context, err error) {
	if err == nil {
		return
	}

	logger := ctxlog.From(ctx)
	if goErr := goerr.Unwrap(err); goErr != nil {
		logger.Error("sync request failed", slog.Any("error", goErr))
		return
	}
	logger.Error("sync request failed", slog.Any("error", err))
}
