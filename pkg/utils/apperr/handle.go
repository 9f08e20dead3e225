package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/atodeyomu/pkg/domain/types"
)

// Handle reports an unexpected error and returns a reference the caller can quote
func Handle(ctx context.Context, err error) types.ErrorRefID {
	refID := types.NewErrorRefID()
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err, "error_ref", refID)
	return refID
}
