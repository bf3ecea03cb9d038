package reward

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"encore.dev/beta/errs"

	"encore.app/rewards/model"
)

// GetOperation looks up an audited provider call by its idempotency key.
func (b *business) GetOperation(ctx context.Context, idempotencyKey string) (*model.Operation, error) {
	row, err := b.operationRepo.GetOperationByKey(ctx, idempotencyKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &errs.Error{Code: errs.NotFound, Message: "operation not found"}
		}
		return nil, &errs.Error{Code: errs.Internal, Message: "failed to get operation"}
	}

	return convertDBOperationToModel(row), nil
}
