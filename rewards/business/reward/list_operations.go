package reward

import (
	"context"
	"encoding/json"

	"encore.dev/beta/errs"

	"encore.app/rewards/model"
	"encore.app/rewards/repository/operations"
)

// ListOperations pages through the audit ledger, newest first.
func (b *business) ListOperations(ctx context.Context, limit, offset int32) ([]*model.Operation, int64, error) {
	rows, err := b.operationRepo.ListOperations(ctx, operations.ListOperationsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to list operations"}
	}

	total, err := b.operationRepo.CountOperations(ctx)
	if err != nil {
		return nil, 0, &errs.Error{Code: errs.Internal, Message: "failed to count operations"}
	}

	result := make([]*model.Operation, len(rows))
	for i, row := range rows {
		result[i] = convertDBOperationToModel(row)
	}

	return result, total, nil
}

func convertDBOperationToModel(row operations.Operation) *model.Operation {
	op := &model.Operation{
		ID:             row.ID,
		Operation:      row.Operation,
		IdempotencyKey: row.IdempotencyKey,
		ResourceID:     row.ResourceID,
		CreatedAt:      row.CreatedAt.Time,
	}

	if row.TenantID.Valid {
		op.TenantID = &row.TenantID.String
	}
	if row.UserID.Valid {
		op.UserID = &row.UserID.String
	}
	if len(row.Metadata) > 0 {
		var md map[string]string
		if err := json.Unmarshal(row.Metadata, &md); err == nil {
			op.Metadata = md
		}
	}

	return op
}
