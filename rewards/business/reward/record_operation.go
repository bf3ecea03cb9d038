package reward

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"encore.app/rewards/metadata"
	"encore.app/rewards/repository/operations"
)

// recordOperation appends a successful provider call to the audit ledger.
// Recording is best-effort and off the request path: the provider call
// already happened, so a ledger failure must not fail the operation.
func (b *business) recordOperation(operation, idempotencyKey, resourceID string, raw map[string]any, sanitized map[string]string) {
	params := operations.CreateOperationParams{
		Operation:      operation,
		IdempotencyKey: idempotencyKey,
		ResourceID:     resourceID,
	}

	if tenantID, ok := metadata.TenantID(raw); ok {
		params.TenantID = pgtype.Text{String: tenantID, Valid: true}
	}
	if userID, ok := metadata.UserID(raw); ok {
		params.UserID = pgtype.Text{String: userID, Valid: true}
	}
	if mdJSON, err := json.Marshal(sanitized); err == nil {
		params.Metadata = mdJSON
	}

	runAsync("record-operation", func(ctx context.Context) error {
		_, err := b.operationRepo.CreateOperation(ctx, params)
		if err != nil {
			var e *pgconn.PgError
			if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
				// Same derived key seen before: the provider deduplicated the
				// retry and the ledger already holds the row.
				return nil
			}
			return err
		}
		return nil
	})
}
