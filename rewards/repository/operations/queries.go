package operations

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const createOperation = `-- name: CreateOperation :one
INSERT INTO reward_operations (operation, idempotency_key, resource_id, tenant_id, user_id, metadata)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, operation, idempotency_key, resource_id, tenant_id, user_id, metadata, created_at
`

type CreateOperationParams struct {
	Operation      string
	IdempotencyKey string
	ResourceID     string
	TenantID       pgtype.Text
	UserID         pgtype.Text
	Metadata       []byte
}

func (q *Queries) CreateOperation(ctx context.Context, arg CreateOperationParams) (Operation, error) {
	row := q.db.QueryRow(ctx, createOperation,
		arg.Operation,
		arg.IdempotencyKey,
		arg.ResourceID,
		arg.TenantID,
		arg.UserID,
		arg.Metadata,
	)
	var i Operation
	err := row.Scan(
		&i.ID,
		&i.Operation,
		&i.IdempotencyKey,
		&i.ResourceID,
		&i.TenantID,
		&i.UserID,
		&i.Metadata,
		&i.CreatedAt,
	)
	return i, err
}

const getOperationByKey = `-- name: GetOperationByKey :one
SELECT id, operation, idempotency_key, resource_id, tenant_id, user_id, metadata, created_at
FROM reward_operations
WHERE idempotency_key = $1
`

func (q *Queries) GetOperationByKey(ctx context.Context, idempotencyKey string) (Operation, error) {
	row := q.db.QueryRow(ctx, getOperationByKey, idempotencyKey)
	var i Operation
	err := row.Scan(
		&i.ID,
		&i.Operation,
		&i.IdempotencyKey,
		&i.ResourceID,
		&i.TenantID,
		&i.UserID,
		&i.Metadata,
		&i.CreatedAt,
	)
	return i, err
}

const listOperations = `-- name: ListOperations :many
SELECT id, operation, idempotency_key, resource_id, tenant_id, user_id, metadata, created_at
FROM reward_operations
ORDER BY id DESC
LIMIT $1 OFFSET $2
`

type ListOperationsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListOperations(ctx context.Context, arg ListOperationsParams) ([]Operation, error) {
	rows, err := q.db.Query(ctx, listOperations, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Operation
	for rows.Next() {
		var i Operation
		if err := rows.Scan(
			&i.ID,
			&i.Operation,
			&i.IdempotencyKey,
			&i.ResourceID,
			&i.TenantID,
			&i.UserID,
			&i.Metadata,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countOperations = `-- name: CountOperations :one
SELECT count(*) FROM reward_operations
`

func (q *Queries) CountOperations(ctx context.Context) (int64, error) {
	row := q.db.QueryRow(ctx, countOperations)
	var count int64
	err := row.Scan(&count)
	return count, err
}
