package operations

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

type Queries struct {
	db DBTX
}

func (q *Queries) WithTx(tx pgx.Tx) *Queries {
	return &Queries{db: tx}
}

// Operation is one audited provider call as stored in reward_operations.
type Operation struct {
	ID             int64
	Operation      string
	IdempotencyKey string
	ResourceID     string
	TenantID       pgtype.Text
	UserID         pgtype.Text
	Metadata       []byte
	CreatedAt      pgtype.Timestamptz
}

type Querier interface {
	CreateOperation(ctx context.Context, arg CreateOperationParams) (Operation, error)
	GetOperationByKey(ctx context.Context, idempotencyKey string) (Operation, error)
	ListOperations(ctx context.Context, arg ListOperationsParams) ([]Operation, error)
	CountOperations(ctx context.Context) (int64, error)
}

var _ Querier = (*Queries)(nil)
