package reward

import (
	"context"

	"encore.app/rewards/model"
	"encore.app/rewards/repository/operations"
	"encore.app/rewards/stripegateway"
)

type Business interface {
	CreateCoupon(ctx context.Context, spec *model.CouponSpec) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	CreatePromotionCode(ctx context.Context, spec *model.PromotionCodeSpec) (*model.PromotionCode, error)
	CreditBalance(ctx context.Context, adj *model.BalanceAdjustment) (*model.BalanceTransaction, error)
	DebitBalance(ctx context.Context, adj *model.BalanceAdjustment) (*model.BalanceTransaction, error)

	ListOperations(ctx context.Context, limit, offset int32) ([]*model.Operation, int64, error)
	GetOperation(ctx context.Context, idempotencyKey string) (*model.Operation, error)
}

// business orchestrates reward operations: it sanitizes tracking metadata,
// derives the idempotency key, calls the provider gateway and records the
// call in the audit ledger.
type business struct {
	gateway       stripegateway.Gateway
	operationRepo operations.Querier
}

// NewRewardBusiness creates the reward business layer.
func NewRewardBusiness(gateway stripegateway.Gateway, operationRepo operations.Querier) Business {
	return &business{
		gateway:       gateway,
		operationRepo: operationRepo,
	}
}
