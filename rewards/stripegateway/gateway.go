// Package stripegateway is the boundary to the payment provider. It attaches
// idempotency keys and sanitized metadata to every mutating call, reshapes
// provider resources into model types, and classifies provider failures into
// the closed error set the rest of the service matches on.
package stripegateway

import (
	"context"

	"github.com/stripe/stripe-go/v78/client"

	"encore.app/rewards/model"
)

type Gateway interface {
	CreateCoupon(ctx context.Context, params CouponParams) (*model.Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
	CreatePromotionCode(ctx context.Context, params PromotionCodeParams) (*model.PromotionCode, error)
	CreateBalanceTransaction(ctx context.Context, params BalanceTransactionParams) (*model.BalanceTransaction, error)
}

type gateway struct {
	api *client.API
}

// New wraps a configured provider client.
func New(api *client.API) Gateway {
	return &gateway{api: api}
}
