package reward

import (
	"context"

	"encore.app/rewards/idempotency"
	"encore.app/rewards/metadata"
	"encore.app/rewards/model"
	"encore.app/rewards/stripegateway"
)

// CreatePromotionCode creates a redeemable code for an existing coupon.
func (b *business) CreatePromotionCode(ctx context.Context, spec *model.PromotionCodeSpec) (*model.PromotionCode, error) {
	md := metadata.Merge(spec.Metadata)

	params := stripegateway.PromotionCodeParams{
		CouponID:       spec.CouponID,
		Code:           spec.Code,
		CustomerID:     spec.CustomerID,
		MaxRedemptions: spec.MaxRedemptions,
		ExpiresAt:      spec.ExpiresAt,
		Metadata:       md,
	}
	params.IdempotencyKey = idempotency.DeriveKey(model.OpCreatePromotionCode, params)

	code, err := b.gateway.CreatePromotionCode(ctx, params)
	if err != nil {
		return nil, err
	}

	b.recordOperation(model.OpCreatePromotionCode, params.IdempotencyKey, code.ID, spec.Metadata, md)

	return code, nil
}
