package reward

import (
	"context"

	"encore.app/rewards/idempotency"
	"encore.app/rewards/metadata"
	"encore.app/rewards/model"
	"encore.app/rewards/stripegateway"
)

// CreateCoupon creates a discount template at the provider. The idempotency
// key is derived from the full call parameters, sanitized metadata included,
// so automatic retries of the same logical request deduplicate at the
// provider while any parameter change yields a fresh key.
func (b *business) CreateCoupon(ctx context.Context, spec *model.CouponSpec) (*model.Coupon, error) {
	md := metadata.Merge(spec.Metadata)

	params := stripegateway.CouponParams{
		Name:           spec.Name,
		PercentOff:     spec.PercentOff,
		AmountOffCents: spec.AmountOffCents,
		Currency:       spec.Currency,
		Duration:       spec.Duration,
		DurationMonths: spec.DurationMonths,
		MaxRedemptions: spec.MaxRedemptions,
		RedeemBy:       spec.RedeemBy,
		Metadata:       md,
	}
	params.IdempotencyKey = idempotency.DeriveKey(model.OpCreateCoupon, params)

	coupon, err := b.gateway.CreateCoupon(ctx, params)
	if err != nil {
		return nil, err
	}

	b.recordOperation(model.OpCreateCoupon, params.IdempotencyKey, coupon.ID, spec.Metadata, md)

	return coupon, nil
}
