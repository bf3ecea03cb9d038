package stripegateway

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v78"

	"encore.app/rewards/model"
)

// CouponParams describes a discount template to create at the provider.
// Exactly one of PercentOff and AmountOffCents is set; Currency accompanies
// AmountOffCents.
type CouponParams struct {
	Name           string
	PercentOff     *float64
	AmountOffCents *int64
	Currency       string
	Duration       model.CouponDuration
	DurationMonths *int64
	MaxRedemptions *int64
	RedeemBy       *time.Time
	Metadata       map[string]string
	IdempotencyKey string
}

func (g *gateway) CreateCoupon(ctx context.Context, params CouponParams) (*model.Coupon, error) {
	p := &stripe.CouponParams{
		Duration: stripe.String(string(params.Duration)),
	}
	p.Context = ctx
	p.IdempotencyKey = stripe.String(params.IdempotencyKey)

	if params.Name != "" {
		p.Name = stripe.String(params.Name)
	}
	if params.PercentOff != nil {
		p.PercentOff = stripe.Float64(*params.PercentOff)
	}
	if params.AmountOffCents != nil {
		p.AmountOff = stripe.Int64(*params.AmountOffCents)
		p.Currency = stripe.String(params.Currency)
	}
	if params.DurationMonths != nil {
		p.DurationInMonths = stripe.Int64(*params.DurationMonths)
	}
	if params.MaxRedemptions != nil {
		p.MaxRedemptions = stripe.Int64(*params.MaxRedemptions)
	}
	if params.RedeemBy != nil {
		p.RedeemBy = stripe.Int64(params.RedeemBy.Unix())
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	coupon, err := g.api.Coupons.New(p)
	if err != nil {
		return nil, classifyError(err, params.IdempotencyKey)
	}

	return convertCoupon(coupon, params.IdempotencyKey), nil
}

// DeleteCoupon removes a coupon at the provider. Deleting an already deleted
// coupon surfaces the provider's invalid-request error; compensating callers
// treat that as done.
func (g *gateway) DeleteCoupon(ctx context.Context, id string) error {
	p := &stripe.CouponParams{}
	p.Context = ctx

	if _, err := g.api.Coupons.Del(id, p); err != nil {
		return classifyError(err, "")
	}
	return nil
}

func convertCoupon(c *stripe.Coupon, idempotencyKey string) *model.Coupon {
	coupon := &model.Coupon{
		ID:             c.ID,
		Name:           c.Name,
		Currency:       string(c.Currency),
		Duration:       model.CouponDuration(c.Duration),
		TimesRedeemed:  c.TimesRedeemed,
		Valid:          c.Valid,
		Metadata:       c.Metadata,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      time.Unix(c.Created, 0).UTC(),
	}

	if c.PercentOff != 0 {
		coupon.PercentOff = stripe.Float64(c.PercentOff)
	}
	if c.AmountOff != 0 {
		coupon.AmountOffCents = stripe.Int64(c.AmountOff)
	}
	if c.DurationInMonths != 0 {
		coupon.DurationMonths = stripe.Int64(c.DurationInMonths)
	}
	if c.MaxRedemptions != 0 {
		coupon.MaxRedemptions = stripe.Int64(c.MaxRedemptions)
	}
	if c.RedeemBy != 0 {
		redeemBy := time.Unix(c.RedeemBy, 0).UTC()
		coupon.RedeemBy = &redeemBy
	}

	return coupon
}
