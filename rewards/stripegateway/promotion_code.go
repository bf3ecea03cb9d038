package stripegateway

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v78"

	"encore.app/rewards/model"
)

// PromotionCodeParams describes a redeemable code to create for an existing
// coupon. Leaving Code empty lets the provider generate one.
type PromotionCodeParams struct {
	CouponID       string
	Code           string
	CustomerID     string
	MaxRedemptions *int64
	ExpiresAt      *time.Time
	Metadata       map[string]string
	IdempotencyKey string
}

func (g *gateway) CreatePromotionCode(ctx context.Context, params PromotionCodeParams) (*model.PromotionCode, error) {
	p := &stripe.PromotionCodeParams{
		Coupon: stripe.String(params.CouponID),
	}
	p.Context = ctx
	p.IdempotencyKey = stripe.String(params.IdempotencyKey)

	if params.Code != "" {
		p.Code = stripe.String(params.Code)
	}
	if params.CustomerID != "" {
		p.Customer = stripe.String(params.CustomerID)
	}
	if params.MaxRedemptions != nil {
		p.MaxRedemptions = stripe.Int64(*params.MaxRedemptions)
	}
	if params.ExpiresAt != nil {
		p.ExpiresAt = stripe.Int64(params.ExpiresAt.Unix())
	}
	for k, v := range params.Metadata {
		p.AddMetadata(k, v)
	}

	code, err := g.api.PromotionCodes.New(p)
	if err != nil {
		return nil, classifyError(err, params.IdempotencyKey)
	}

	return convertPromotionCode(code, params.IdempotencyKey), nil
}

func convertPromotionCode(pc *stripe.PromotionCode, idempotencyKey string) *model.PromotionCode {
	code := &model.PromotionCode{
		ID:             pc.ID,
		Code:           pc.Code,
		Active:         pc.Active,
		TimesRedeemed:  pc.TimesRedeemed,
		Metadata:       pc.Metadata,
		IdempotencyKey: idempotencyKey,
		CreatedAt:      time.Unix(pc.Created, 0).UTC(),
	}

	if pc.Coupon != nil {
		code.CouponID = pc.Coupon.ID
	}
	if pc.Customer != nil {
		code.CustomerID = pc.Customer.ID
	}
	if pc.MaxRedemptions != 0 {
		code.MaxRedemptions = stripe.Int64(pc.MaxRedemptions)
	}
	if pc.ExpiresAt != 0 {
		expiresAt := time.Unix(pc.ExpiresAt, 0).UTC()
		code.ExpiresAt = &expiresAt
	}

	return code
}
